package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/comments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mdterp/internal/server/storage"
	"github.com/dmitrijs2005/mdterp/internal/timex"
)

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	attacher    attacher
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, store storage.Store) *TaskService {
	return &TaskService{db: db, repomanager: m, attacher: attacher{store: store, now: time.Now}}
}

// Create inserts a pending task created by actor.
func (s *TaskService) Create(ctx context.Context, actor auth.Actor, in *models.Task) (*models.Task, error) {
	title, err := requireText("title", in.Title)
	if err != nil {
		return nil, err
	}
	t := &models.Task{
		Title:       title,
		Description: trimOptional(in.Description),
		Status:      models.TaskPending,
		AssignedTo:  trimOptional(in.AssignedTo),
		CreatedBy:   actor.DisplayName(),
		ClientID:    trimOptional(in.ClientID),
		ContractID:  trimOptional(in.ContractID),
		Deadline:    timex.NilIfZero(in.Deadline),
	}
	out, err := s.repomanager.Tasks(s.db).Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return out, nil
}

func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	list, err := s.repomanager.Tasks(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return list, nil
}

// UpdateStatus moves a task to any other status.
func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) error {
	st, err := models.ParseTaskStatus(strings.TrimSpace(status))
	if err != nil {
		return validationError("%v", err)
	}
	if err := s.repomanager.Tasks(s.db).UpdateStatus(ctx, id, st); err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}
	return nil
}

func (s *TaskService) AddComment(ctx context.Context, actor auth.Actor, taskID, text string) (*models.Comment, error) {
	return addComment(ctx, s.repomanager.Comments(s.db, comments.TaskComments), actor, taskID, text, s.attacher.now())
}

func (s *TaskService) AddAttachment(ctx context.Context, actor auth.Actor, taskID string, file *models.Upload) (*models.Attachment, error) {
	return s.attacher.attach(ctx, s.repomanager.Attachments(s.db, attachments.TaskAttachments), actor, taskID, "", file)
}

// Interactions returns the comments and attachments of a task.
func (s *TaskService) Interactions(ctx context.Context, taskID string) (*Interactions, error) {
	cs, err := s.repomanager.Comments(s.db, comments.TaskComments).List(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("error listing task comments: %w", err)
	}
	as, err := s.repomanager.Attachments(s.db, attachments.TaskAttachments).List(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("error listing task attachments: %w", err)
	}
	return &Interactions{Comments: cs, Attachments: as}, nil
}
