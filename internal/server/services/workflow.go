package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/logging"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/comments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mdterp/internal/server/storage"
	"github.com/dmitrijs2005/mdterp/internal/timex"
)

// WorkflowResult reports a workflow save. The workflow update itself either
// succeeded or Save returned an error; Comment, Attachment and Refresh
// describe the optional steps that followed it.
type WorkflowResult struct {
	Item        *models.ServiceItem
	Comment     StepOutcome
	Attachment  StepOutcome
	Refresh     StepOutcome
	Comments    []*models.Comment
	Attachments []*models.Attachment
	Items       []*models.ServiceItem
}

// Interactions are the comments and attachments of an item or task.
type Interactions struct {
	Comments    []*models.Comment
	Attachments []*models.Attachment
}

// WorkflowService edits the workflow of service items ("OS"): status,
// executor, milestone dates, supervisor notes, comments and files.
type WorkflowService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	attacher    attacher
	logger      logging.Logger
}

func NewWorkflowService(db *sql.DB, m repomanager.RepositoryManager, store storage.Store, logger logging.Logger) *WorkflowService {
	return &WorkflowService{
		db:          db,
		repomanager: m,
		attacher:    attacher{store: store, now: time.Now},
		logger:      logger.With("module", "workflow_service"),
	}
}

// Save runs the workflow save steps in order, without a transaction:
//
//  1. write every workflow field in one update; failure aborts;
//  2. add the comment, when it is not blank;
//  3. upload and record the file, when one is given;
//  4. reload comments, attachments and the contract's item listing.
//
// Failures of steps 2 to 4 are reported in the result and never undo step 1.
func (s *WorkflowService) Save(ctx context.Context, actor auth.Actor, itemID string, wf models.Workflow,
	comment string, file *models.Upload) (*WorkflowResult, error) {
	if !wf.Status.Valid() {
		return nil, validationError("unknown status %q", wf.Status)
	}
	wf = normalizeWorkflow(wf)

	if err := s.repomanager.Items(s.db).UpdateWorkflow(ctx, itemID, wf); err != nil {
		return nil, fmt.Errorf("error saving workflow: %w", err)
	}

	res := &WorkflowResult{}
	now := s.attacher.now()

	if strings.TrimSpace(comment) != "" {
		_, err := addComment(ctx, s.repomanager.Comments(s.db, comments.ItemComments), actor, itemID, comment, now)
		res.Comment = attempted(err)
		if err != nil {
			s.logger.Error(ctx, "workflow comment failed", "item", itemID, "error", err)
		}
	}

	if file != nil {
		_, err := s.attacher.attach(ctx, s.repomanager.Attachments(s.db, attachments.ItemAttachments), actor, itemID, "", file)
		res.Attachment = attempted(err)
		if err != nil {
			s.logger.Error(ctx, "workflow attachment failed", "item", itemID, "error", err)
		}
	}

	res.Refresh = attempted(s.refresh(ctx, itemID, res))
	if res.Refresh.Err != nil {
		s.logger.Error(ctx, "workflow refresh failed", "item", itemID, "error", res.Refresh.Err)
	}

	return res, nil
}

func (s *WorkflowService) refresh(ctx context.Context, itemID string, res *WorkflowResult) error {
	var errs []error

	item, err := s.repomanager.Items(s.db).Get(ctx, itemID)
	if err != nil {
		errs = append(errs, fmt.Errorf("item: %w", err))
	} else {
		res.Item = item
		res.Items, err = s.repomanager.Items(s.db).ListByContract(ctx, item.ContractID)
		if err != nil {
			errs = append(errs, fmt.Errorf("items: %w", err))
		}
	}

	in, err := s.interactions(ctx, itemID)
	if err != nil {
		errs = append(errs, err)
	} else {
		res.Comments, res.Attachments = in.Comments, in.Attachments
	}

	return errors.Join(errs...)
}

// Get returns the comments (oldest first) and attachments of an item.
func (s *WorkflowService) Get(ctx context.Context, itemID string) (*Interactions, error) {
	return s.interactions(ctx, itemID)
}

func (s *WorkflowService) interactions(ctx context.Context, itemID string) (*Interactions, error) {
	cs, err := s.repomanager.Comments(s.db, comments.ItemComments).List(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("comments: %w", err)
	}
	as, err := s.repomanager.Attachments(s.db, attachments.ItemAttachments).List(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("attachments: %w", err)
	}
	return &Interactions{Comments: cs, Attachments: as}, nil
}

func (s *WorkflowService) AddComment(ctx context.Context, actor auth.Actor, itemID, text string) (*models.Comment, error) {
	return addComment(ctx, s.repomanager.Comments(s.db, comments.ItemComments), actor, itemID, text, s.attacher.now())
}

func (s *WorkflowService) AddAttachment(ctx context.Context, actor auth.Actor, itemID string, file *models.Upload) (*models.Attachment, error) {
	return s.attacher.attach(ctx, s.repomanager.Attachments(s.db, attachments.ItemAttachments), actor, itemID, "", file)
}

func normalizeWorkflow(wf models.Workflow) models.Workflow {
	wf.ExecutorID = trimOptional(wf.ExecutorID)
	wf.SupervisorObservation = trimOptional(wf.SupervisorObservation)
	for _, d := range []**time.Time{&wf.ReceptionDate, &wf.InternalDeadline, &wf.ClientDeadline,
		&wf.StartReviewDate, &wf.EndReviewDate, &wf.ClientApprovalDate, &wf.ArtEmissionDate,
		&wf.InvoiceEmissionDate, &wf.BillingDeadline} {
		*d = timex.NilIfZero(*d)
	}
	return wf
}
