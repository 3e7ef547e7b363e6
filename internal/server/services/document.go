package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mdterp/internal/server/storage"
)

// DocumentService keeps the files attached to contracts.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	attacher    attacher
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, store storage.Store) *DocumentService {
	return &DocumentService{db: db, repomanager: m, attacher: attacher{store: store, now: time.Now}}
}

// Add uploads a contract document. Both a name and a file are required.
func (s *DocumentService) Add(ctx context.Context, actor auth.Actor, contractID, name string, file *models.Upload) (*models.Attachment, error) {
	name, err := requireText("document name", name)
	if err != nil {
		return nil, err
	}
	return s.attacher.attach(ctx, s.repomanager.Attachments(s.db, attachments.ContractAttachments), actor, contractID, name, file)
}

func (s *DocumentService) List(ctx context.Context, contractID string) ([]*models.Attachment, error) {
	list, err := s.repomanager.Attachments(s.db, attachments.ContractAttachments).List(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	return list, nil
}

// DownloadURL returns a presigned link for a stored object key.
func (s *DocumentService) DownloadURL(ctx context.Context, key string) (string, error) {
	if _, err := requireText("key", key); err != nil {
		return "", err
	}
	url, err := s.attacher.store.PresignGet(ctx, key)
	if err != nil {
		return "", fmt.Errorf("error signing url: %w", err)
	}
	return url, nil
}
