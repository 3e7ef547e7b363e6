package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/filex"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/comments"
	"github.com/dmitrijs2005/mdterp/internal/server/storage"
)

// attacher uploads files to object storage and records them as attachments.
type attacher struct {
	store storage.Store
	now   func() time.Time
}

// attach uploads up under a generated key and inserts the attachment row.
// name overrides the displayed name; empty keeps the original file name.
func (a attacher) attach(ctx context.Context, repo attachments.Repository, actor auth.Actor,
	ownerID, name string, up *models.Upload) (*models.Attachment, error) {
	if up == nil || len(up.Data) == 0 {
		return nil, validationError("file is required")
	}

	contentType := up.ContentType
	if contentType == "" {
		contentType = filex.ContentType(up.Name)
	}

	url, err := a.store.Upload(ctx, storage.ObjectName(up.Name), contentType, up.Data)
	if err != nil {
		return nil, fmt.Errorf("error uploading file: %w", err)
	}

	if name == "" {
		name = up.Name
	}
	att, err := repo.Create(ctx, &models.Attachment{
		OwnerID:    ownerID,
		Name:       name,
		URL:        url,
		Type:       filex.AttachmentType(up.Name),
		UploadedBy: actor.DisplayName(),
		Date:       a.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error saving attachment: %w", err)
	}
	return att, nil
}

func addComment(ctx context.Context, repo comments.Repository, actor auth.Actor, ownerID, text string, now time.Time) (*models.Comment, error) {
	text, err := requireText("comment", text)
	if err != nil {
		return nil, err
	}
	c, err := repo.Create(ctx, &models.Comment{OwnerID: ownerID, Text: text, Author: actor.DisplayName(), Date: now})
	if err != nil {
		return nil, fmt.Errorf("error saving comment: %w", err)
	}
	return c, nil
}
