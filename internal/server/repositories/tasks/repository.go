// Package tasks provides the PostgreSQL repository for delegated tasks.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error
	// ListOpen returns up to limit tasks that are not completed, earliest
	// deadline first.
	ListOpen(ctx context.Context, limit int) ([]*models.Task, error)
}
