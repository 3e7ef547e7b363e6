// Package clients provides the PostgreSQL repository for customer records.
package clients

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Client) (*models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Get(ctx context.Context, id string) (*models.Client, error)
	// List returns clients ordered by name. A non-empty search matches
	// name or city, case-insensitively.
	List(ctx context.Context, search string) ([]*models.Client, error)
	Count(ctx context.Context) (int64, error)
}
