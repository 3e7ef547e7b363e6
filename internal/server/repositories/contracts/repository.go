// Package contracts provides the PostgreSQL repository for client contracts.
package contracts

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Contract) (*models.Contract, error)
	Update(ctx context.Context, c *models.Contract) error
	Get(ctx context.Context, id string) (*models.Contract, error)
	ListByClient(ctx context.Context, clientID string) ([]*models.Contract, error)
	// CountActive counts contracts that have started (start_date set).
	CountActive(ctx context.Context) (int64, error)
	SumTotalValue(ctx context.Context) (float64, error)
}
