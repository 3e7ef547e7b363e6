// Package items provides the PostgreSQL repository for contract service
// items and their workflow fields.
package items

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.ServiceItem) (*models.ServiceItem, error)
	// Update rewrites description, unit, quantity and prices.
	Update(ctx context.Context, item *models.ServiceItem) error
	// UpdateWorkflow writes every workflow field of the item in one statement.
	UpdateWorkflow(ctx context.Context, itemID string, wf models.Workflow) error
	Get(ctx context.Context, id string) (*models.ServiceItem, error)
	// ListByContract returns the items of a contract, newest first, with
	// MeasuredTotal filled in.
	ListByContract(ctx context.Context, contractID string) ([]*models.ServiceItem, error)
	SumTotalPrice(ctx context.Context) (float64, error)
}
