// Package measurements stores executed quantities recorded against service items.
package measurements

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Measurement) (*models.Measurement, error)
	ListByItem(ctx context.Context, itemID string) ([]*models.Measurement, error)
	SumTotalPrice(ctx context.Context) (float64, error)
}
