// Package profiles stores the back-office user profiles together with their
// password hashes and roles.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
}
