package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
)

// DefaultUnit is used for items added without a unit.
const DefaultUnit = "UN"

type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m, now: time.Now}
}

// Add inserts a pending item into a contract. Only admins may set prices;
// items added by anyone else are priced at zero.
func (s *ItemService) Add(ctx context.Context, actor auth.Actor, in *models.ServiceItem) (*models.ServiceItem, error) {
	if _, err := requireText("contract id", in.ContractID); err != nil {
		return nil, err
	}
	if in.Quantity < 0 || in.UnitPrice < 0 {
		return nil, validationError("quantity and unit price must not be negative")
	}

	item := &models.ServiceItem{
		ContractID:  in.ContractID,
		Description: strings.TrimSpace(in.Description),
		Unit:        strings.TrimSpace(in.Unit),
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Date:        s.now(),
		UserCreated: actor.DisplayName(),
		Workflow:    models.Workflow{Status: models.StatusPending},
	}
	if item.Unit == "" {
		item.Unit = DefaultUnit
	}
	if !actor.IsAdmin() {
		item.UnitPrice = 0
	}
	item.TotalPrice = item.Quantity * item.UnitPrice

	out, err := s.repomanager.Items(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return out, nil
}

// Update rewrites description, unit, quantity and unit price and recomputes
// the total. Non-admins cannot change the price.
func (s *ItemService) Update(ctx context.Context, actor auth.Actor, in *models.ServiceItem) (*models.ServiceItem, error) {
	if in.Quantity < 0 || in.UnitPrice < 0 {
		return nil, validationError("quantity and unit price must not be negative")
	}

	repo := s.repomanager.Items(s.db)
	item, err := repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading item: %w", err)
	}

	item.Description = strings.TrimSpace(in.Description)
	if u := strings.TrimSpace(in.Unit); u != "" {
		item.Unit = u
	}
	item.Quantity = in.Quantity
	if actor.IsAdmin() {
		item.UnitPrice = in.UnitPrice
	}
	item.TotalPrice = item.Quantity * item.UnitPrice

	if err := repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("error updating item: %w", err)
	}
	return item, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*models.ServiceItem, error) {
	item, err := s.repomanager.Items(s.db).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading item: %w", err)
	}
	return item, nil
}

// List returns the items of a contract, newest first, with balances.
func (s *ItemService) List(ctx context.Context, contractID string) ([]*models.ServiceItem, error) {
	list, err := s.repomanager.Items(s.db).ListByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return list, nil
}
