package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mdterp/internal/timex"
)

type ContractService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContractService(db *sql.DB, m repomanager.RepositoryManager) *ContractService {
	return &ContractService{db: db, repomanager: m}
}

// Save creates c when it has no ID and updates it otherwise. An empty
// description becomes models.DefaultContractDescription.
func (s *ContractService) Save(ctx context.Context, c *models.Contract) (*models.Contract, error) {
	if c.TotalValue < 0 {
		return nil, validationError("total value must not be negative")
	}
	c.Description = strings.TrimSpace(c.Description)
	if c.Description == "" {
		c.Description = models.DefaultContractDescription
	}
	c.ContractNumber = trimOptional(c.ContractNumber)
	c.ProcessNumber = trimOptional(c.ProcessNumber)
	c.ContractDescription = trimOptional(c.ContractDescription)
	c.StartDate = timex.NilIfZero(c.StartDate)
	c.EndDate = timex.NilIfZero(c.EndDate)
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return nil, validationError("end date is before start date")
	}

	repo := s.repomanager.Contracts(s.db)
	if c.ID == "" {
		if _, err := requireText("client id", c.ClientID); err != nil {
			return nil, err
		}
		out, err := repo.Create(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("error creating contract: %w", err)
		}
		return out, nil
	}

	if err := repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("error updating contract: %w", err)
	}
	return c, nil
}

func (s *ContractService) List(ctx context.Context, clientID string) ([]*models.Contract, error) {
	list, err := s.repomanager.Contracts(s.db).ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("error listing contracts: %w", err)
	}
	return list, nil
}
