package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mdterp/internal/timex"
)

type ClientService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClientService(db *sql.DB, m repomanager.RepositoryManager) *ClientService {
	return &ClientService{db: db, repomanager: m}
}

// Save creates c when it has no ID and updates it otherwise. Blank optional
// fields are stored as NULL.
func (s *ClientService) Save(ctx context.Context, actor auth.Actor, c *models.Client) (*models.Client, error) {
	name, err := requireText("name", c.Name)
	if err != nil {
		return nil, err
	}
	c.Name = name
	for _, f := range []**string{&c.Address, &c.Neighborhood, &c.City, &c.Whatsapp, &c.Email,
		&c.Responsible, &c.RegistrationNumber, &c.MinutesNumber} {
		*f = trimOptional(*f)
	}
	c.RegistrationDate = timex.NilIfZero(c.RegistrationDate)
	c.Deadline = timex.NilIfZero(c.Deadline)

	repo := s.repomanager.Clients(s.db)
	if c.ID == "" {
		c.UserCreated = common.AuthorOr(actor.Name, common.SystemAuthorName)
		out, err := repo.Create(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("error creating client: %w", err)
		}
		return out, nil
	}

	if err := repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("error updating client: %w", err)
	}
	return c, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	c, err := s.repomanager.Clients(s.db).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading client: %w", err)
	}
	return c, nil
}

func (s *ClientService) List(ctx context.Context, search string) ([]*models.Client, error) {
	list, err := s.repomanager.Clients(s.db).List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	return list, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return common.NullIfEmpty(strings.TrimSpace(*s))
}
