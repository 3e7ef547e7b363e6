package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
)

// UrgentTaskCount is how many open tasks the dashboard lists.
const UrgentTaskCount = 5

type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// Get builds the dashboard. Financial totals are left at zero for non-admins.
func (s *DashboardService) Get(ctx context.Context, actor auth.Actor) (*models.Dashboard, error) {
	d := &models.Dashboard{}
	var err error

	if d.TotalClients, err = s.repomanager.Clients(s.db).Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting clients: %w", err)
	}
	if d.ActiveContracts, err = s.repomanager.Contracts(s.db).CountActive(ctx); err != nil {
		return nil, fmt.Errorf("error counting contracts: %w", err)
	}
	if d.UrgentTasks, err = s.repomanager.Tasks(s.db).ListOpen(ctx, UrgentTaskCount); err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	if !actor.IsAdmin() {
		return d, nil
	}

	if d.TotalContractValue, err = s.repomanager.Contracts(s.db).SumTotalValue(ctx); err != nil {
		return nil, fmt.Errorf("error summing contracts: %w", err)
	}
	if d.TotalItemsValue, err = s.repomanager.Items(s.db).SumTotalPrice(ctx); err != nil {
		return nil, fmt.Errorf("error summing items: %w", err)
	}
	if d.TotalMeasuredValue, err = s.repomanager.Measurements(s.db).SumTotalPrice(ctx); err != nil {
		return nil, fmt.Errorf("error summing measurements: %w", err)
	}
	return d, nil
}
