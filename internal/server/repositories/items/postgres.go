package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

// PostgresRepository implements service item storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectItems reads items together with the sum of their measured quantities.
const selectItems = `
	SELECT i.id, i.contract_id, i.description, i.unit, i.quantity, i.unit_price, i.total_price,
		i.date, i.user_created, i.status, i.executor_id, i.reception_date, i.internal_deadline,
		i.client_deadline, i.start_review_date, i.end_review_date, i.supervisor_observation,
		i.client_approval_date, i.art_emission_date, i.invoice_emission_date, i.billing_deadline,
		COALESCE(m.measured, 0)
	FROM service_items i
	LEFT JOIN (
		SELECT item_id, SUM(quantity) AS measured FROM measurements GROUP BY item_id
	) m ON m.item_id = i.id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.ServiceItem, error) {
	it := &models.ServiceItem{}
	var (
		status      string
		userCreated sql.NullString
	)
	err := s.Scan(&it.ID, &it.ContractID, &it.Description, &it.Unit, &it.Quantity, &it.UnitPrice,
		&it.TotalPrice, &it.Date, &userCreated, &status, &it.ExecutorID, &it.ReceptionDate,
		&it.InternalDeadline, &it.ClientDeadline, &it.StartReviewDate, &it.EndReviewDate,
		&it.SupervisorObservation, &it.ClientApprovalDate, &it.ArtEmissionDate,
		&it.InvoiceEmissionDate, &it.BillingDeadline, &it.MeasuredTotal)
	if err != nil {
		return nil, err
	}
	it.Status = models.Status(status)
	it.UserCreated = userCreated.String
	return it, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.ServiceItem) (*models.ServiceItem, error) {
	query := `
		INSERT INTO service_items (contract_id, description, unit, quantity, unit_price,
			total_price, date, user_created, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		item.ContractID, item.Description, item.Unit, item.Quantity, item.UnitPrice,
		item.TotalPrice, item.Date, item.UserCreated, string(item.Status),
	).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.ServiceItem) error {
	query := `
		UPDATE service_items SET description = $2, unit = $3, quantity = $4, unit_price = $5,
			total_price = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.Description, item.Unit, item.Quantity, item.UnitPrice, item.TotalPrice)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOne(res)
}

func (r *PostgresRepository) UpdateWorkflow(ctx context.Context, itemID string, wf models.Workflow) error {
	query := `
		UPDATE service_items SET status = $2, executor_id = $3, reception_date = $4,
			internal_deadline = $5, client_deadline = $6, start_review_date = $7,
			end_review_date = $8, supervisor_observation = $9, client_approval_date = $10,
			art_emission_date = $11, invoice_emission_date = $12, billing_deadline = $13
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		itemID, string(wf.Status), wf.ExecutorID, wf.ReceptionDate, wf.InternalDeadline,
		wf.ClientDeadline, wf.StartReviewDate, wf.EndReviewDate, wf.SupervisorObservation,
		wf.ClientApprovalDate, wf.ArtEmissionDate, wf.InvoiceEmissionDate, wf.BillingDeadline,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOne(res)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.ServiceItem, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, selectItems+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return it, nil
}

func (r *PostgresRepository) ListByContract(ctx context.Context, contractID string) ([]*models.ServiceItem, error) {
	rows, err := r.db.QueryContext(ctx, selectItems+` WHERE i.contract_id = $1 ORDER BY i.date DESC`, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []*models.ServiceItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) SumTotalPrice(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM service_items`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
