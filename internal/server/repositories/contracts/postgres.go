package contracts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const contractColumns = `id, client_id, contract_number, process_number, description,
	contract_description, start_date, end_date, total_value`

type scanner interface {
	Scan(dest ...any) error
}

func scanContract(s scanner) (*models.Contract, error) {
	c := &models.Contract{}
	err := s.Scan(&c.ID, &c.ClientID, &c.ContractNumber, &c.ProcessNumber, &c.Description,
		&c.ContractDescription, &c.StartDate, &c.EndDate, &c.TotalValue)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Contract) (*models.Contract, error) {
	query := `
		INSERT INTO contracts (client_id, contract_number, process_number, description,
			contract_description, start_date, end_date, total_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		c.ClientID, c.ContractNumber, c.ProcessNumber, c.Description,
		c.ContractDescription, c.StartDate, c.EndDate, c.TotalValue,
	).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Contract) error {
	query := `
		UPDATE contracts SET contract_number = $2, process_number = $3, description = $4,
			contract_description = $5, start_date = $6, end_date = $7, total_value = $8
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.ContractNumber, c.ProcessNumber, c.Description,
		c.ContractDescription, c.StartDate, c.EndDate, c.TotalValue,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOne(res)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Contract, error) {
	c, err := scanContract(r.db.QueryRowContext(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListByClient(ctx context.Context, clientID string) ([]*models.Contract, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE client_id = $1 ORDER BY id`,
		clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to select contracts: %w", err)
	}
	defer rows.Close()

	var result []*models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM contracts WHERE start_date IS NOT NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) SumTotalValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_value), 0) FROM contracts`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
