package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

// PostgresRepository implements client storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const clientColumns = `id, name, address, neighborhood, city, whatsapp, email, responsible,
	registration_number, minutes_number, registration_date, deadline, user_created`

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner) (*models.Client, error) {
	c := &models.Client{}
	var userCreated sql.NullString
	err := s.Scan(&c.ID, &c.Name, &c.Address, &c.Neighborhood, &c.City, &c.Whatsapp, &c.Email,
		&c.Responsible, &c.RegistrationNumber, &c.MinutesNumber, &c.RegistrationDate, &c.Deadline,
		&userCreated)
	if err != nil {
		return nil, err
	}
	c.UserCreated = userCreated.String
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Client) (*models.Client, error) {
	query := `
		INSERT INTO clients (name, address, neighborhood, city, whatsapp, email, responsible,
			registration_number, minutes_number, registration_date, deadline, user_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Address, c.Neighborhood, c.City, c.Whatsapp, c.Email, c.Responsible,
		c.RegistrationNumber, c.MinutesNumber, c.RegistrationDate, c.Deadline, c.UserCreated,
	).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Client) error {
	query := `
		UPDATE clients SET name = $2, address = $3, neighborhood = $4, city = $5, whatsapp = $6,
			email = $7, responsible = $8, registration_number = $9, minutes_number = $10,
			registration_date = $11, deadline = $12
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Address, c.Neighborhood, c.City, c.Whatsapp, c.Email, c.Responsible,
		c.RegistrationNumber, c.MinutesNumber, c.RegistrationDate, c.Deadline,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOne(res)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context, search string) ([]*models.Client, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if search == "" {
		rows, err = r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY name`)
	} else {
		pattern := "%" + search + "%"
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+clientColumns+` FROM clients WHERE name ILIKE $1 OR city ILIKE $1 ORDER BY name`,
			pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", err)
	}
	defer rows.Close()

	var result []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
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

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
