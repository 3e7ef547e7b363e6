package profiles

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

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (email, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, p.Email, p.Name, string(p.Role), p.PasswordHash).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at
		FROM profiles
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at
		FROM profiles
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.Profile, error) {
	p := &models.Profile{}
	var role string
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&p.ID, &p.Email, &p.Name, &role, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.Role = models.Role(role)
	return p, nil
}

// List returns every profile ordered by name. Password hashes are not loaded.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Profile, error) {
	query := `SELECT id, email, name, role, created_at FROM profiles ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select profiles: %w", err)
	}
	defer rows.Close()

	var result []*models.Profile
	for rows.Next() {
		p := &models.Profile{}
		var role string
		if err := rows.Scan(&p.ID, &p.Email, &p.Name, &role, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Role = models.Role(role)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
