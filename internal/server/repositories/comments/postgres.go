package comments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type PostgresRepository struct {
	db     dbx.DBTX
	target Target
}

func NewPostgresRepository(db dbx.DBTX, target Target) *PostgresRepository {
	return &PostgresRepository{db: db, target: target}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, text, author, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, r.target.Table, r.target.OwnerColumn)

	err := r.db.QueryRowContext(ctx, query, c.OwnerID, c.Text, c.Author, c.Date).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]*models.Comment, error) {
	query := fmt.Sprintf(`SELECT id, %[2]s, text, author, date FROM %[1]s WHERE %[2]s = $1 ORDER BY date ASC`,
		r.target.Table, r.target.OwnerColumn)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select comments: %w", err)
	}
	defer rows.Close()

	var result []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Text, &c.Author, &c.Date); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
