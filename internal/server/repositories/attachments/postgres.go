package attachments

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) Create(ctx context.Context, a *models.Attachment) (*models.Attachment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, name, url, type, uploaded_by, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, r.target.Table, r.target.OwnerColumn)

	err := r.db.QueryRowContext(ctx, query, a.OwnerID, a.Name, a.URL, a.Type, a.UploadedBy, a.Date).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]*models.Attachment, error) {
	query := fmt.Sprintf(`SELECT id, %[2]s, name, url, type, uploaded_by, date FROM %[1]s WHERE %[2]s = $1 ORDER BY date DESC`,
		r.target.Table, r.target.OwnerColumn)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select attachments: %w", err)
	}
	defer rows.Close()

	var result []*models.Attachment
	for rows.Next() {
		a := &models.Attachment{}
		var uploadedBy sql.NullString
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Name, &a.URL, &a.Type, &uploadedBy, &a.Date); err != nil {
			return nil, err
		}
		a.UploadedBy = uploadedBy.String
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
