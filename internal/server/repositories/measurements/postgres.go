package measurements

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Measurement) (*models.Measurement, error) {
	query := `
		INSERT INTO measurements (item_id, date, description, quantity, unit_price, total_price, user_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		m.ItemID, m.Date, m.Description, m.Quantity, m.UnitPrice, m.TotalPrice, m.UserCreated,
	).Scan(&m.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

// ListByItem returns measurements newest first.
func (r *PostgresRepository) ListByItem(ctx context.Context, itemID string) ([]*models.Measurement, error) {
	query := `
		SELECT id, item_id, date, description, quantity, unit_price, total_price, user_created
		FROM measurements
		WHERE item_id = $1
		ORDER BY date DESC NULLS LAST
	`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to select measurements: %w", err)
	}
	defer rows.Close()

	var result []*models.Measurement
	for rows.Next() {
		m := &models.Measurement{}
		var userCreated sql.NullString
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Date, &m.Description, &m.Quantity,
			&m.UnitPrice, &m.TotalPrice, &userCreated); err != nil {
			return nil, err
		}
		m.UserCreated = userCreated.String
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) SumTotalPrice(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM measurements`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
