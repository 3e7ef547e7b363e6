package chatmessages

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (text, author, sender_id, recipient_id, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp
	`
	err := r.db.QueryRowContext(ctx, query, m.Text, m.Author, m.SenderID, m.RecipientID, m.Timestamp).
		Scan(&m.ID, &m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) RecentVisibleTo(ctx context.Context, viewerID string, limit int) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, text, author, sender_id, recipient_id, timestamp
		FROM chat_messages
		WHERE recipient_id IS NULL OR sender_id = $1 OR recipient_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select chat messages: %w", err)
	}
	defer rows.Close()

	var result []*models.ChatMessage
	for rows.Next() {
		m := &models.ChatMessage{}
		if err := rows.Scan(&m.ID, &m.Text, &m.Author, &m.SenderID, &m.RecipientID, &m.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Reverse(result)
	return result, nil
}
