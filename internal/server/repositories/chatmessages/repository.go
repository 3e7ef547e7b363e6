// Package chatmessages persists the append-only chat log.
package chatmessages

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

type Repository interface {
	// Create inserts m and fills its ID and Timestamp from the stored row.
	Create(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error)
	// RecentVisibleTo returns the latest limit messages viewerID may see:
	// broadcasts plus private messages sent by or to viewerID, in ascending
	// timestamp order.
	RecentVisibleTo(ctx context.Context, viewerID string, limit int) ([]*models.ChatMessage, error)
}
