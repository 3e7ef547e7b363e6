// Package comments stores the comment threads of service items and tasks.
// Both live in structurally identical tables, chosen with a Target.
package comments

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

// Target names a comment table and the column holding the owner id.
type Target struct {
	Table       string
	OwnerColumn string
}

var (
	ItemComments = Target{Table: "service_item_comments", OwnerColumn: "item_id"}
	TaskComments = Target{Table: "task_comments", OwnerColumn: "task_id"}
)

type Repository interface {
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	// List returns the comments of an owner, oldest first.
	List(ctx context.Context, ownerID string) ([]*models.Comment, error)
}
