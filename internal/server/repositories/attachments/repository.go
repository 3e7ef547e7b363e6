// Package attachments records uploaded files against items, tasks, contracts
// and measurements. The object itself lives in object storage; only its
// public URL is stored here.
package attachments

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

// Target names an attachment table and the column holding the owner id.
type Target struct {
	Table       string
	OwnerColumn string
}

var (
	ItemAttachments        = Target{Table: "service_item_attachments", OwnerColumn: "item_id"}
	TaskAttachments        = Target{Table: "task_attachments", OwnerColumn: "task_id"}
	ContractAttachments    = Target{Table: "contract_attachments", OwnerColumn: "contract_id"}
	MeasurementAttachments = Target{Table: "measurement_attachments", OwnerColumn: "measurement_id"}
)

type Repository interface {
	Create(ctx context.Context, a *models.Attachment) (*models.Attachment, error)
	// List returns the attachments of an owner, newest first.
	List(ctx context.Context, ownerID string) ([]*models.Attachment, error)
}
