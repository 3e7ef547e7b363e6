package grpc

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/services"
)

// The interfaces below list what the handlers need from the services
// package; *services.XService values satisfy them.

type UserService interface {
	Register(ctx context.Context, email, name, password string) (*models.Profile, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	ListProfiles(ctx context.Context) ([]*models.Profile, error)
}

type ClientService interface {
	Save(ctx context.Context, actor auth.Actor, c *models.Client) (*models.Client, error)
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context, search string) ([]*models.Client, error)
}

type ContractService interface {
	Save(ctx context.Context, c *models.Contract) (*models.Contract, error)
	List(ctx context.Context, clientID string) ([]*models.Contract, error)
}

type ItemService interface {
	Add(ctx context.Context, actor auth.Actor, in *models.ServiceItem) (*models.ServiceItem, error)
	Update(ctx context.Context, actor auth.Actor, in *models.ServiceItem) (*models.ServiceItem, error)
	List(ctx context.Context, contractID string) ([]*models.ServiceItem, error)
}

type MeasurementService interface {
	Add(ctx context.Context, actor auth.Actor, in *models.Measurement, proof *models.Upload) (*services.MeasurementResult, error)
	List(ctx context.Context, itemID string) (*services.MeasurementList, error)
}

type WorkflowService interface {
	Save(ctx context.Context, actor auth.Actor, itemID string, wf models.Workflow, comment string, file *models.Upload) (*services.WorkflowResult, error)
	Get(ctx context.Context, itemID string) (*services.Interactions, error)
	AddComment(ctx context.Context, actor auth.Actor, itemID, text string) (*models.Comment, error)
	AddAttachment(ctx context.Context, actor auth.Actor, itemID string, file *models.Upload) (*models.Attachment, error)
}

type TaskService interface {
	Create(ctx context.Context, actor auth.Actor, in *models.Task) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, id, status string) error
	AddComment(ctx context.Context, actor auth.Actor, taskID, text string) (*models.Comment, error)
	AddAttachment(ctx context.Context, actor auth.Actor, taskID string, file *models.Upload) (*models.Attachment, error)
	Interactions(ctx context.Context, taskID string) (*services.Interactions, error)
}

type DocumentService interface {
	Add(ctx context.Context, actor auth.Actor, contractID, name string, file *models.Upload) (*models.Attachment, error)
	List(ctx context.Context, contractID string) ([]*models.Attachment, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

type DashboardService interface {
	Get(ctx context.Context, actor auth.Actor) (*models.Dashboard, error)
}

type ExportService interface {
	ItemsCSV(ctx context.Context, actor auth.Actor, contractID string) ([]byte, string, error)
}

type ChatService interface {
	Send(ctx context.Context, actor auth.Actor, text, recipientID string) (*models.ChatMessage, error)
	History(ctx context.Context, actor auth.Actor) ([]*models.ChatMessage, error)
	Subscribe(ctx context.Context, actor auth.Actor) (<-chan *models.ChatMessage, error)
}

type PresenceService interface {
	Join(ctx context.Context, actor auth.Actor) (<-chan []models.OnlineUser, error)
	Snapshot(ctx context.Context) ([]models.OnlineUser, error)
}

// Services bundles everything the gRPC server dispatches to.
type Services struct {
	Users        UserService
	Clients      ClientService
	Contracts    ContractService
	Items        ItemService
	Measurements MeasurementService
	Workflow     WorkflowService
	Tasks        TaskService
	Documents    DocumentService
	Dashboard    DashboardService
	Export       ExportService
	Chat         ChatService
	Presence     PresenceService
}
