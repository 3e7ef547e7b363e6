package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/client/chat"
	"github.com/dmitrijs2005/mdterp/internal/client/client"
	"github.com/dmitrijs2005/mdterp/internal/client/config"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// backend is the part of client.GRPCClient the commands use.
type backend interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, email, name, password string) (*pb.Profile, error)
	Login(ctx context.Context, email, password string) error
	Logout()
	Profile() *pb.Profile
	ListProfiles(ctx context.Context) ([]*pb.Profile, error)

	SaveClient(ctx context.Context, c *pb.Client) (*pb.Client, error)
	GetClient(ctx context.Context, id string) (*pb.Client, error)
	ListClients(ctx context.Context, search string) ([]*pb.Client, error)
	SaveContract(ctx context.Context, c *pb.Contract) (*pb.Contract, error)
	ListContracts(ctx context.Context, clientID string) ([]*pb.Contract, error)
	AddItem(ctx context.Context, item *pb.Item) (*pb.Item, error)
	UpdateItem(ctx context.Context, item *pb.Item) (*pb.Item, error)
	ListItems(ctx context.Context, contractID string) ([]*pb.Item, error)
	AddMeasurement(ctx context.Context, m *pb.Measurement, proof *pb.File) (*pb.AddMeasurementResponse, error)
	ListMeasurements(ctx context.Context, itemID string) (*pb.MeasurementList, error)

	SaveWorkflow(ctx context.Context, req *pb.SaveWorkflowRequest) (*pb.SaveWorkflowResponse, error)
	GetWorkflow(ctx context.Context, itemID string) (*pb.Interactions, error)
	AddItemComment(ctx context.Context, itemID, text string) (*pb.Comment, error)
	AddItemAttachment(ctx context.Context, itemID string, file *pb.File) (*pb.Attachment, error)

	CreateTask(ctx context.Context, t *pb.Task) (*pb.Task, error)
	ListTasks(ctx context.Context) ([]*pb.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) error
	AddTaskComment(ctx context.Context, taskID, text string) (*pb.Comment, error)
	AddTaskAttachment(ctx context.Context, taskID string, file *pb.File) (*pb.Attachment, error)
	GetTaskInteractions(ctx context.Context, taskID string) (*pb.Interactions, error)

	AddContractDocument(ctx context.Context, contractID, name string, file *pb.File) (*pb.Attachment, error)
	ListContractDocuments(ctx context.Context, contractID string) ([]*pb.Attachment, error)
	GetDownloadURL(ctx context.Context, key string) (string, error)
	GetDashboard(ctx context.Context) (*pb.Dashboard, error)
	ExportItems(ctx context.Context, contractID string) (*pb.ExportItemsResponse, error)

	SendMessage(ctx context.Context, text, recipientID string) (*pb.ChatMessage, error)
	ChatHistory(ctx context.Context) ([]*pb.ChatMessage, error)
	ListOnline(ctx context.Context) ([]*pb.OnlineUser, error)
	SubscribeChat(ctx context.Context, fn func(*pb.ChatMessage)) error
	JoinPresence(ctx context.Context, fn func(*pb.PresenceSnapshot)) error
}

type App struct {
	config *config.Config
	client backend
	reader *bufio.Reader
	out    io.Writer

	mu      sync.Mutex
	mode    Mode
	session *chat.Session
	stop    context.CancelFunc
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) chatSession() *chat.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *App) isLoggedIn() bool {
	return a.chatSession() != nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.stopRealtime()

	log.Println("Welcome to MDT ERP CLI (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if err := a.Login(ctx, nil); err != nil {
		a.printf("login failed: %v\n", err)
	}

	runREPL(ctx, a.isLoggedIn, a.commands(), a.getStatus, a.reader, a.out)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.client.Ping(ctx); err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
