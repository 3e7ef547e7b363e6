package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/logging"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Services{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, Services{}, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error (constructor should not fail here): %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// --- fakes ---

type fakeUsers struct {
	UserService
	actor auth.Actor
}

func (f *fakeUsers) Login(_ context.Context, email, password string) (*services.TokenPair, error) {
	if password != "right" {
		return nil, common.ErrorUnauthorized
	}
	tok, err := auth.GenerateToken(f.actor, []byte(testSecret), time.Minute)
	if err != nil {
		return nil, err
	}
	return &services.TokenPair{AccessToken: tok, RefreshToken: "r1", Profile: &models.Profile{ID: f.actor.ID, Email: email}}, nil
}

type fakeClients struct {
	ClientService
	seenActor auth.Actor
}

func (f *fakeClients) List(context.Context, string) ([]*models.Client, error) {
	return []*models.Client{{ID: "c1", Name: "Prefeitura"}}, nil
}

func (f *fakeClients) Save(_ context.Context, actor auth.Actor, c *models.Client) (*models.Client, error) {
	f.seenActor = actor
	if c.Name == "" {
		return nil, errors.Join(common.ErrorValidation, errors.New("name is required"))
	}
	c.ID = "c2"
	return c, nil
}

type fakeWorkflow struct {
	WorkflowService
}

func (fakeWorkflow) Save(_ context.Context, _ auth.Actor, itemID string, wf models.Workflow, _ string, _ *models.Upload) (*services.WorkflowResult, error) {
	if itemID == "missing" {
		return nil, common.ErrorNotFound
	}
	return &services.WorkflowResult{
		Item:       &models.ServiceItem{ID: itemID, Quantity: 5, MeasuredTotal: 2, Workflow: wf},
		Comment:    services.StepOutcome{Attempted: true},
		Attachment: services.StepOutcome{Attempted: true, Err: errors.New("error uploading file: s3 down")},
		Refresh:    services.StepOutcome{Attempted: true},
	}, nil
}

type fakeChat struct {
	ChatService
	feed chan *models.ChatMessage
}

func (f *fakeChat) Subscribe(ctx context.Context, _ auth.Actor) (<-chan *models.ChatMessage, error) {
	out := make(chan *models.ChatMessage)
	go func() {
		defer close(out)
		for {
			select {
			case m := <-f.feed:
				select {
				case out <- m:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// --- bufconn round trip ---

func startBufconn(t *testing.T, svc Services) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := newTestServer(t, svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestRoundTrip_LoginThenAuthenticatedCalls(t *testing.T) {
	actor := auth.Actor{ID: "u1", Name: "Ana", Role: models.RoleAdmin}
	clients := &fakeClients{}
	conn := startBufconn(t, Services{Users: &fakeUsers{actor: actor}, Clients: clients})
	c := pb.NewERPServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := c.Ping(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.GetStatus())

	_, err = c.Login(ctx, &pb.LoginRequest{Email: "ana@x.com", Password: "wrong"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.ListClients(ctx, &pb.ListClientsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	tokens, err := c.Login(ctx, &pb.LoginRequest{Email: "ana@x.com", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, "u1", tokens.GetProfile().GetId())

	authed := metadata.AppendToOutgoingContext(ctx, AccessTokenKey, tokens.GetAccessToken())
	list, err := c.ListClients(authed, &pb.ListClientsRequest{Search: "pref"})
	require.NoError(t, err)
	require.Len(t, list.GetClients(), 1)
	assert.Equal(t, "Prefeitura", list.GetClients()[0].GetName())

	saved, err := c.SaveClient(authed, &pb.Client{Name: "Câmara"})
	require.NoError(t, err)
	assert.Equal(t, "c2", saved.GetId())
	assert.Equal(t, actor, clients.seenActor)

	_, err = c.SaveClient(authed, &pb.Client{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRoundTrip_SaveWorkflowReportsSteps(t *testing.T) {
	conn := startBufconn(t, Services{Workflow: fakeWorkflow{}})
	c := pb.NewERPServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, AccessTokenKey, tokenFor(t, auth.Actor{ID: "u1"}, time.Minute))

	res, err := c.SaveWorkflow(ctx, &pb.SaveWorkflowRequest{ItemId: "os-1", Workflow: &pb.Workflow{Status: "review"}, Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "review", res.GetItem().GetWorkflow().GetStatus())
	assert.Equal(t, 3.0, res.GetItem().GetBalance())
	assert.True(t, res.GetComment().GetAttempted())
	assert.Empty(t, res.GetComment().GetError())
	assert.True(t, res.GetAttachment().GetAttempted())
	assert.Contains(t, res.GetAttachment().GetError(), "s3 down")
	assert.True(t, res.GetRefresh().GetAttempted())
	assert.Empty(t, res.GetRefresh().GetError())

	_, err = c.SaveWorkflow(ctx, &pb.SaveWorkflowRequest{ItemId: "missing", Workflow: &pb.Workflow{Status: "review"}})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRoundTrip_SubscribeChat(t *testing.T) {
	chat := &fakeChat{feed: make(chan *models.ChatMessage, 1)}
	conn := startBufconn(t, Services{Chat: chat})
	c := pb.NewERPServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// the status of a rejected stream arrives with the first Recv
	anon, err := c.SubscribeChat(ctx, &pb.Empty{})
	if err == nil {
		_, err = anon.Recv()
	}
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := metadata.AppendToOutgoingContext(ctx, AccessTokenKey, tokenFor(t, auth.Actor{ID: "u1"}, time.Minute))
	stream, err := c.SubscribeChat(authed, &pb.Empty{})
	require.NoError(t, err)

	bob := "bob"
	chat.feed <- &models.ChatMessage{ID: "m1", Text: "oi", SenderID: "u1", RecipientID: &bob}
	m, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "oi", m.GetText())
	assert.Equal(t, "bob", m.GetRecipientId())
}

func TestRoundTrip_Health(t *testing.T) {
	conn := startBufconn(t, Services{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: pb.ERPService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, res.GetStatus())
}
