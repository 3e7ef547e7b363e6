package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/common"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      Backend

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	profile      *pb.Profile

	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()
}

// refresh rotates the token pair. stale is the access token that was
// rejected; if another call already replaced it, nothing is sent.
func (s *GRPCClient) refresh(ctx context.Context, stale string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.tokens()
	if access != stale {
		return nil
	}
	if refresh == "" {
		return ErrNotLoggedIn
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}

	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)

	if err == nil || !isTokenExpired(err) || refresh == "" {
		return err
	}

	if err := s.refresh(ctx, access); err != nil {
		return err
	}

	// TOKENS REFRESHED, retrying with the new access token
	access, _ = s.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	access, _ := s.tokens()
	return streamer(withAccessToken(ctx, access), desc, cc, method, opts...)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewERPServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotLoggedIn) {
		return err
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.ResourceExhausted:
		return ErrRateLimited
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func call[Req, Resp any](ctx context.Context, s *GRPCClient, fn func(context.Context, *Req, ...grpc.CallOption) (*Resp, error), in *Req) (*Resp, error) {
	resp, err := fn(ctx, in)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// follow opens a server stream and hands every message to fn until the
// stream ends. A stream refused with an expired token is reopened once after
// refreshing.
func follow[T any](ctx context.Context, s *GRPCClient, open func(context.Context, *pb.Empty, ...grpc.CallOption) (grpc.ServerStreamingClient[T], error), fn func(*T)) error {
	retried := false
	for {
		stale, _ := s.tokens()
		stream, err := open(ctx, &pb.Empty{})
		if err != nil {
			return s.mapError(err)
		}

		received := false
		for {
			msg, err := stream.Recv()
			if err == nil {
				received = true
				fn(msg)
				continue
			}
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			if received || retried || !isTokenExpired(err) {
				return s.mapError(err)
			}
			if err := s.refresh(ctx, stale); err != nil {
				return s.mapError(err)
			}
			retried = true
			break
		}
	}
}

// Profile returns the signed-in profile, or nil.
func (s *GRPCClient) Profile() *pb.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	return proto.Clone(s.profile).(*pb.Profile)
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, name, password string) (*pb.Profile, error) {
	return call(ctx, s, s.client.Register, &pb.RegisterRequest{Email: email, Name: name, Password: password})
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.mu.Lock()
	s.accessToken = resp.GetAccessToken()
	s.refreshToken = resp.GetRefreshToken()
	s.profile = resp.GetProfile()
	s.mu.Unlock()

	return nil
}

func (s *GRPCClient) Logout() {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.profile = nil
	s.mu.Unlock()
}

func (s *GRPCClient) ListProfiles(ctx context.Context) ([]*pb.Profile, error) {
	resp, err := call(ctx, s, s.client.ListProfiles, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.GetProfiles(), nil
}

func (s *GRPCClient) SaveClient(ctx context.Context, c *pb.Client) (*pb.Client, error) {
	return call(ctx, s, s.client.SaveClient, c)
}

func (s *GRPCClient) GetClient(ctx context.Context, id string) (*pb.Client, error) {
	return call(ctx, s, s.client.GetClient, &pb.IDRequest{Id: id})
}

func (s *GRPCClient) ListClients(ctx context.Context, search string) ([]*pb.Client, error) {
	resp, err := call(ctx, s, s.client.ListClients, &pb.ListClientsRequest{Search: search})
	if err != nil {
		return nil, err
	}
	return resp.GetClients(), nil
}

func (s *GRPCClient) SaveContract(ctx context.Context, c *pb.Contract) (*pb.Contract, error) {
	return call(ctx, s, s.client.SaveContract, c)
}

func (s *GRPCClient) ListContracts(ctx context.Context, clientID string) ([]*pb.Contract, error) {
	resp, err := call(ctx, s, s.client.ListContracts, &pb.ListContractsRequest{ClientId: clientID})
	if err != nil {
		return nil, err
	}
	return resp.GetContracts(), nil
}

func (s *GRPCClient) AddItem(ctx context.Context, item *pb.Item) (*pb.Item, error) {
	return call(ctx, s, s.client.AddItem, item)
}

func (s *GRPCClient) UpdateItem(ctx context.Context, item *pb.Item) (*pb.Item, error) {
	return call(ctx, s, s.client.UpdateItem, item)
}

func (s *GRPCClient) ListItems(ctx context.Context, contractID string) ([]*pb.Item, error) {
	resp, err := call(ctx, s, s.client.ListItems, &pb.ListItemsRequest{ContractId: contractID})
	if err != nil {
		return nil, err
	}
	return resp.GetItems(), nil
}

func (s *GRPCClient) AddMeasurement(ctx context.Context, m *pb.Measurement, proof *pb.File) (*pb.AddMeasurementResponse, error) {
	return call(ctx, s, s.client.AddMeasurement, &pb.AddMeasurementRequest{Measurement: m, Proof: proof})
}

func (s *GRPCClient) ListMeasurements(ctx context.Context, itemID string) (*pb.MeasurementList, error) {
	return call(ctx, s, s.client.ListMeasurements, &pb.ListMeasurementsRequest{ItemId: itemID})
}

func (s *GRPCClient) SaveWorkflow(ctx context.Context, req *pb.SaveWorkflowRequest) (*pb.SaveWorkflowResponse, error) {
	return call(ctx, s, s.client.SaveWorkflow, req)
}

func (s *GRPCClient) GetWorkflow(ctx context.Context, itemID string) (*pb.Interactions, error) {
	return call(ctx, s, s.client.GetWorkflow, &pb.IDRequest{Id: itemID})
}

func (s *GRPCClient) AddItemComment(ctx context.Context, itemID, text string) (*pb.Comment, error) {
	return call(ctx, s, s.client.AddItemComment, &pb.AddCommentRequest{OwnerId: itemID, Text: text})
}

func (s *GRPCClient) AddItemAttachment(ctx context.Context, itemID string, file *pb.File) (*pb.Attachment, error) {
	return call(ctx, s, s.client.AddItemAttachment, &pb.AddAttachmentRequest{OwnerId: itemID, File: file})
}

func (s *GRPCClient) CreateTask(ctx context.Context, t *pb.Task) (*pb.Task, error) {
	return call(ctx, s, s.client.CreateTask, t)
}

func (s *GRPCClient) ListTasks(ctx context.Context) ([]*pb.Task, error) {
	resp, err := call(ctx, s, s.client.ListTasks, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.GetTasks(), nil
}

func (s *GRPCClient) UpdateTaskStatus(ctx context.Context, id, status string) error {
	_, err := call(ctx, s, s.client.UpdateTaskStatus, &pb.UpdateTaskStatusRequest{Id: id, Status: status})
	return err
}

func (s *GRPCClient) AddTaskComment(ctx context.Context, taskID, text string) (*pb.Comment, error) {
	return call(ctx, s, s.client.AddTaskComment, &pb.AddCommentRequest{OwnerId: taskID, Text: text})
}

func (s *GRPCClient) AddTaskAttachment(ctx context.Context, taskID string, file *pb.File) (*pb.Attachment, error) {
	return call(ctx, s, s.client.AddTaskAttachment, &pb.AddAttachmentRequest{OwnerId: taskID, File: file})
}

func (s *GRPCClient) GetTaskInteractions(ctx context.Context, taskID string) (*pb.Interactions, error) {
	return call(ctx, s, s.client.GetTaskInteractions, &pb.IDRequest{Id: taskID})
}

func (s *GRPCClient) AddContractDocument(ctx context.Context, contractID, name string, file *pb.File) (*pb.Attachment, error) {
	return call(ctx, s, s.client.AddContractDocument, &pb.AddAttachmentRequest{OwnerId: contractID, Name: name, File: file})
}

func (s *GRPCClient) ListContractDocuments(ctx context.Context, contractID string) ([]*pb.Attachment, error) {
	resp, err := call(ctx, s, s.client.ListContractDocuments, &pb.ListDocumentsRequest{ContractId: contractID})
	if err != nil {
		return nil, err
	}
	return resp.GetAttachments(), nil
}

func (s *GRPCClient) GetDownloadURL(ctx context.Context, key string) (string, error) {
	resp, err := call(ctx, s, s.client.GetDownloadURL, &pb.DownloadURLRequest{Key: key})
	if err != nil {
		return "", err
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) GetDashboard(ctx context.Context) (*pb.Dashboard, error) {
	return call(ctx, s, s.client.GetDashboard, &pb.Empty{})
}

func (s *GRPCClient) ExportItems(ctx context.Context, contractID string) (*pb.ExportItemsResponse, error) {
	return call(ctx, s, s.client.ExportItems, &pb.ExportItemsRequest{ContractId: contractID})
}

func (s *GRPCClient) SendMessage(ctx context.Context, text, recipientID string) (*pb.ChatMessage, error) {
	return call(ctx, s, s.client.SendMessage, &pb.SendMessageRequest{Text: text, RecipientId: recipientID})
}

func (s *GRPCClient) ChatHistory(ctx context.Context) ([]*pb.ChatMessage, error) {
	resp, err := call(ctx, s, s.client.ChatHistory, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.GetMessages(), nil
}

func (s *GRPCClient) ListOnline(ctx context.Context) ([]*pb.OnlineUser, error) {
	resp, err := call(ctx, s, s.client.ListOnline, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.GetUsers(), nil
}

// SubscribeChat delivers every chat message visible to the signed-in
// profile to fn until ctx ends.
func (s *GRPCClient) SubscribeChat(ctx context.Context, fn func(*pb.ChatMessage)) error {
	return follow(ctx, s, s.client.SubscribeChat, fn)
}

// JoinPresence announces the signed-in profile as online for as long as ctx
// lives and delivers each presence snapshot to fn.
func (s *GRPCClient) JoinPresence(ctx context.Context, fn func(*pb.PresenceSnapshot)) error {
	return follow(ctx, s, s.client.JoinPresence, fn)
}
