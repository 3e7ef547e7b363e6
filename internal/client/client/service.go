package client

import (
	"context"

	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"google.golang.org/grpc"
)

// Backend is the ERPService surface used by GRPCClient. The client
// returned by pb.NewERPServiceClient implements it.
type Backend interface {
	Ping(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.PingResponse, error)
	Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.Profile, error)
	Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.TokenResponse, error)
	RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.TokenResponse, error)
	ListProfiles(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.ProfileList, error)
	SaveClient(ctx context.Context, in *pb.Client, opts ...grpc.CallOption) (*pb.Client, error)
	GetClient(ctx context.Context, in *pb.IDRequest, opts ...grpc.CallOption) (*pb.Client, error)
	ListClients(ctx context.Context, in *pb.ListClientsRequest, opts ...grpc.CallOption) (*pb.ClientList, error)
	SaveContract(ctx context.Context, in *pb.Contract, opts ...grpc.CallOption) (*pb.Contract, error)
	ListContracts(ctx context.Context, in *pb.ListContractsRequest, opts ...grpc.CallOption) (*pb.ContractList, error)
	AddItem(ctx context.Context, in *pb.Item, opts ...grpc.CallOption) (*pb.Item, error)
	UpdateItem(ctx context.Context, in *pb.Item, opts ...grpc.CallOption) (*pb.Item, error)
	ListItems(ctx context.Context, in *pb.ListItemsRequest, opts ...grpc.CallOption) (*pb.ItemList, error)
	AddMeasurement(ctx context.Context, in *pb.AddMeasurementRequest, opts ...grpc.CallOption) (*pb.AddMeasurementResponse, error)
	ListMeasurements(ctx context.Context, in *pb.ListMeasurementsRequest, opts ...grpc.CallOption) (*pb.MeasurementList, error)
	SaveWorkflow(ctx context.Context, in *pb.SaveWorkflowRequest, opts ...grpc.CallOption) (*pb.SaveWorkflowResponse, error)
	GetWorkflow(ctx context.Context, in *pb.IDRequest, opts ...grpc.CallOption) (*pb.Interactions, error)
	AddItemComment(ctx context.Context, in *pb.AddCommentRequest, opts ...grpc.CallOption) (*pb.Comment, error)
	AddItemAttachment(ctx context.Context, in *pb.AddAttachmentRequest, opts ...grpc.CallOption) (*pb.Attachment, error)
	CreateTask(ctx context.Context, in *pb.Task, opts ...grpc.CallOption) (*pb.Task, error)
	ListTasks(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.TaskList, error)
	UpdateTaskStatus(ctx context.Context, in *pb.UpdateTaskStatusRequest, opts ...grpc.CallOption) (*pb.Empty, error)
	AddTaskComment(ctx context.Context, in *pb.AddCommentRequest, opts ...grpc.CallOption) (*pb.Comment, error)
	AddTaskAttachment(ctx context.Context, in *pb.AddAttachmentRequest, opts ...grpc.CallOption) (*pb.Attachment, error)
	GetTaskInteractions(ctx context.Context, in *pb.IDRequest, opts ...grpc.CallOption) (*pb.Interactions, error)
	AddContractDocument(ctx context.Context, in *pb.AddAttachmentRequest, opts ...grpc.CallOption) (*pb.Attachment, error)
	ListContractDocuments(ctx context.Context, in *pb.ListDocumentsRequest, opts ...grpc.CallOption) (*pb.AttachmentList, error)
	GetDownloadURL(ctx context.Context, in *pb.DownloadURLRequest, opts ...grpc.CallOption) (*pb.DownloadURLResponse, error)
	GetDashboard(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.Dashboard, error)
	ExportItems(ctx context.Context, in *pb.ExportItemsRequest, opts ...grpc.CallOption) (*pb.ExportItemsResponse, error)
	SendMessage(ctx context.Context, in *pb.SendMessageRequest, opts ...grpc.CallOption) (*pb.ChatMessage, error)
	ChatHistory(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.ChatHistory, error)
	ListOnline(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.PresenceSnapshot, error)
	SubscribeChat(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[pb.ChatMessage], error)
	JoinPresence(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[pb.PresenceSnapshot], error)
}
