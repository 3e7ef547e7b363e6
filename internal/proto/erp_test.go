package proto

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type echoServer struct {
	UnimplementedERPServiceServer
}

func (echoServer) Ping(context.Context, *Empty) (*PingResponse, error) {
	return &PingResponse{Status: "OK"}, nil
}

func (echoServer) ExportItems(_ context.Context, in *ExportItemsRequest) (*ExportItemsResponse, error) {
	return &ExportItemsResponse{FileName: in.GetContractId() + ".csv", Data: []byte("id\n1\n")}, nil
}

func (echoServer) SaveClient(_ context.Context, in *Client) (*Client, error) {
	out := gproto.Clone(in).(*Client)
	out.Id = "c1"
	return out, nil
}

func (echoServer) SubscribeChat(_ *Empty, stream grpc.ServerStreamingServer[ChatMessage]) error {
	for _, text := range []string{"um", "dois"} {
		if err := stream.Send(&ChatMessage{Text: text, RecipientId: "bob"}); err != nil {
			return err
		}
	}
	return nil
}

func dialBufconn(t *testing.T, srv ERPServiceServer) ERPServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	RegisterERPServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewERPServiceClient(conn)
}

func TestDescriptor(t *testing.T) {
	svc := File_mdterp_v1_erp_proto.Services().ByName("ERPService")
	require.NotNil(t, svc)
	assert.Equal(t, ERPService_ServiceDesc.ServiceName, string(svc.FullName()))
	assert.Equal(t, len(ERPService_ServiceDesc.Methods)+len(ERPService_ServiceDesc.Streams), svc.Methods().Len())
	assert.True(t, svc.Methods().ByName("JoinPresence").IsStreamingServer())
	assert.Equal(t, "/mdterp.v1.ERPService/Login", ERPService_Login_FullMethodName)

	city := (&Client{}).ProtoReflect().Descriptor().Fields().ByName("city")
	require.NotNil(t, city)
	assert.True(t, city.HasPresence())
}

func TestUnaryRoundTrip(t *testing.T) {
	c := dialBufconn(t, echoServer{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := c.Ping(ctx, &Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.GetStatus())

	exp, err := c.ExportItems(ctx, &ExportItemsRequest{ContractId: "k1"})
	require.NoError(t, err)
	assert.Equal(t, "k1.csv", exp.GetFileName())
	assert.Equal(t, []byte("id\n1\n"), exp.GetData())
}

func TestOptionalFieldsKeepPresence(t *testing.T) {
	c := dialBufconn(t, echoServer{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	empty := ""
	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	got, err := c.SaveClient(ctx, &Client{Name: "Prefeitura", City: &empty, Deadline: timestamppb.New(deadline)})
	require.NoError(t, err)

	assert.Equal(t, "c1", got.GetId())
	require.NotNil(t, got.City)
	assert.Equal(t, "", *got.City)
	assert.Nil(t, got.Email)
	assert.Nil(t, got.GetRegistrationDate())
	assert.Equal(t, deadline, got.GetDeadline().AsTime())
}

func TestUnimplemented(t *testing.T) {
	c := dialBufconn(t, echoServer{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := c.GetDashboard(ctx, &Empty{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestServerStreamRoundTrip(t *testing.T) {
	c := dialBufconn(t, echoServer{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := c.SubscribeChat(ctx, &Empty{})
	require.NoError(t, err)

	var got []string
	for {
		m, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, "bob", m.GetRecipientId())
		got = append(got, m.GetText())
	}
	assert.Equal(t, []string{"um", "dois"}, got)
}
