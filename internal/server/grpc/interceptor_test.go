package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/logging"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const testSecret = "secret"

func newTestServer(t *testing.T, svc Services) *GRPCServer {
	t.Helper()
	s, err := NewGRPCServer("127.0.0.1:0", logging.Nop{}, svc, testSecret)
	require.NoError(t, err)
	return s
}

func tokenFor(t *testing.T, a auth.Actor, validity time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(a, []byte(testSecret), validity)
	require.NoError(t, err)
	return tok
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.NewIncomingContext(ctx, metadata.Pairs(AccessTokenKey, token))
}

// captureActor is a unary handler that returns the actor it was called with.
func captureActor(ctx context.Context, _ any) (any, error) {
	return auth.ActorFromContext(ctx)
}

func TestAccessTokenInterceptor_PublicMethods(t *testing.T) {
	s := newTestServer(t, Services{})

	for _, m := range []string{
		pb.ERPService_Ping_FullMethodName,
		pb.ERPService_Register_FullMethodName,
		pb.ERPService_Login_FullMethodName,
		pb.ERPService_RefreshToken_FullMethodName,
	} {
		called := false
		_, err := s.accessTokenInterceptor(context.Background(), nil,
			&grpc.UnaryServerInfo{FullMethod: m},
			func(context.Context, any) (any, error) { called = true; return nil, nil })
		require.NoError(t, err, m)
		assert.True(t, called, m)
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"},
		func(context.Context, any) (any, error) { return nil, nil })
	assert.NoError(t, err)
}

func TestAccessTokenInterceptor_MissingToken(t *testing.T) {
	s := newTestServer(t, Services{})

	_, err := s.accessTokenInterceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: pb.ERPService_ListClients_FullMethodName}, captureActor)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAccessTokenInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer(t, Services{})
	ctx := withToken(context.Background(), tokenFor(t, auth.Actor{ID: "u1"}, -time.Minute))

	_, err := s.accessTokenInterceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: pb.ERPService_ListClients_FullMethodName}, captureActor)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, common.ErrTokenExpired.Error(), st.Message())
}

func TestAccessTokenInterceptor_ValidToken(t *testing.T) {
	s := newTestServer(t, Services{})
	want := auth.Actor{ID: "u1", Name: "Ana", Role: models.RoleAdmin}
	ctx := withToken(context.Background(), tokenFor(t, want, time.Minute))

	got, err := s.accessTokenInterceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: pb.ERPService_ListClients_FullMethodName}, captureActor)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f fakeServerStream) Context() context.Context { return f.ctx }

func TestStreamAccessTokenInterceptor(t *testing.T) {
	s := newTestServer(t, Services{})
	info := &grpc.StreamServerInfo{FullMethod: pb.ERPService_JoinPresence_FullMethodName, IsServerStream: true}

	err := s.streamAccessTokenInterceptor(nil, fakeServerStream{ctx: context.Background()}, info,
		func(any, grpc.ServerStream) error { return nil })
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := withToken(context.Background(), tokenFor(t, auth.Actor{ID: "u2", Name: "Bia"}, time.Minute))
	var seen auth.Actor
	err = s.streamAccessTokenInterceptor(nil, fakeServerStream{ctx: ctx}, info,
		func(_ any, ss grpc.ServerStream) error {
			var err error
			seen, err = auth.ActorFromContext(ss.Context())
			return err
		})
	require.NoError(t, err)
	assert.Equal(t, "u2", seen.ID)
}
