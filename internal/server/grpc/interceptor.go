package grpc

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/mdterp/internal/common"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AccessTokenKey is the metadata key carrying the JWT access token.
const AccessTokenKey = common.AccessTokenHeaderName

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.ERPService_Ping_FullMethodName:         true,
	pb.ERPService_Register_FullMethodName:     true,
	pb.ERPService_Login_FullMethodName:        true,
	pb.ERPService_RefreshToken_FullMethodName: true,
}

func isPublic(fullMethod string) bool {
	return publicMethods[fullMethod] || !isERPMethod(fullMethod)
}

// isERPMethod keeps the interceptors off the health service.
func isERPMethod(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/"+pb.ERPService_ServiceDesc.ServiceName+"/")
}

// authenticate reads the access token from ctx and returns a context
// carrying the actor it names.
func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(AccessTokenKey)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	actor, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return auth.WithActor(ctx, actor), nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublic(info.FullMethod) {
		return handler(ctx, req)
	}

	ctx, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (a *authedStream) Context() context.Context { return a.ctx }

func (s *GRPCServer) streamAccessTokenInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if isPublic(info.FullMethod) {
		return handler(srv, ss)
	}

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &authedStream{ServerStream: ss, ctx: ctx})
}
