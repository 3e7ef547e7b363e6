package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/mdterp/internal/proto"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.Empty) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Profile, error) {

	s.logger.Info(ctx, "Registration request")

	p, err := s.svc.Users.Register(ctx, req.GetEmail(), req.GetName(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "Register", err)
	}

	s.logger.Info(ctx, "Registered", "id", p.ID, "role", p.Role)
	return toProfile(p), nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {

	tokens, err := s.svc.Users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "Login", err)
	}

	return toTokens(tokens), nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {

	tokens, err := s.svc.Users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.fail(ctx, "RefreshToken", err)
	}

	return toTokens(tokens), nil

}

func (s *GRPCServer) ListProfiles(ctx context.Context, _ *pb.Empty) (*pb.ProfileList, error) {
	list, err := s.svc.Users.ListProfiles(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListProfiles", err)
	}
	return &pb.ProfileList{Profiles: mapSlice(list, toProfile)}, nil
}
