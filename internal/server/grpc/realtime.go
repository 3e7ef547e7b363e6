package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"google.golang.org/grpc"
)

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.ChatMessage, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "SendMessage", err)
	}
	m, err := s.svc.Chat.Send(ctx, actor, req.GetText(), req.GetRecipientId())
	if err != nil {
		return nil, s.fail(ctx, "SendMessage", err)
	}
	return toChatMessage(m), nil
}

func (s *GRPCServer) ChatHistory(ctx context.Context, _ *pb.Empty) (*pb.ChatHistory, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ChatHistory", err)
	}
	list, err := s.svc.Chat.History(ctx, actor)
	if err != nil {
		return nil, s.fail(ctx, "ChatHistory", err)
	}
	return &pb.ChatHistory{Messages: mapSlice(list, toChatMessage)}, nil
}

func (s *GRPCServer) ListOnline(ctx context.Context, _ *pb.Empty) (*pb.PresenceSnapshot, error) {
	snap, err := s.svc.Presence.Snapshot(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListOnline", err)
	}
	return toSnapshot(snap), nil
}

// SubscribeChat streams every message the caller may see until the client
// goes away.
func (s *GRPCServer) SubscribeChat(_ *pb.Empty, stream grpc.ServerStreamingServer[pb.ChatMessage]) error {
	ctx := stream.Context()
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return s.fail(ctx, "SubscribeChat", err)
	}

	msgs, err := s.svc.Chat.Subscribe(ctx, actor)
	if err != nil {
		return s.fail(ctx, "SubscribeChat", err)
	}

	s.logger.Debug(ctx, "chat subscriber joined", "user", actor.ID)
	for m := range msgs {
		if err := stream.Send(toChatMessage(m)); err != nil {
			return err
		}
	}
	return nil
}

// JoinPresence announces the caller for as long as the stream stays open
// and pushes a snapshot on every presence change.
func (s *GRPCServer) JoinPresence(_ *pb.Empty, stream grpc.ServerStreamingServer[pb.PresenceSnapshot]) error {
	ctx := stream.Context()
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return s.fail(ctx, "JoinPresence", err)
	}

	snaps, err := s.svc.Presence.Join(ctx, actor)
	if err != nil {
		return s.fail(ctx, "JoinPresence", err)
	}

	s.logger.Debug(ctx, "presence joined", "user", actor.ID)
	for snap := range snaps {
		if err := stream.Send(toSnapshot(snap)); err != nil {
			return err
		}
	}
	return nil
}
