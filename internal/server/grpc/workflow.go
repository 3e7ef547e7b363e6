package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
)

// SaveWorkflow succeeds whenever the workflow fields were written; the
// comment, attachment and refresh steps report their own outcome.
func (s *GRPCServer) SaveWorkflow(ctx context.Context, req *pb.SaveWorkflowRequest) (*pb.SaveWorkflowResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "SaveWorkflow", err)
	}

	res, err := s.svc.Workflow.Save(ctx, actor, req.GetItemId(), fromWorkflow(req.GetWorkflow()), req.GetComment(), fromFile(req.GetFile()))
	if err != nil {
		return nil, s.fail(ctx, "SaveWorkflow", err)
	}

	return &pb.SaveWorkflowResponse{
		Item:        toItem(res.Item),
		Comment:     toOutcome(res.Comment),
		Attachment:  toOutcome(res.Attachment),
		Refresh:     toOutcome(res.Refresh),
		Comments:    mapSlice(res.Comments, toComment),
		Attachments: mapSlice(res.Attachments, toAttachment),
		Items:       mapSlice(res.Items, toItem),
	}, nil
}

func (s *GRPCServer) GetWorkflow(ctx context.Context, req *pb.IDRequest) (*pb.Interactions, error) {
	in, err := s.svc.Workflow.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.fail(ctx, "GetWorkflow", err)
	}
	return toInteractions(in), nil
}

func (s *GRPCServer) AddItemComment(ctx context.Context, req *pb.AddCommentRequest) (*pb.Comment, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "AddItemComment", err)
	}
	c, err := s.svc.Workflow.AddComment(ctx, actor, req.GetOwnerId(), req.GetText())
	if err != nil {
		return nil, s.fail(ctx, "AddItemComment", err)
	}
	return toComment(c), nil
}

func (s *GRPCServer) AddItemAttachment(ctx context.Context, req *pb.AddAttachmentRequest) (*pb.Attachment, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "AddItemAttachment", err)
	}
	a, err := s.svc.Workflow.AddAttachment(ctx, actor, req.GetOwnerId(), fromFile(req.GetFile()))
	if err != nil {
		return nil, s.fail(ctx, "AddItemAttachment", err)
	}
	return toAttachment(a), nil
}
