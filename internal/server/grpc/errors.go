package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusCode maps service errors to gRPC codes.
func statusCode(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrorForbidden):
		return codes.PermissionDenied
	case errors.Is(err, common.ErrorRateLimited):
		return codes.ResourceExhausted
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// fail logs err and converts it to a status error. Internal details are
// not sent to the client.
func (s *GRPCServer) fail(ctx context.Context, method string, err error) error {
	code := statusCode(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal error")
	}
	s.logger.Info(ctx, "request rejected", "method", method, "code", code.String(), "error", err)
	return status.Error(code, err.Error())
}
