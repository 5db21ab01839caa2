package api

import (
	"context"
	"errors"

	"github.com/matheus3301/wppmock/internal/app"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, chat.ErrUnknownTab),
		errors.Is(err, app.ErrBlankMessage),
		errors.Is(err, conversation.ErrEmptyImage):
		return grpcstatus.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, conversation.ErrChatNotFound):
		return grpcstatus.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrStopped):
		return grpcstatus.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return grpcstatus.FromContextError(err).Err()
	default:
		return grpcstatus.Errorf(codes.Internal, "%v", err)
	}
}
