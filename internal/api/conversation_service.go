package api

import (
	"context"

	"github.com/google/uuid"
	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/app"
	"github.com/matheus3301/wppmock/internal/bus"
	"github.com/matheus3301/wppmock/internal/conversation"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// ConversationService implements the ConversationService gRPC service.
type ConversationService struct {
	wppmockv1.UnimplementedConversationServiceServer

	ctrl        *app.Controller
	bus         *bus.Bus
	sessionName string
	logger      *zap.Logger
}

// NewConversationService creates a conversation service over the controller
// and streams events from the bus.
func NewConversationService(ctrl *app.Controller, b *bus.Bus, sessionName string, logger *zap.Logger) *ConversationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConversationService{ctrl: ctrl, bus: b, sessionName: sessionName, logger: logger}
}

func (s *ConversationService) OpenChat(ctx context.Context, req *wppmockv1.OpenChatRequest) (*wppmockv1.Conversation, error) {
	return snapshot(s.ctrl.OpenChat(ctx, req.ChatId))
}

func (s *ConversationService) CloseChat(ctx context.Context, _ *wppmockv1.CloseChatRequest) (*wppmockv1.Conversation, error) {
	return snapshot(s.ctrl.CloseChat(ctx))
}

func (s *ConversationService) GetConversation(ctx context.Context, _ *wppmockv1.GetConversationRequest) (*wppmockv1.Conversation, error) {
	return snapshot(s.ctrl.Conversation(ctx))
}

func (s *ConversationService) SendText(ctx context.Context, req *wppmockv1.SendTextRequest) (*wppmockv1.SendResponse, error) {
	return sent(s.ctrl.SendText(ctx, req.Text))
}

func (s *ConversationService) SendSticker(ctx context.Context, req *wppmockv1.SendStickerRequest) (*wppmockv1.SendResponse, error) {
	return sent(s.ctrl.SendSticker(ctx, req.Glyph))
}

func (s *ConversationService) SendImage(ctx context.Context, req *wppmockv1.SendImageRequest) (*wppmockv1.SendResponse, error) {
	return sent(s.ctrl.SendImage(ctx, conversation.Image{MIME: req.Mime, Data: req.Data}))
}

// WatchEvents streams bus events whose kind starts with the requested namespace.
func (s *ConversationService) WatchEvents(req *wppmockv1.WatchEventsRequest, stream grpc.ServerStreamingServer[wppmockv1.EventEnvelope]) error {
	ch, unsub := s.bus.Subscribe(req.Namespace, 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			payload, err := EncodePayload(evt)
			if err != nil {
				s.logger.Warn("failed to encode event", zap.String("kind", evt.Kind), zap.Error(err))
				continue
			}
			if err := stream.Send(&wppmockv1.EventEnvelope{
				EventId:          uuid.New().String(),
				Session:          s.sessionName,
				OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
				Kind:             evt.Kind,
				PayloadVersion:   PayloadVersion,
				Payload:          payload,
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

func snapshot(snap conversation.Snapshot, err error) (*wppmockv1.Conversation, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return ConversationToProto(snap), nil
}

func sent(e conversation.Entry, err error) (*wppmockv1.SendResponse, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return &wppmockv1.SendResponse{Entry: EntryToProto(e)}, nil
}
