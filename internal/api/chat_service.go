package api

import (
	"context"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/app"
	"github.com/matheus3301/wppmock/internal/chat"
)

// ChatService implements the ChatService gRPC service.
type ChatService struct {
	wppmockv1.UnimplementedChatServiceServer

	ctrl *app.Controller
}

// NewChatService creates a new chat service backed by the controller.
func NewChatService(ctrl *app.Controller) *ChatService {
	return &ChatService{ctrl: ctrl}
}

// ListChats returns the current view when no tab or query is given, otherwise
// the view for them without changing the current tab or query.
func (s *ChatService) ListChats(ctx context.Context, req *wppmockv1.ListChatsRequest) (*wppmockv1.ChatList, error) {
	if req.Tab == "" && req.Query == "" {
		return chatList(s.ctrl.ChatList(ctx))
	}
	var tab chat.Tab
	if req.Tab != "" {
		t, err := chat.ParseTab(req.Tab)
		if err != nil {
			return nil, toStatus(err)
		}
		tab = t
	}
	return chatList(s.ctrl.Peek(ctx, tab, req.Query))
}

func (s *ChatService) SwitchTab(ctx context.Context, req *wppmockv1.SwitchTabRequest) (*wppmockv1.ChatList, error) {
	return chatList(s.ctrl.SwitchTab(ctx, chat.Tab(req.Tab)))
}

func (s *ChatService) Search(ctx context.Context, req *wppmockv1.SearchRequest) (*wppmockv1.ChatList, error) {
	return chatList(s.ctrl.Search(ctx, req.Query))
}

func (s *ChatService) MarkAllRead(ctx context.Context, _ *wppmockv1.MarkAllReadRequest) (*wppmockv1.ChatList, error) {
	return chatList(s.ctrl.MarkAllRead(ctx))
}

func chatList(view app.ChatListView, err error) (*wppmockv1.ChatList, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return ChatListToProto(view), nil
}
