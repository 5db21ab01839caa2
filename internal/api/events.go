package api

import (
	"errors"
	"fmt"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/app"
	"github.com/matheus3301/wppmock/internal/bus"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"github.com/matheus3301/wppmock/internal/status"
	"google.golang.org/protobuf/proto"
)

// PayloadVersion is stamped on every streamed envelope.
const PayloadVersion = 1

// ErrUnknownEvent is returned by DecodePayload for kinds it has no message for.
var ErrUnknownEvent = errors.New("unknown event kind")

// eventPayload converts a bus payload into its wire message.
func eventPayload(evt bus.Event) (proto.Message, error) {
	switch p := evt.Payload.(type) {
	case app.ChatListView:
		return ChatListToProto(p), nil
	case chat.Record:
		return chatToProto(p), nil
	case conversation.Entry:
		return EntryToProto(p), nil
	case conversation.TypingChange:
		return &wppmockv1.TypingChanged{ChatId: p.ChatID, Typing: p.Typing}, nil
	case status.StatusChange:
		return &wppmockv1.StatusChanged{From: string(p.From), To: string(p.To)}, nil
	case int64:
		if evt.Kind == conversation.EventClosed {
			return &wppmockv1.ConversationClosed{ChatId: p}, nil
		}
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("no wire message for %s payload %T", evt.Kind, evt.Payload)
}

// EncodePayload marshals a bus event payload. A nil payload encodes to nil.
func EncodePayload(evt bus.Event) ([]byte, error) {
	msg, err := eventPayload(evt)
	if err != nil || msg == nil {
		return nil, err
	}
	return proto.Marshal(msg)
}

// DecodePayload unmarshals an envelope payload into the message for its kind.
func DecodePayload(env *wppmockv1.EventEnvelope) (proto.Message, error) {
	var msg proto.Message
	switch env.GetKind() {
	case app.EventChatListRendered:
		msg = &wppmockv1.ChatList{}
	case conversation.EventOpened:
		msg = &wppmockv1.Chat{}
	case conversation.EventClosed:
		msg = &wppmockv1.ConversationClosed{}
	case conversation.EventEntryAppended:
		msg = &wppmockv1.Entry{}
	case conversation.EventTypingChanged:
		msg = &wppmockv1.TypingChanged{}
	case status.EventStatusChanged:
		msg = &wppmockv1.StatusChanged{}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEvent, env.GetKind())
	}
	if err := proto.Unmarshal(env.GetPayload(), msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.GetKind(), err)
	}
	return msg, nil
}
