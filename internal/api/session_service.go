package api

import (
	"context"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/app"
	"github.com/matheus3301/wppmock/internal/config"
	"github.com/matheus3301/wppmock/internal/status"
)

// EntryCounter reports how many transcript entries are persisted.
type EntryCounter interface {
	EntryCount() (int, error)
}

// SessionService implements the SessionService gRPC service.
type SessionService struct {
	wppmockv1.UnimplementedSessionServiceServer

	sessionName string
	machine     *status.Machine
	ctrl        *app.Controller
	entries     EntryCounter
	demo        config.DemoConfig
}

// NewSessionService creates a new session service. entries may be nil.
func NewSessionService(sessionName string, machine *status.Machine, ctrl *app.Controller, entries EntryCounter, demo config.DemoConfig) *SessionService {
	return &SessionService{
		sessionName: sessionName,
		machine:     machine,
		ctrl:        ctrl,
		entries:     entries,
		demo:        demo,
	}
}

func (s *SessionService) GetStatus(ctx context.Context, _ *wppmockv1.GetStatusRequest) (*wppmockv1.GetStatusResponse, error) {
	current := s.machine.Current()

	resp := &wppmockv1.GetStatusResponse{
		Session:            s.sessionName,
		Status:             string(current),
		StatusSinceUnixMs:  s.machine.Since().UnixMilli(),
		UptimeMs:           s.machine.Uptime().Milliseconds(),
		PersistTranscripts: s.demo.PersistTranscripts,
		Stickers:           s.demo.Stickers,
	}

	// Counts are best effort: a stopped controller still reports status.
	if s.ctrl != nil {
		if n, err := s.ctrl.ChatCount(ctx); err == nil {
			resp.ChatCount = int32(n)
		}
		if snap, err := s.ctrl.Conversation(ctx); err == nil && snap.Chat != nil {
			resp.OpenChatId = snap.Chat.ID
			if s.entries == nil {
				resp.EntryCount = int32(len(snap.Entries))
			}
		}
	}
	if s.entries != nil {
		if n, err := s.entries.EntryCount(); err == nil {
			resp.EntryCount = int32(n)
		}
	}

	return resp, nil
}
