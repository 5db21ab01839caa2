package daemon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/config"
	"github.com/matheus3301/wppmock/internal/lock"
	"github.com/matheus3301/wppmock/internal/session"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// testHome points the session base dir at a short /tmp path to stay under
// the 104-char Unix socket limit on macOS.
func testHome(t *testing.T) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("/tmp", "wppmock-d-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })
	t.Setenv(session.BaseDirEnv, tmpDir)
	return tmpDir
}

func dial(t *testing.T, socketPath string) (wppmockv1.ChatServiceClient, wppmockv1.ConversationServiceClient, wppmockv1.SessionServiceClient) {
	t.Helper()
	conn, err := grpc.NewClient("unix://"+socketPath, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return wppmockv1.NewChatServiceClient(conn), wppmockv1.NewConversationServiceClient(conn), wppmockv1.NewSessionServiceClient(conn)
}

func TestDaemonLifecycle(t *testing.T) {
	home := testHome(t)
	socketPath := filepath.Join(home, "d.sock")

	app := fxtest.New(t, fx.NopLogger, Module(Params{SessionName: "test", SocketPath: socketPath}))
	app.RequireStart()

	chats, conv, sess := dial(t, socketPath)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := sess.GetStatus(ctx, &wppmockv1.GetStatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus error = %v", err)
	}
	if st.Session != "test" || st.Status != "READY" {
		t.Errorf("status = %+v, want test/READY", st)
	}
	if st.ChatCount != 3 {
		t.Errorf("chat count = %d, want 3 seeded chats", st.ChatCount)
	}

	list, err := chats.SwitchTab(ctx, &wppmockv1.SwitchTabRequest{Tab: "unread"})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Chats) != 1 {
		t.Fatalf("unread = %+v", list.Chats)
	}
	if _, err := conv.OpenChat(ctx, &wppmockv1.OpenChatRequest{ChatId: list.Chats[0].Id}); err != nil {
		t.Fatal(err)
	}

	// The lock is held while the daemon runs.
	if _, held := lock.Holder(session.Dir("test")); !held {
		t.Error("session lock not held by running daemon")
	}

	app.RequireStop()

	if _, err := os.Stat(socketPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("socket still present after stop: %v", err)
	}
	if _, held := lock.Holder(session.Dir("test")); held {
		t.Error("session lock still held after stop")
	}
}

// TestUnreadResetSurvivesRestart opens an unread chat, restarts the daemon
// and checks the counter was written through to wppmock.db.
func TestUnreadResetSurvivesRestart(t *testing.T) {
	home := testHome(t)
	socketPath := filepath.Join(home, "d.sock")
	p := Params{SessionName: "restart", SocketPath: socketPath}

	first := fxtest.New(t, fx.NopLogger, Module(p))
	first.RequireStart()
	_, conv, _ := dial(t, socketPath)
	if _, err := conv.OpenChat(context.Background(), &wppmockv1.OpenChatRequest{ChatId: 2}); err != nil {
		t.Fatal(err)
	}
	first.RequireStop()

	second := fxtest.New(t, fx.NopLogger, Module(p))
	second.RequireStart()
	defer second.RequireStop()

	chats, _, _ := dial(t, socketPath)
	list, err := chats.ListChats(context.Background(), &wppmockv1.ListChatsRequest{Tab: "unread"})
	if err != nil {
		t.Fatal(err)
	}
	if !list.Empty {
		t.Errorf("unread after restart = %+v, want empty", list.Chats)
	}
}

func TestConfigSeedAndPersistence(t *testing.T) {
	home := testHome(t)
	socketPath := filepath.Join(home, "d.sock")
	cfgPath := filepath.Join(home, "custom.toml")

	cfg := config.Default()
	cfg.Demo.PersistTranscripts = true
	cfg.Chats = []chat.Record{{ID: 42, Name: "Config Chat", IsFavorite: true}}
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatal(err)
	}

	app := fxtest.New(t, fx.NopLogger, Module(Params{SessionName: "cfg", SocketPath: socketPath, ConfigPath: cfgPath}))
	app.RequireStart()
	defer app.RequireStop()

	chats, conv, sess := dial(t, socketPath)
	ctx := context.Background()

	list, err := chats.ListChats(ctx, &wppmockv1.ListChatsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Chats) != 1 || list.Chats[0].Name != "Config Chat" {
		t.Fatalf("chats = %+v", list.Chats)
	}

	if _, err := conv.OpenChat(ctx, &wppmockv1.OpenChatRequest{ChatId: 42}); err != nil {
		t.Fatal(err)
	}
	if _, err := conv.SendSticker(ctx, &wppmockv1.SendStickerRequest{Glyph: "🔥"}); err != nil {
		t.Fatal(err)
	}
	st, err := sess.GetStatus(ctx, &wppmockv1.GetStatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if !st.PersistTranscripts || st.EntryCount != 1 || st.OpenChatId != 42 {
		t.Errorf("status = %+v", st)
	}
}

func TestSecondDaemonFailsOnLock(t *testing.T) {
	home := testHome(t)
	p := Params{SessionName: "dup", SocketPath: filepath.Join(home, "a.sock")}

	first := fxtest.New(t, fx.NopLogger, Module(p))
	first.RequireStart()
	defer first.RequireStop()

	p.SocketPath = filepath.Join(home, "b.sock")
	second := fx.New(fx.NopLogger, Module(p))
	err := second.Err()
	var held *lock.LockHeldError
	if !errors.As(err, &held) {
		t.Fatalf("error = %v, want LockHeldError", err)
	}
	if held.PID != os.Getpid() {
		t.Errorf("holder pid = %d, want %d", held.PID, os.Getpid())
	}
}
