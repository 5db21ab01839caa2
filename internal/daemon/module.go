package daemon

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/app"
	"github.com/matheus3301/wppmock/internal/bus"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/config"
	"github.com/matheus3301/wppmock/internal/lock"
	"github.com/matheus3301/wppmock/internal/logging"
	"github.com/matheus3301/wppmock/internal/session"
	"github.com/matheus3301/wppmock/internal/status"
	"github.com/matheus3301/wppmock/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
	ConfigPath  string // optional override; empty = ~/.wppmock/config.toml
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideClock,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			app.NewStoreRepository,
			provideChatStore,
			provideController,
			api.NewChatService,
			provideConversationService,
			provideSessionService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = session.ConfigPath()
	}
	return config.LoadOrDefault(path)
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName, logging.Options{
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
}

func provideClock() clock.Clock {
	return clock.New()
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus, clk clock.Clock) *status.Machine {
	return status.NewMachine(b, clk)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

// provideStore opens wppmock.db. It depends on the lock so only the lock
// holder ever touches the database.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	db, err := store.Open(session.DBPath(p.SessionName))
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", db.Path))
	return db, nil
}

func provideChatStore(repo *app.StoreRepository, cfg *config.Config, machine *status.Machine, logger *zap.Logger) (*chat.Store, error) {
	if err := machine.Transition(status.Seeding); err != nil {
		return nil, err
	}
	records, err := repo.LoadChats(cfg.Chats)
	if err != nil {
		machine.Fail()
		return nil, err
	}
	chats, err := chat.NewStore(records)
	if err != nil {
		machine.Fail()
		return nil, fmt.Errorf("chat store: %w", err)
	}
	logger.Info("chat list loaded", zap.Int("chats", chats.Len()))
	return chats, nil
}

func provideController(chats *chat.Store, clk clock.Clock, b *bus.Bus, repo *app.StoreRepository, cfg *config.Config, logger *zap.Logger) *app.Controller {
	return app.New(chats, clk, b, repo, logger, app.Options{
		Session:            cfg.SessionOptions(),
		PersistTranscripts: cfg.Demo.PersistTranscripts,
	})
}

func provideConversationService(p Params, ctrl *app.Controller, b *bus.Bus, logger *zap.Logger) *api.ConversationService {
	return api.NewConversationService(ctrl, b, p.SessionName, logger)
}

func provideSessionService(p Params, machine *status.Machine, ctrl *app.Controller, repo *app.StoreRepository, cfg *config.Config) *api.SessionService {
	var entries api.EntryCounter
	if cfg.Demo.PersistTranscripts {
		entries = repo
	}
	return api.NewSessionService(p.SessionName, machine, ctrl, entries, cfg.Demo)
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, lk *lock.Lock, db *store.DB, ctrl *app.Controller, machine *status.Machine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ctrl.Start(context.Background())

			// Start gRPC server in background.
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
					machine.Fail()
				}
			}()

			if err := machine.Transition(status.Ready); err != nil {
				return err
			}
			logger.Info("daemon ready")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = machine.Transition(status.Stopping)
			srv.Stop(ctx)
			ctrl.Stop()
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
