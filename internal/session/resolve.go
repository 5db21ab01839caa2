package session

import (
	"os"

	"github.com/matheus3301/wppmock/internal/config"
)

// DefaultSessionName is used when nothing else names a session.
const DefaultSessionName = "main"

// SessionEnv names the session for every binary started from a shell,
// e.g. WPPMOCK_SESSION=demo.
const SessionEnv = "WPPMOCK_SESSION"

// Resolve picks the session for wppmock, wppmockd and wppmockctl. The
// --session flag wins, then WPPMOCK_SESSION, then default_session in
// config.toml, then "main".
func Resolve(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	if name := os.Getenv(SessionEnv); name != "" {
		return name
	}
	cfg, err := config.Load(ConfigPath())
	if err == nil && cfg.DefaultSession != "" {
		return cfg.DefaultSession
	}
	return DefaultSessionName
}
