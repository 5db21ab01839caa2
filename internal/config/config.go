package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
)

// DefaultStickers is the picker set used when the config names none.
var DefaultStickers = []string{"😀", "😂", "😍", "👍", "🎉", "🙏", "🔥", "❤️"}

// Config represents the global ~/.wppmock/config.toml.
type Config struct {
	DefaultSession string        `toml:"default_session"`
	Demo           DemoConfig    `toml:"demo"`
	Log            LogConfig     `toml:"log"`
	Chats          []chat.Record `toml:"chats,omitempty"`
}

// DemoConfig tunes the simulated remote side.
type DemoConfig struct {
	ReplyText          string   `toml:"reply_text"`
	ReplyDelay         Duration `toml:"reply_delay"`
	StickerDelay       Duration `toml:"sticker_delay"`
	PersistTranscripts bool     `toml:"persist_transcripts"`
	Stickers           []string `toml:"stickers"`
}

// LogConfig controls the daemon log file.
type LogConfig struct {
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Duration is a time.Duration written as "1200ms" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns a config with every field filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if c.Demo.ReplyText == "" {
		c.Demo.ReplyText = conversation.DefaultReplyText
	}
	if c.Demo.ReplyDelay.Duration <= 0 {
		c.Demo.ReplyDelay.Duration = conversation.DefaultReplyDelay
	}
	if c.Demo.StickerDelay.Duration <= 0 {
		c.Demo.StickerDelay.Duration = conversation.DefaultStickerDelay
	}
	if len(c.Demo.Stickers) == 0 {
		c.Demo.Stickers = append([]string(nil), DefaultStickers...)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAgeDays <= 0 {
		c.Log.MaxAgeDays = 28
	}
	if len(c.Chats) == 0 {
		c.Chats = chat.DefaultSeed()
	}
}

// SessionOptions returns the conversation tuning derived from the demo section.
func (c *Config) SessionOptions() conversation.Options {
	return conversation.Options{
		ReplyText:    c.Demo.ReplyText,
		ReplyDelay:   c.Demo.ReplyDelay.Duration,
		StickerDelay: c.Demo.StickerDelay.Duration,
	}
}

// Load reads config from the given path. Returns nil config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault reads config from path, falling back to defaults when the file
// does not exist. The result is always normalized.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = &Config{}
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
