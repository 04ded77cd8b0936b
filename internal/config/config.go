package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env    Env
	Server ServerConfig
	Media  MediaConfig
	Stream StreamConfig
	Log    LogConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host              string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port              string        `envconfig:"SERVER_PORT" default:"3000"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	PageTimeout       time.Duration `envconfig:"SERVER_PAGE_TIMEOUT" default:"60s"`
}

type MediaConfig struct {
	Root            string        `envconfig:"MEDIA_ROOT" required:"true"`
	CreateRoot      bool          `envconfig:"MEDIA_CREATE_ROOT" default:"true"`
	ListingCacheTTL time.Duration `envconfig:"MEDIA_LISTING_CACHE_TTL" default:"5s"`
}

type StreamConfig struct {
	BufferSize int `envconfig:"STREAM_BUFFER_SIZE" default:"32768"`
	// RateLimit is in bytes per second per stream, 0 = unlimited
	RateLimit     int64         `envconfig:"STREAM_RATE_LIMIT" default:"0"`
	ImageMaxAge   time.Duration `envconfig:"STREAM_IMAGE_MAX_AGE" default:"24h"`
	DefaultMaxAge time.Duration `envconfig:"STREAM_DEFAULT_MAX_AGE" default:"1m"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Media.Root) == "" {
		return nil, fmt.Errorf("MEDIA_ROOT must not be empty")
	}
	if cfg.Stream.BufferSize <= 0 {
		return nil, fmt.Errorf("STREAM_BUFFER_SIZE must be positive, got %d", cfg.Stream.BufferSize)
	}
	if cfg.Stream.RateLimit < 0 {
		return nil, fmt.Errorf("STREAM_RATE_LIMIT must not be negative, got %d", cfg.Stream.RateLimit)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
