package stream

import (
	"log/slog"
	"media-share/internal/config"
	"media-share/internal/core/port"
)

type streamService struct {
	guard  port.PathGuard
	mime   port.MimeResolver
	cfg    config.StreamConfig
	logger *slog.Logger
}

// NewStreamService creates a new stream service
func NewStreamService(guard port.PathGuard, mime port.MimeResolver, cfg config.StreamConfig, logger *slog.Logger) port.StreamService {
	return &streamService{
		guard:  guard,
		mime:   mime,
		cfg:    cfg,
		logger: logger,
	}
}
