package stream

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"media-share/internal/core/domain"
	"media-share/internal/core/service/pathguard"
	"os"
	"path"
)

func (s *streamService) Locate(ctx context.Context, relative string) (*domain.ResolvedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := s.guard.Resolve(relative)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, relative)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrNotFound, relative)
	}

	// a symlink is served under its own name, not its target's
	return &domain.ResolvedFile{
		Path:    abs,
		Name:    path.Base(pathguard.Clean(relative)),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
