package browse

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

func (s *browseService) Watch(ctx context.Context, relative string) (*domain.WatchTarget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, info, rel, err := s.stat(relative)
	if err != nil {
		return nil, err
	}

	switch {
	case info.IsDir():
		return &domain.WatchTarget{RedirectURL: routeURL(domain.RouteFolder, rel)}, nil
	case s.mime.Kind(rel) == domain.MediaKindImage:
		return &domain.WatchTarget{RedirectURL: routeURL(domain.RouteComic, rel)}, nil
	case s.mime.Kind(rel) == domain.MediaKindAudio:
		return &domain.WatchTarget{RedirectURL: routeURL(domain.RouteAudio, rel)}, nil
	}

	return &domain.WatchTarget{
		Title:  path.Base(rel),
		Source: routeURL(domain.RouteStream, rel),
	}, nil
}

// stat resolves relative and returns its canonical path, its metadata and the requested
// path in clean form. The requested form keeps symlinks under their own names.
func (s *browseService) stat(relative string) (string, os.FileInfo, string, error) {
	abs, err := s.guard.Resolve(relative)
	if err != nil {
		return "", nil, "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, "", fmt.Errorf("%w: %s", domain.ErrNotFound, relative)
		}
		return "", nil, "", fmt.Errorf("failed to stat path: %w", err)
	}
	return abs, info, pathguard.Clean(relative), nil
}
