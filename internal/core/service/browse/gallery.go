package browse

import (
	"context"
	"fmt"
	"media-share/internal/core/domain"
	"path"
	"path/filepath"
)

func (s *browseService) Comic(ctx context.Context, relative string) (*domain.Gallery, error) {
	return s.gallery(ctx, relative, domain.MediaKindImage)
}

func (s *browseService) Audio(ctx context.Context, relative string) (*domain.Gallery, error) {
	return s.gallery(ctx, relative, domain.MediaKindAudio)
}

// gallery collects the files of one kind in a folder. For a file, its siblings are
// collected and the gallery starts at the file; a file of another kind is redirected
// to the raw stream.
func (s *browseService) gallery(ctx context.Context, relative string, kind domain.MediaKind) (*domain.Gallery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, info, rel, err := s.stat(relative)
	if err != nil {
		return nil, err
	}

	dir, dirRel, current := abs, rel, ""
	if !info.IsDir() {
		if s.mime.Kind(rel) != kind {
			return &domain.Gallery{RedirectURL: routeURL(domain.RouteStream, rel)}, nil
		}
		// siblings come from the folder the client asked for, not the link target's
		dirRel = path.Dir(rel)
		if dirRel == "." {
			dirRel = ""
		}
		dir, err = s.guard.Resolve(dirRel)
		if err != nil {
			return nil, err
		}
		current = path.Base(rel)
	}

	entries, err := s.lister.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsFile && s.mime.Kind(entry.Name) == kind {
			names = append(names, entry.Name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", domain.ErrNoMedia, kind, relative)
	}
	sortNatural(names)

	gallery := &domain.Gallery{
		Items: make([]string, 0, len(names)),
	}
	for i, name := range names {
		gallery.Items = append(gallery.Items, routeURL(domain.RouteStream, joinRel(dirRel, name)))
		if name == current {
			gallery.StartIndex = i
		}
	}

	switch {
	case current != "":
		gallery.Title = current
	case rel == "":
		gallery.Title = filepath.Base(s.guard.Root())
	default:
		gallery.Title = path.Base(rel)
	}

	return gallery, nil
}
