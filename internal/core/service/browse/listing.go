package browse

import (
	"context"
	"media-share/internal/core/domain"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ignoredExtensions never count against a folder being a comic
var ignoredExtensions = map[string]struct{}{
	"torrent":  {},
	"nfo":      {},
	"txt":      {},
	"url":      {},
	"sfv":      {},
	"db":       {},
	"ds_store": {},
}

func (s *browseService) Listing(ctx context.Context, relative string) (*domain.Listing, error) {
	dir, err := s.guard.Resolve(relative)
	if err != nil {
		return nil, err
	}
	rel, err := s.guard.Rel(dir)
	if err != nil {
		return nil, err
	}

	entries, err := s.lister.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	var dirNames, fileNames []string
	for _, entry := range entries {
		switch {
		case entry.IsDir:
			dirNames = append(dirNames, entry.Name)
		case entry.IsFile && s.mime.Supported(entry.Name):
			fileNames = append(fileNames, entry.Name)
		}
	}
	sortNatural(dirNames)
	sortNatural(fileNames)

	folders := make([]domain.FolderItem, len(dirNames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(inspectConcurrency)
	for i, name := range dirNames {
		g.Go(func() error {
			folders[i] = s.folderItem(gctx, joinRel(rel, name))
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files := make([]domain.FileItem, 0, len(fileNames))
	for _, name := range fileNames {
		files = append(files, s.fileItem(joinRel(rel, name), name))
	}

	title := path.Base(rel)
	if rel == "" {
		title = filepath.Base(s.guard.Root())
	}

	return &domain.Listing{
		Path:        rel,
		Title:       title,
		Breadcrumbs: breadcrumbs(rel),
		Folders:     folders,
		Files:       files,
	}, nil
}

// folderItem describes a sub-folder. Folders that cannot be inspected are shown as plain folders.
func (s *browseService) folderItem(ctx context.Context, rel string) domain.FolderItem {
	item := domain.FolderItem{
		Name: path.Base(rel),
		URL:  routeURL(domain.RouteFolder, rel),
	}

	dir, err := s.guard.Resolve(rel)
	if err != nil {
		return item
	}
	entries, err := s.lister.List(ctx, dir)
	if err != nil {
		return item
	}

	var visible []string
	for _, entry := range entries {
		if entry.IsFile && countsTowardsComic(entry.Name) {
			visible = append(visible, entry.Name)
		}
	}
	if len(visible) == 0 {
		return item
	}
	for _, name := range visible {
		if s.mime.Kind(name) != domain.MediaKindImage {
			return item
		}
	}

	sortNatural(visible)
	item.Comic = true
	item.Pages = len(visible)
	item.Thumbnail = routeURL(domain.RouteStream, joinRel(rel, visible[0]))
	return item
}

func (s *browseService) fileItem(rel, name string) domain.FileItem {
	kind := s.mime.Kind(name)
	item := domain.FileItem{
		Name: name,
		Kind: kind,
	}
	switch kind {
	case domain.MediaKindImage:
		item.URL = routeURL(domain.RouteComic, rel)
		item.Thumbnail = routeURL(domain.RouteStream, rel)
	case domain.MediaKindAudio:
		item.URL = routeURL(domain.RouteAudio, rel)
	default:
		item.URL = routeURL(domain.RouteWatch, rel)
	}
	return item
}

// countsTowardsComic skips dot-files, extension-less files and sidecar files
func countsTowardsComic(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	_, ignored := ignoredExtensions[ext]
	return !ignored
}
