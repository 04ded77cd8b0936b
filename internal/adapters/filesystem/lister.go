package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"media-share/internal/core/domain"
	"os"
	"path/filepath"
	"syscall"
)

// Lister reads directories from the local filesystem
type Lister struct{}

// NewLister returns Lister
func NewLister() *Lister {
	return &Lister{}
}

// List returns the entries of dir sorted by name. Symlinks are followed to classify entries.
func (l *Lister) List(ctx context.Context, dir string) ([]domain.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, dir)
		case errors.Is(err, syscall.ENOTDIR):
			return nil, fmt.Errorf("%w: %s", domain.ErrNotADirectory, dir)
		default:
			return nil, fmt.Errorf("failed to read directory: %w", err)
		}
	}

	entries := make([]domain.DirEntry, 0, len(dirents))
	for _, d := range dirents {
		entry := domain.DirEntry{
			Name:   d.Name(),
			IsDir:  d.IsDir(),
			IsFile: d.Type().IsRegular(),
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// broken links are skipped
			info, statErr := os.Stat(filepath.Join(dir, d.Name()))
			if statErr != nil {
				continue
			}
			entry.IsDir = info.IsDir()
			entry.IsFile = info.Mode().IsRegular()
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
