package filesystem_test

import (
	"context"
	"media-share/internal/adapters/filesystem"
	"media-share/internal/core/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLister_List(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "comics"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.mp4"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.mkv"), []byte("a"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "comics"), filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "broken")))

	lister := filesystem.NewLister()

	t.Run("nominal", func(t *testing.T) {
		// Act
		entries, err := lister.List(ctx, root)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []domain.DirEntry{
			{Name: "a.mkv", IsFile: true},
			{Name: "b.mp4", IsFile: true},
			{Name: "comics", IsDir: true},
			{Name: "linked", IsDir: true},
		}, entries)
	})

	t.Run("empty directory", func(t *testing.T) {
		entries, err := lister.List(ctx, filepath.Join(root, "comics"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := lister.List(ctx, filepath.Join(root, "missing"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		_, err := lister.List(ctx, filepath.Join(root, "a.mkv"))
		require.ErrorIs(t, err, domain.ErrNotADirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := lister.List(cancelled, root)
		require.ErrorIs(t, err, context.Canceled)
	})
}
