package stream_test

import (
	"io"
	"log/slog"
	"media-share/internal/adapters/mime"
	"media-share/internal/config"
	"media-share/internal/core/port"
	"media-share/internal/core/service/pathguard"
	"media-share/internal/core/service/stream"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testStreamConfig = config.StreamConfig{
	BufferSize:    32 * 1024,
	ImageMaxAge:   24 * time.Hour,
	DefaultMaxAge: time.Minute,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatRange(start, end int64) string {
	return "bytes=" + itoa(start) + "-" + itoa(end)
}

// patternBytes returns n deterministic, non repeating-looking bytes
func patternBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte((i*31 + i/251) % 256)
	}
	return b
}

// newTestService creates a media root with the given files and a stream service over it
func newTestService(t *testing.T, cfg config.StreamConfig, files map[string][]byte) (port.StreamService, string) {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, content, 0o644))
	}

	guard, err := pathguard.NewGuard(root)
	require.NoError(t, err)

	return stream.NewStreamService(guard, mime.NewResolver(), cfg, discardLogger()), guard.Root()
}
