package media_test

import (
	"io"
	"log/slog"
	"media-share/internal/adapters/cache/pagecache"
	"media-share/internal/adapters/filesystem"
	"media-share/internal/adapters/handlers/http/chi"
	"media-share/internal/adapters/handlers/http/chi/v1/media"
	"media-share/internal/adapters/mime"
	"media-share/internal/adapters/view"
	"media-share/internal/config"
	"media-share/internal/core/port"
	"media-share/internal/core/service/browse"
	"media-share/internal/core/service/pathguard"
	"media-share/internal/core/service/stream"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{PageTimeout: time.Minute},
		Media:  config.MediaConfig{ListingCacheTTL: 5 * time.Second},
		Stream: config.StreamConfig{
			BufferSize:    32 * 1024,
			ImageMaxAge:   24 * time.Hour,
			DefaultMaxAge: time.Minute,
		},
	}
}

// patternBytes returns n deterministic bytes
func patternBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte((i*31 + i/251) % 256)
	}
	return b
}

// newLibrary writes files under a fresh media root and returns its canonical path
func newLibrary(t *testing.T, files map[string][]byte, dirs ...string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, content, 0o644))
	}
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755))
	}

	canonical, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	return canonical
}

// newRouter wires the real services over root behind the application router
func newRouter(t *testing.T, root string) http.Handler {
	t.Helper()

	cfg := testConfig()
	guard, err := pathguard.NewGuard(root)
	require.NoError(t, err)
	resolver := mime.NewResolver()

	streamService := stream.NewStreamService(guard, resolver, cfg.Stream, discardLogger)
	browseService := browse.NewBrowseService(guard, filesystem.NewLister(), resolver)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	handler := media.NewMediaHandlerV1(streamService, browseService, renderer, pagecache.New(cfg.Media.ListingCacheTTL), cfg, discardLogger)
	return chi.NewRouter(discardLogger, handler, "")
}

// newMockRouter wires mocked services behind the application router
func newMockRouter(t *testing.T, streamService port.StreamService, browseService port.BrowseService) http.Handler {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	cfg := testConfig()
	handler := media.NewMediaHandlerV1(streamService, browseService, renderer, pagecache.New(0), cfg, discardLogger)
	return chi.NewRouter(discardLogger, handler, "")
}

func serve(h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
