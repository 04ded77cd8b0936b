package media

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"media-share/internal/config"
	"media-share/internal/core/domain"
	"media-share/internal/core/port"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HandlerV1 is the handler for media browsing and streaming routes
type HandlerV1 struct {
	streamService port.StreamService
	browseService port.BrowseService
	renderer      port.PageRenderer
	listingCache  port.PageCache
	logger        *slog.Logger
	bufferSize    int
	pageTimeout   time.Duration
}

// NewMediaHandlerV1 creates HandlerV1
func NewMediaHandlerV1(
	streamService port.StreamService,
	browseService port.BrowseService,
	renderer port.PageRenderer,
	listingCache port.PageCache,
	cfg *config.Config,
	logger *slog.Logger,
) *HandlerV1 {
	return &HandlerV1{
		streamService: streamService,
		browseService: browseService,
		renderer:      renderer,
		listingCache:  listingCache,
		logger:        logger,
		bufferSize:    cfg.Stream.BufferSize,
		pageTimeout:   cfg.Server.PageTimeout,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	// streams are long lived and byte addressed: no timeout, no compression
	router.Get(domain.RouteStream+"*", h.StreamV1)
	router.Head(domain.RouteStream+"*", h.StreamV1)

	router.Group(func(r chi.Router) {
		if h.pageTimeout > 0 {
			r.Use(middleware.Timeout(h.pageTimeout))
		}
		r.Use(middleware.Compress(5, "text/html"))

		r.Get("/", h.ListRootV1)
		r.Get(domain.RouteFolder+"*", h.ListFolderV1)
		r.Get(domain.RouteWatch+"*", h.WatchV1)
		r.Get(domain.RouteComic+"*", h.ComicV1)
		r.Get(domain.RouteAudio+"*", h.AudioV1)
	})

	return router
}

// wildcardPath returns the decoded relative path captured by the route wildcard.
// chi matches on RawPath when the request carries one, in which case the
// captured value is still escaped.
func wildcardPath(r *http.Request) (string, error) {
	captured := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return captured, nil
	}
	return url.PathUnescape(captured)
}

// writeError maps service errors to responses. fallback is used for unexpected errors.
func (h *HandlerV1) writeError(w http.ResponseWriter, r *http.Request, relative string, err error, fallback int) {
	switch {
	case errors.Is(err, domain.ErrPathUnsafe):
		h.logger.Warn("path traversal attempt",
			"request_id", middleware.GetReqID(r.Context()),
			"path", relative,
			"remote_addr", r.RemoteAddr,
		)
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrNotADirectory),
		errors.Is(err, domain.ErrNoMedia):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, context.Canceled):
		h.logger.Debug("request cancelled", "path", relative)
	default:
		h.logger.Error("error serving media", "path", relative, "error", err)
		http.Error(w, strings.ToLower(http.StatusText(fallback)), fallback)
	}
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// render buffers a page so a template failure can still produce an error status
func (h *HandlerV1) render(w http.ResponseWriter, relative string, fn func(buf *bytes.Buffer) error) ([]byte, bool) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		h.logger.Error("error rendering page", "path", relative, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	body := buf.Bytes()
	writeHTML(w, body)
	return body, true
}
