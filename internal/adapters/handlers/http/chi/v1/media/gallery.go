package media

import (
	"bytes"
	"context"
	"io"
	"media-share/internal/core/domain"
	"net/http"
)

// ComicV1 is the function that handles the comic viewer
func (h *HandlerV1) ComicV1(w http.ResponseWriter, r *http.Request) {
	h.gallery(w, r, h.browseService.Comic, h.renderer.RenderComic)
}

// AudioV1 is the function that handles the audio playlist
func (h *HandlerV1) AudioV1(w http.ResponseWriter, r *http.Request) {
	h.gallery(w, r, h.browseService.Audio, h.renderer.RenderAudio)
}

func (h *HandlerV1) gallery(
	w http.ResponseWriter,
	r *http.Request,
	load func(ctx context.Context, relative string) (*domain.Gallery, error),
	renderPage func(w io.Writer, gallery domain.Gallery) error,
) {
	relative, err := wildcardPath(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	gallery, err := load(r.Context(), relative)
	switch {
	case err != nil:
		h.writeError(w, r, relative, err, http.StatusInternalServerError)
		return
	case gallery.RedirectURL != "":
		http.Redirect(w, r, gallery.RedirectURL, http.StatusFound)
		return
	}

	h.render(w, relative, func(buf *bytes.Buffer) error {
		return renderPage(buf, *gallery)
	})
}
