package media

import (
	"bytes"
	"net/http"
)

// WatchV1 is the function that handles the video player page
func (h *HandlerV1) WatchV1(w http.ResponseWriter, r *http.Request) {
	relative, err := wildcardPath(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	target, err := h.browseService.Watch(r.Context(), relative)
	switch {
	case err != nil:
		h.writeError(w, r, relative, err, http.StatusInternalServerError)
		return
	case target.RedirectURL != "":
		http.Redirect(w, r, target.RedirectURL, http.StatusFound)
		return
	}

	h.render(w, relative, func(buf *bytes.Buffer) error {
		return h.renderer.RenderPlayer(buf, *target)
	})
}
