package media

import (
	"bytes"
	"net/http"
)

// ListRootV1 is the function that handles the media root listing
func (h *HandlerV1) ListRootV1(w http.ResponseWriter, r *http.Request) {
	if body, ok := h.listingCache.Get(); ok {
		writeHTML(w, body)
		return
	}

	if body, ok := h.listing(w, r, ""); ok {
		h.listingCache.Put(body)
	}
}

// ListFolderV1 is the function that handles sub-folder listings
func (h *HandlerV1) ListFolderV1(w http.ResponseWriter, r *http.Request) {
	relative, err := wildcardPath(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	h.listing(w, r, relative)
}

func (h *HandlerV1) listing(w http.ResponseWriter, r *http.Request, relative string) ([]byte, bool) {
	listing, err := h.browseService.Listing(r.Context(), relative)
	if err != nil {
		h.writeError(w, r, relative, err, http.StatusInternalServerError)
		return nil, false
	}

	return h.render(w, relative, func(buf *bytes.Buffer) error {
		return h.renderer.RenderListing(buf, *listing)
	})
}
