package media

import (
	"io"
	"media-share/internal/core/domain"
	"net/http"
	"strconv"
)

// StreamV1 is the function that handles ranged file streaming
func (h *HandlerV1) StreamV1(w http.ResponseWriter, r *http.Request) {
	relative, err := wildcardPath(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	file, err := h.streamService.Locate(r.Context(), relative)
	if err != nil {
		h.writeError(w, r, relative, err, http.StatusNotFound)
		return
	}

	plan := h.streamService.Plan(*file, streamRequest(r))
	header := w.Header()

	switch plan.Kind {
	case domain.PlanNotModified:
		writeValidators(header, plan)
		w.WriteHeader(http.StatusNotModified)
		return
	case domain.PlanUnsatisfiable:
		header.Set("Content-Range", plan.ContentRange())
		http.Error(w, "range not satisfiable", http.StatusRequestedRangeNotSatisfiable)
		return
	}

	var body io.ReadCloser
	if plan.HasBody() {
		body, err = h.streamService.Open(r.Context(), *file, plan)
		if err != nil {
			h.writeError(w, r, relative, err, http.StatusNotFound)
			return
		}
		defer body.Close()
	}

	writeValidators(header, plan)
	header.Set("Accept-Ranges", "bytes")
	header.Set("Content-Type", plan.ContentType)
	header.Set("Content-Length", strconv.FormatInt(plan.ContentLength(), 10))
	header.Set("Content-Disposition", plan.ContentDisposition)
	if plan.Kind == domain.PlanPartial {
		header.Set("Content-Range", plan.ContentRange())
	}
	w.WriteHeader(plan.Status())

	if body == nil || r.Method == http.MethodHead {
		return
	}

	buf := make([]byte, h.bufferSize)
	written, err := io.CopyBuffer(writerOnly{w}, body, buf)
	if err != nil {
		if r.Context().Err() != nil {
			h.logger.Debug("client went away", "path", relative, "offset", plan.Range.Start+written)
			return
		}
		// headers are gone, the only signal left is a broken connection
		h.logger.Error("stream interrupted",
			"path", relative,
			"offset", plan.Range.Start+written,
			"error", err,
		)
		panic(http.ErrAbortHandler)
	}
}

func streamRequest(r *http.Request) domain.StreamRequest {
	req := domain.StreamRequest{
		Range:       r.Header.Get("Range"),
		IfNoneMatch: r.Header.Get("If-None-Match"),
	}
	if ims := r.Header.Get("If-Modified-Since"); ims != "" {
		if t, err := http.ParseTime(ims); err == nil {
			req.IfModifiedSince = t
		}
	}
	return req
}

func writeValidators(header http.Header, plan domain.StreamPlan) {
	header.Set("ETag", plan.ETag)
	header.Set("Last-Modified", plan.LastModified)
	header.Set("Cache-Control", plan.CacheControl)
}

// writerOnly hides io.ReaderFrom so the copy uses the configured buffer
type writerOnly struct {
	io.Writer
}
