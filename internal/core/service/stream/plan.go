package stream

import (
	"fmt"
	"media-share/internal/core/domain"
	"net/http"
	"time"
)

func (s *streamService) Plan(file domain.ResolvedFile, req domain.StreamRequest) domain.StreamPlan {
	contentType := s.mime.ContentType(file.Name)

	plan := domain.StreamPlan{
		TotalSize:          file.Size,
		CacheValidators:    Validators(file),
		CacheControl:       s.cacheControl(file.Name),
		ContentType:        contentType,
		ContentDisposition: ContentDisposition(file.Name),
	}

	// Range requests are always evaluated as ranges, never short-circuited to 304.
	if req.Range == "" {
		if notModified(plan.ETag, file.ModTime, req) {
			plan.Kind = domain.PlanNotModified
			return plan
		}
		plan.Kind = domain.PlanFull
		plan.Range = domain.ByteRange{Start: 0, End: file.Size - 1}
		return plan
	}

	byteRange, err := ParseRange(req.Range, file.Size)
	if err != nil {
		plan.Kind = domain.PlanUnsatisfiable
		return plan
	}

	plan.Kind = domain.PlanPartial
	plan.Range = byteRange
	return plan
}

// Validators derives the weak ETag and Last-Modified value of a file from its size and mtime
func Validators(file domain.ResolvedFile) domain.CacheValidators {
	return domain.CacheValidators{
		ETag:         fmt.Sprintf(`W/"%d-%d"`, file.Size, file.ModTime.UnixMilli()),
		LastModified: file.ModTime.UTC().Format(http.TimeFormat),
	}
}

func (s *streamService) cacheControl(name string) string {
	maxAge := s.cfg.DefaultMaxAge
	if s.mime.Kind(name) == domain.MediaKindImage {
		maxAge = s.cfg.ImageMaxAge
	}
	return fmt.Sprintf("public, max-age=%d", int64(maxAge/time.Second))
}

// notModified applies If-None-Match then If-Modified-Since. HTTP dates carry whole
// seconds, so the mtime is truncated before comparing.
func notModified(etag string, modTime time.Time, req domain.StreamRequest) bool {
	if req.IfNoneMatch != "" && req.IfNoneMatch == etag {
		return true
	}
	if !req.IfModifiedSince.IsZero() && !req.IfModifiedSince.Before(modTime.Truncate(time.Second)) {
		return true
	}
	return false
}
