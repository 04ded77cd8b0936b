package mime

import (
	"media-share/internal/core/domain"
	"path/filepath"
	"strings"
)

// DefaultContentType is returned for extensions outside the table
const DefaultContentType = "application/octet-stream"

// MediaTypes maps lower-case extensions (without dot) to content types
var MediaTypes = map[string]string{
	// Videos
	"mp4":  "video/mp4",
	"mkv":  "video/x-matroska",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"webm": "video/webm",
	"flv":  "video/x-flv",
	"wmv":  "video/x-ms-wmv",
	"m4v":  "video/x-m4v",
	"ts":   "video/MP2T",
	"mpeg": "video/mpeg",
	"mpg":  "video/mpeg",
	"mts":  "video/MP2T",
	"m2ts": "video/MP2T",

	// Images
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"avif": "image/avif",
	"heic": "image/heic",
	"ico":  "image/x-icon",
	"svg":  "image/svg+xml",

	// Audio
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"aac":  "audio/aac",
	"flac": "audio/flac",
	"ogg":  "audio/ogg",
	"m4a":  "audio/mp4",
}

// Resolver resolves content types from file names
type Resolver struct {
	types map[string]string
}

// NewResolver creates a Resolver over MediaTypes
func NewResolver() *Resolver {
	return &Resolver{types: MediaTypes}
}

// ContentType returns the content type of name, DefaultContentType when unknown
func (r *Resolver) ContentType(name string) string {
	if ct, ok := r.types[Extension(name)]; ok {
		return ct
	}
	return DefaultContentType
}

// Kind classifies name into a media bucket
func (r *Resolver) Kind(name string) domain.MediaKind {
	ct, ok := r.types[Extension(name)]
	if !ok {
		return domain.MediaKindUnknown
	}
	return KindOf(ct)
}

// Supported reports whether name has a known media extension
func (r *Resolver) Supported(name string) bool {
	_, ok := r.types[Extension(name)]
	return ok
}

// KindOf classifies a content type
func KindOf(contentType string) domain.MediaKind {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return domain.MediaKindImage
	case strings.HasPrefix(contentType, "video/"):
		return domain.MediaKindVideo
	case strings.HasPrefix(contentType, "audio/"):
		return domain.MediaKindAudio
	default:
		return domain.MediaKindUnknown
	}
}

// Extension returns the lower-case extension of name without the leading dot
func Extension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}
