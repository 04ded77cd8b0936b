package domain

import "time"

// MediaKind is the browsing category of a file
type MediaKind string

const (
	MediaKindVideo   MediaKind = "video"
	MediaKindImage   MediaKind = "image"
	MediaKindAudio   MediaKind = "audio"
	MediaKindUnknown MediaKind = "unknown"
)

// ResolvedFile is a path validated against the media root plus the metadata read at validation time.
// Path is canonical; Name is the last segment of the requested path.
type ResolvedFile struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// DirEntry is a single directory entry as returned by a lister
type DirEntry struct {
	Name  string
	IsDir bool
	// IsFile is true for regular files only
	IsFile bool
}

// Route prefixes exposed by the media handler
const (
	RouteStream = "/video/"
	RouteWatch  = "/watch/"
	RouteFolder = "/folder/"
	RouteComic  = "/comic/"
	RouteAudio  = "/audio/"
)
