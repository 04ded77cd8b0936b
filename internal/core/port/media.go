package port

import (
	"context"
	"io"
	"media-share/internal/core/domain"
)

// PathGuard is an interface to define traversal-safe path resolution
type PathGuard interface {
	Root() string
	Resolve(relative string) (string, error)
	Rel(abs string) (string, error)
}

// MimeResolver is an interface to define content type lookups
type MimeResolver interface {
	ContentType(name string) string
	Kind(name string) domain.MediaKind
	Supported(name string) bool
}

// DirectoryLister is an interface to define directory reads
type DirectoryLister interface {
	List(ctx context.Context, dir string) ([]domain.DirEntry, error)
}

// PageRenderer is an interface to define HTML page rendering
type PageRenderer interface {
	RenderListing(w io.Writer, listing domain.Listing) error
	RenderPlayer(w io.Writer, target domain.WatchTarget) error
	RenderComic(w io.Writer, gallery domain.Gallery) error
	RenderAudio(w io.Writer, gallery domain.Gallery) error
}

// StreamService is an interface to define range streaming
type StreamService interface {
	Locate(ctx context.Context, relative string) (*domain.ResolvedFile, error)
	Plan(file domain.ResolvedFile, req domain.StreamRequest) domain.StreamPlan
	Open(ctx context.Context, file domain.ResolvedFile, plan domain.StreamPlan) (io.ReadCloser, error)
}

// BrowseService is an interface to define browsing pages
type BrowseService interface {
	Listing(ctx context.Context, relative string) (*domain.Listing, error)
	Watch(ctx context.Context, relative string) (*domain.WatchTarget, error)
	Comic(ctx context.Context, relative string) (*domain.Gallery, error)
	Audio(ctx context.Context, relative string) (*domain.Gallery, error)
}

// PageCache is an interface to define a single cached rendered page
type PageCache interface {
	Get() ([]byte, bool)
	Put(body []byte)
}
