package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"media-share/internal/adapters/mime"
	"media-share/internal/core/domain"
	"net/url"
	"path"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders the HTML pages from the embedded templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	templates, err := template.New("pages").Funcs(template.FuncMap{
		"icon":  Icon,
		"label": Label,
		"inc":   func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// RenderListing renders a folder listing
func (r *Renderer) RenderListing(w io.Writer, listing domain.Listing) error {
	return r.execute(w, "listing", listing)
}

// RenderPlayer renders the video player page
func (r *Renderer) RenderPlayer(w io.Writer, target domain.WatchTarget) error {
	return r.execute(w, "player", target)
}

// RenderComic renders the comic viewer
func (r *Renderer) RenderComic(w io.Writer, gallery domain.Gallery) error {
	if err := checkGallery(gallery); err != nil {
		return err
	}
	return r.execute(w, "comic", gallery)
}

// RenderAudio renders the audio playlist
func (r *Renderer) RenderAudio(w io.Writer, gallery domain.Gallery) error {
	if err := checkGallery(gallery); err != nil {
		return err
	}
	return r.execute(w, "audio", gallery)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s page: %w", name, err)
	}
	return nil
}

func checkGallery(gallery domain.Gallery) error {
	if gallery.StartIndex < 0 || gallery.StartIndex >= len(gallery.Items) {
		return fmt.Errorf("gallery start index %d out of %d items", gallery.StartIndex, len(gallery.Items))
	}
	return nil
}

// Icon picks the font-awesome icon of a file card
func Icon(file domain.FileItem) string {
	if file.Kind == domain.MediaKindAudio {
		return "fa-music"
	}
	switch mime.Extension(file.Name) {
	case "mp4":
		return "fa-file-video-o"
	case "mkv":
		return "fa-film"
	default:
		return "fa-play-circle"
	}
}

// Label turns a stream URL back into a display name
func Label(streamURL string) string {
	name := path.Base(streamURL)
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}
