package media_test

import (
	"compress/gzip"
	"errors"
	"media-share/internal/core/domain"
	"media-share/internal/core/service/browse"
	"media-share/internal/core/service/stream"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func document(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func pageLibrary(t *testing.T) string {
	return newLibrary(t, map[string][]byte{
		"a.mp4":              []byte("video"),
		"b.mkv":              []byte("video"),
		"notes.txt":          []byte("ignored"),
		"comics/1.jpg":       []byte("page"),
		"comics/2.jpg":       []byte("page"),
		"comics/10.jpg":      []byte("page"),
		"comics/info.nfo":    []byte("sidecar"),
		"music/01 intro.mp3": []byte("audio"),
		"music/02.flac":      []byte("audio"),
	}, "empty")
}

func TestListRootV1(t *testing.T) {
	root := pageLibrary(t)
	h := newRouter(t, root)

	t.Run("success - root listing", func(t *testing.T) {
		// Act
		w := serve(h, http.MethodGet, "/", nil)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

		doc := document(t, w.Body.String())
		assert.Equal(t, filepath.Base(root), doc.Find("h1").Text())

		var folders []string
		doc.Find("#folders a.folder").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			folders = append(folders, href)
		})
		assert.Equal(t, []string{"/folder/comics", "/folder/empty", "/folder/music"}, folders)
		assert.True(t, doc.Find("#folders a.folder").First().HasClass("comic"))

		var files []string
		doc.Find("#items a.file").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			files = append(files, href)
		})
		assert.Equal(t, []string{"/watch/a.mp4", "/watch/b.mkv"}, files)
	})

	t.Run("success - root listing is cached", func(t *testing.T) {
		// Arrange
		first := serve(h, http.MethodGet, "/", nil)
		require.NoError(t, os.WriteFile(filepath.Join(root, "c.mp4"), []byte("new"), 0o644))

		// Act
		second := serve(h, http.MethodGet, "/", nil)
		uncached := serve(h, http.MethodGet, "/folder/", nil)

		// Assert
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.NotContains(t, second.Body.String(), "c.mp4")
		assert.Contains(t, uncached.Body.String(), "c.mp4")
	})

	t.Run("success - pages are compressed", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/", map[string]string{"Accept-Encoding": "gzip"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		reader, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		doc, err := goquery.NewDocumentFromReader(reader)
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(root), doc.Find("h1").Text())
	})
}

func TestListFolderV1(t *testing.T) {
	h := newRouter(t, pageLibrary(t))

	t.Run("success - sub folder", func(t *testing.T) {
		// Act
		w := serve(h, http.MethodGet, "/folder/music", nil)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		doc := document(t, w.Body.String())
		assert.Equal(t, "music", doc.Find("h1").Text())
		assert.Equal(t, 2, doc.Find("nav.breadcrumbs a").Length())

		href, _ := doc.Find("#items a.file").First().Attr("href")
		assert.Equal(t, "/audio/music/01%20intro.mp3", href)
		assert.True(t, doc.Find("#items a.file i").First().HasClass("fa-music"))
	})

	t.Run("success - comic folder pages", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/folder/comics", nil)

		require.Equal(t, http.StatusOK, w.Code)
		doc := document(t, w.Body.String())
		assert.Equal(t, 3, doc.Find("#items a.file").Length())
		href, _ := doc.Find("#items a.file").Last().Attr("href")
		assert.Equal(t, "/comic/comics/10.jpg", href)
	})

	t.Run("success - empty folder", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/folder/empty", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, document(t, w.Body.String()).Find("#empty").Length())
	})

	tests := []struct {
		name     string
		target   string
		expected int
	}{
		{name: "error - traversal", target: "/folder/../../", expected: http.StatusForbidden},
		{name: "error - encoded traversal", target: "/folder/..%2F..", expected: http.StatusForbidden},
		{name: "error - missing", target: "/folder/nope", expected: http.StatusNotFound},
		{name: "error - not a directory", target: "/folder/a.mp4", expected: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(h, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestWatchV1(t *testing.T) {
	h := newRouter(t, pageLibrary(t))

	t.Run("success - player", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/watch/a.mp4", nil)

		require.Equal(t, http.StatusOK, w.Code)
		src, _ := document(t, w.Body.String()).Find("video#player").Attr("src")
		assert.Equal(t, "/video/a.mp4", src)
	})

	redirects := []struct {
		target   string
		location string
	}{
		{target: "/watch/comics", location: "/folder/comics"},
		{target: "/watch/comics/2.jpg", location: "/comic/comics/2.jpg"},
		{target: "/watch/music/02.flac", location: "/audio/music/02.flac"},
	}
	for _, tt := range redirects {
		t.Run("redirect "+tt.target, func(t *testing.T) {
			w := serve(h, http.MethodGet, tt.target, nil)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}

	t.Run("error - missing", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/watch/nope.mp4", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - traversal", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/watch/../../etc/passwd", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestComicV1(t *testing.T) {
	h := newRouter(t, pageLibrary(t))

	t.Run("success - folder", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/comic/comics", nil)

		require.Equal(t, http.StatusOK, w.Code)
		doc := document(t, w.Body.String())
		src, _ := doc.Find("img#page").Attr("src")
		assert.Equal(t, "/video/comics/1.jpg", src)
		assert.Equal(t, "1 / 3", doc.Find("#counter").Text())
	})

	t.Run("success - starts at the page", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/comic/comics/10.jpg", nil)

		require.Equal(t, http.StatusOK, w.Code)
		doc := document(t, w.Body.String())
		src, _ := doc.Find("img#page").Attr("src")
		assert.Equal(t, "/video/comics/10.jpg", src)
		assert.Equal(t, "3 / 3", doc.Find("#counter").Text())
	})

	t.Run("redirect - not an image", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/comic/a.mp4", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/video/a.mp4", w.Header().Get("Location"))
	})

	t.Run("error - no images", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/comic/empty", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAudioV1(t *testing.T) {
	h := newRouter(t, pageLibrary(t))

	t.Run("success - playlist", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/audio/music/02.flac", nil)

		require.Equal(t, http.StatusOK, w.Code)
		doc := document(t, w.Body.String())
		assert.Equal(t, 2, doc.Find("#tracks .track").Length())
		src, _ := doc.Find("audio#player").Attr("src")
		assert.Equal(t, "/video/music/02.flac", src)
	})

	t.Run("error - no audio", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/audio/comics", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPages_WithMockService(t *testing.T) {
	t.Run("error - listing read failure", func(t *testing.T) {
		// Arrange
		mockBrowse := browse.NewMockBrowseService()
		mockBrowse.On("Listing", mock.Anything, "shows").
			Return((*domain.Listing)(nil), errors.New("permission denied"))
		h := newMockRouter(t, stream.NewMockStreamService(), mockBrowse)

		// Act
		w := serve(h, http.MethodGet, "/folder/shows", nil)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error\n", w.Body.String())
		mockBrowse.AssertExpectations(t)
	})

	t.Run("error - unrenderable gallery", func(t *testing.T) {
		// Arrange
		mockBrowse := browse.NewMockBrowseService()
		mockBrowse.On("Comic", mock.Anything, "c").
			Return(&domain.Gallery{Title: "c", StartIndex: 3}, nil)
		h := newMockRouter(t, stream.NewMockStreamService(), mockBrowse)

		// Act
		w := serve(h, http.MethodGet, "/comic/c", nil)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockBrowse.AssertExpectations(t)
	})

	t.Run("success - root listing is not cached when disabled", func(t *testing.T) {
		// Arrange
		mockBrowse := browse.NewMockBrowseService()
		mockBrowse.On("Listing", mock.Anything, "").
			Return(&domain.Listing{Title: "media"}, nil).Twice()
		h := newMockRouter(t, stream.NewMockStreamService(), mockBrowse)

		// Act
		serve(h, http.MethodGet, "/", nil)
		w := serve(h, http.MethodGet, "/", nil)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		mockBrowse.AssertExpectations(t)
	})
}
