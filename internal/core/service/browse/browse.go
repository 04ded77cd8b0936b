package browse

import (
	"media-share/internal/core/domain"
	"media-share/internal/core/port"
	"net/url"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// inspectConcurrency bounds parallel sub-folder reads on a listing page
const inspectConcurrency = 8

type browseService struct {
	guard  port.PathGuard
	lister port.DirectoryLister
	mime   port.MimeResolver
}

// NewBrowseService creates a new browse service
func NewBrowseService(guard port.PathGuard, lister port.DirectoryLister, mime port.MimeResolver) port.BrowseService {
	return &browseService{
		guard:  guard,
		lister: lister,
		mime:   mime,
	}
}

// naturalLess orders names case-insensitively with embedded numbers compared by value
func naturalLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return natural.Less(la, lb)
	}
	return a < b
}

func sortNatural(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

// joinRel joins slash separated relative paths, "" being the media root
func joinRel(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// routeURL builds prefix + rel with every segment escaped
func routeURL(prefix, rel string) string {
	if rel == "" {
		return prefix
	}
	segments := strings.Split(rel, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return prefix + strings.Join(segments, "/")
}

func breadcrumbs(rel string) []domain.Crumb {
	crumbs := []domain.Crumb{{Name: "Home", URL: "/"}}
	if rel == "" {
		return crumbs
	}
	acc := ""
	for _, segment := range strings.Split(rel, "/") {
		acc = joinRel(acc, segment)
		crumbs = append(crumbs, domain.Crumb{Name: segment, URL: routeURL(domain.RouteFolder, acc)})
	}
	return crumbs
}
