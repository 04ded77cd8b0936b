package domain

// Crumb is one breadcrumb link
type Crumb struct {
	Name string
	URL  string
}

// FolderItem is a sub-folder card on a listing page
type FolderItem struct {
	Name string
	URL  string
	// Comic is true when every visible file in the folder is an image
	Comic     bool
	Thumbnail string
	Pages     int
}

// FileItem is a media file card on a listing page
type FileItem struct {
	Name      string
	URL       string
	Kind      MediaKind
	Thumbnail string
}

// Listing is the content of a folder page
type Listing struct {
	Path        string
	Title       string
	Breadcrumbs []Crumb
	Folders     []FolderItem
	Files       []FileItem
}

// WatchTarget is either a player page or a redirect to a better suited page
type WatchTarget struct {
	RedirectURL string
	Title       string
	Source      string
}

// Gallery is the ordered set of media shown by the comic viewer or the audio player
type Gallery struct {
	RedirectURL string
	Title       string
	Items       []string
	StartIndex  int
}
