package projects

import (
	"path"
	"strings"
)

// CategoryAll is the filter sentinel meaning "no category filtering".
const CategoryAll = "All"

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".m4v":  true,
	".ogv":  true,
}

// ClassifyMedia tags a gallery URL as image or video by file extension.
// Anything unrecognized is treated as an image.
func ClassifyMedia(url string) string {
	clean := url
	if q := strings.IndexAny(clean, "?#"); q >= 0 {
		clean = clean[:q]
	}
	if videoExtensions[strings.ToLower(path.Ext(clean))] {
		return MediaVideo
	}
	return MediaImage
}

// Filter derives the displayed subset from an already-fetched list: a
// case-insensitive substring match against title and tools, and an exact
// category match unless the sentinel "All" (or empty) is selected. It is
// pure; both conditions must hold, so applying them in either order yields
// the same subset.
func Filter(items []Project, filter ListFilter) []Project {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)

	out := make([]Project, 0, len(items))
	for _, p := range items {
		if !matchesQuery(p, query) {
			continue
		}
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Project, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	for _, tool := range p.Tools {
		if strings.Contains(strings.ToLower(tool), query) {
			return true
		}
	}
	return false
}
