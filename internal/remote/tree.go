package remote

import "strings"

// adminFiles are repository files that are not cheatsheets. They are
// matched by path prefix.
var adminFiles = []string{"CONTRIBUTING", "README", "index", "index@2016"}

type treeResponse struct {
	SHA       string      `json:"sha"`
	URL       string      `json:"url"`
	Tree      []treeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

type treeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// sheetSlugs keeps Markdown blobs that are not admin files and strips their
// extension. Order follows the listing.
func sheetSlugs(entries []treeEntry) []string {
	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type == "tree" || !strings.HasSuffix(entry.Path, ".md") {
			continue
		}
		if isAdminFile(entry.Path) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(entry.Path, ".md"))
	}
	return slugs
}

func isAdminFile(path string) bool {
	for _, prefix := range adminFiles {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
