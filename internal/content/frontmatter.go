package content

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontMatterPattern = regexp.MustCompile(`\A---[ \t]*\r?\n(?s:(.*?)\r?\n)?---[ \t]*(?:\r?\n|\z)`)

// FrontMatter is the metadata header of a remote sheet.
type FrontMatter struct {
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Layout   string   `yaml:"layout"`
	Updated  string   `yaml:"updated"`
	Tags     []string `yaml:"tags"`
	Intro    string   `yaml:"intro"`
}

// StripFrontMatter removes leading --- delimited blocks that hold a YAML
// mapping, and the blank lines after each. A block of prose between two
// thematic breaks is left alone. The result never starts with a strippable
// block, so a second call is a no-op.
func StripFrontMatter(md string) string {
	for {
		match := frontMatterPattern.FindStringSubmatchIndex(md)
		if match == nil || !isMapping(submatch(md, match, 1)) {
			return md
		}
		md = strings.TrimLeft(md[match[1]:], "\r\n")
	}
}

func submatch(s string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return s[loc[2*n]:loc[2*n+1]]
}

func isMapping(block string) bool {
	var m map[string]any
	return yaml.Unmarshal([]byte(block), &m) == nil
}

// ParseFrontMatter decodes the leading metadata block. ok is false when the
// document has none.
func ParseFrontMatter(md string) (fm FrontMatter, ok bool, err error) {
	match := frontMatterPattern.FindStringSubmatch(md)
	if match == nil {
		return FrontMatter{}, false, nil
	}

	if err := yaml.Unmarshal([]byte(match[1]), &fm); err != nil {
		return FrontMatter{}, true, fmt.Errorf("error parsing front matter: %w", err)
	}

	fm.Title = strings.TrimSpace(fm.Title)
	fm.Intro = strings.TrimSpace(fm.Intro)
	return fm, true, nil
}
