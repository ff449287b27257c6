package content

import (
	"regexp"
	"strings"
)

var (
	// Liquid tags such as {% raw %} and {%- include x -%}.
	liquidTagPattern = regexp.MustCompile(`\{%-?.*?-?%\}`)

	// kramdown inline attribute lists such as {: .-three-column} or
	// {: data-line="3"}. Ruby hash literals ({:a => 1}) do not match.
	attributeListPattern = regexp.MustCompile(`\{:\s*(?:[.#][\w-]|[\w-]+=["'])[^}\n]*\}`)
)

// StripTemplateTags removes Liquid tags and kramdown attribute lists while
// leaving the surrounding text intact. A line that held nothing but tags is
// dropped entirely. Attribute lists inside fenced code are kept.
func StripTemplateTags(md string) string {
	if !strings.Contains(md, "{%") && !strings.Contains(md, "{:") {
		return md
	}

	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	var fence fenceTracker

	for _, line := range lines {
		inCode := fence.inside()
		fence.observe(line)

		stripped := liquidTagPattern.ReplaceAllString(line, "")
		if !inCode && !fence.isFence(line) {
			stripped = attributeListPattern.ReplaceAllString(stripped, "")
		}

		if stripped == line {
			out = append(out, line)
			continue
		}

		if strings.TrimSpace(stripped) == "" {
			continue
		}
		out = append(out, strings.TrimRight(stripped, " \t"))
	}

	return strings.Join(out, "\n")
}

// fenceTracker follows ``` and ~~~ code fences line by line.
type fenceTracker struct {
	marker string
}

func (f *fenceTracker) inside() bool {
	return f.marker != ""
}

func (f *fenceTracker) isFence(line string) bool {
	_, ok := fenceMarker(line)
	return ok
}

func (f *fenceTracker) observe(line string) {
	marker, ok := fenceMarker(line)
	if !ok {
		return
	}
	switch {
	case f.marker == "":
		f.marker = marker
	case strings.HasPrefix(marker, f.marker):
		f.marker = ""
	}
}

func fenceMarker(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return "", false
	}
	for _, ch := range []byte{'`', '~'} {
		n := 0
		for n < len(trimmed) && trimmed[n] == ch {
			n++
		}
		if n >= 3 {
			return trimmed[:n], true
		}
	}
	return "", false
}
