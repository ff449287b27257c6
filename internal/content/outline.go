package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type Heading struct {
	Level int
	Text  string
}

// Outline lists the document's headings in order of appearance.
func Outline(md string) []Heading {
	source := []byte(md)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var b strings.Builder
		lines := heading.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			b.Write(segment.Value(source))
		}

		title := strings.TrimSpace(b.String())
		if title != "" {
			headings = append(headings, Heading{Level: heading.Level, Text: title})
		}
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// String indents the heading by level for plain-text outlines.
func (h Heading) String() string {
	return strings.Repeat("  ", max(h.Level-1, 0)) + h.Text
}
