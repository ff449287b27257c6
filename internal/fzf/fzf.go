package fzf

import (
	"errors"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/cheats/internal/catalog"
	"github.com/Paintersrp/cheats/internal/render"
	"github.com/Paintersrp/cheats/internal/sheet"
)

// ErrNoSelection is returned when the user aborts the finder.
var ErrNoSelection = errors.New("no cheatsheet selected")

var find = fuzzyfinder.Find

// PreviewFunc returns the Markdown shown for an entry in the preview pane.
type PreviewFunc func(catalog.Entry) string

// FuzzyFinder lets the user pick one entry of the unified list.
type FuzzyFinder struct {
	Header   string
	entries  []catalog.Entry
	preview  PreviewFunc
	renderer *render.Renderer
}

func NewFuzzyFinder(entries []catalog.Entry, header string, renderer *render.Renderer, preview PreviewFunc) *FuzzyFinder {
	return &FuzzyFinder{
		Header:   header,
		entries:  entries,
		preview:  preview,
		renderer: renderer,
	}
}

// Run opens the finder with an optional initial query and returns the
// chosen entry.
func (f *FuzzyFinder) Run(query string) (catalog.Entry, error) {
	if len(f.entries) == 0 {
		return catalog.Entry{}, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := find(f.entries, func(i int) string {
		return Label(f.entries[i])
	}, options...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return catalog.Entry{}, ErrNoSelection
	}
	if err != nil {
		return catalog.Entry{}, err
	}

	return f.entries[idx], nil
}

// Label is the single-line form of an entry: favorite star, title and
// badges.
func Label(e catalog.Entry) string {
	var b strings.Builder
	if e.IsFavorite {
		b.WriteString("★ ")
	}
	b.WriteString(e.Title())
	if e.Provenance() == sheet.ProvenanceCustom {
		b.WriteString(" [custom]")
		if tags := e.Ref.(sheet.CustomRef).Sheet.Tags; len(tags) > 0 {
			b.WriteString(" [Tags: " + strings.Join(tags, ", ") + "]")
		}
	}
	if e.IsOffline {
		b.WriteString(" [offline]")
	}
	return b.String()
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 || f.preview == nil {
		return ""
	}

	md := f.preview(f.entries[i])
	if f.renderer == nil {
		return md
	}

	out, err := f.renderer.Render(md, w-4)
	if err != nil {
		return "Error rendering markdown"
	}
	return out
}
