// Package render turns Markdown into styled terminal output.
package render

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Paintersrp/cheats/internal/config"
)

type Renderer struct {
	style   string
	width   int
	profile termenv.Profile

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

func New(cfg config.RenderConfig) *Renderer {
	return &Renderer{
		style:     cfg.Style,
		width:     cfg.Width,
		profile:   termenv.ANSI256,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// WithProfile overrides the color profile used for output.
func (r *Renderer) WithProfile(p termenv.Profile) *Renderer {
	r.profile = p
	return r
}

// Render styles md, wrapping at width or the configured width when width
// is not positive.
func (r *Renderer) Render(md string, width int) (string, error) {
	if width <= 0 || width > r.width {
		width = r.width
	}

	tr, err := r.renderer(width)
	if err != nil {
		return "", err
	}
	return tr.Render(md)
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(r.profile),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	r.renderers[width] = tr
	return tr, nil
}

// Write prints md to w, styled when w is a terminal and verbatim otherwise
// so that piped output stays plain Markdown.
func (r *Renderer) Write(w io.Writer, md string) error {
	width, ok := TerminalWidth(w)
	if !ok {
		_, err := io.WriteString(w, md)
		return err
	}

	out, err := r.Render(md, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// TerminalWidth reports the column count of w when it is a terminal.
func TerminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, true
	}
	return width, true
}
