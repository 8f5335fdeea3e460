package fuzzy

import (
	"html"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// A Renderer turns a match result's pieces into display text. Escaping and
// styling are renderer concerns; the scorer only decides which characters
// matched.
type Renderer interface {
	Render(r Result) string
}

// HTMLRenderer renders matched characters wrapped in an HTML tag, escaping
// everything for safe inclusion in a document.
type HTMLRenderer struct {
	// Tag is the wrapping element name. Defaults to "strong".
	Tag string
}

// Render implements Renderer.
func (h HTMLRenderer) Render(r Result) string {
	tag := h.Tag
	if tag == "" {
		tag = "strong"
	}

	var b strings.Builder
	for _, p := range r.Pieces {
		b.WriteString(html.EscapeString(p.Plain))
		if p.Matched != "" {
			b.WriteString("<" + tag + ">")
			b.WriteString(html.EscapeString(p.Matched))
			b.WriteString("</" + tag + ">")
		}
	}
	return b.String()
}

// PlainRenderer brackets matched characters with a marker pair. Useful for
// logs, tests, and non-TTY output.
type PlainRenderer struct {
	Open  string
	Close string
}

// Render implements Renderer.
func (p PlainRenderer) Render(r Result) string {
	var b strings.Builder
	for _, piece := range r.Pieces {
		b.WriteString(piece.Plain)
		if piece.Matched != "" {
			b.WriteString(p.Open)
			b.WriteString(piece.Matched)
			b.WriteString(p.Close)
		}
	}
	return b.String()
}

// TermRenderer styles matched characters for terminal display.
type TermRenderer struct {
	Style lipgloss.Style
}

// Render implements Renderer.
func (t TermRenderer) Render(r Result) string {
	var b strings.Builder
	for _, p := range r.Pieces {
		b.WriteString(p.Plain)
		if p.Matched != "" {
			b.WriteString(t.Style.Render(p.Matched))
		}
	}
	return b.String()
}

// NewTermRenderer returns a renderer suited to the current stdout: styled
// matches on a terminal, bracketed matches when output is redirected.
func NewTermRenderer() Renderer {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return PlainRenderer{Open: "[", Close: "]"}
	}
	return TermRenderer{Style: lipgloss.NewStyle().Bold(true).Underline(true)}
}
