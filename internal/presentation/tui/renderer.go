// Package tui formats dbzcalc output for terminals: banner, coloured headers and
// Markdown reports.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Profile returns the colour profile for w; Ascii when w is not a terminal.
func Profile(w io.Writer) termenv.Profile {
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).Profile
}

// NewRenderer returns a Markdown renderer for w. Terminals get glamour's styled
// output with the given word wrap; anything else receives the Markdown unchanged.
func NewRenderer(w io.Writer, wordWrap int) func(string) (string, error) {
	if !IsTerminal(w) {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, err
		}
	}
	return r.Render
}

// RenderMarkdown renders markdown with glamour's notty style regardless of w.
func RenderMarkdown(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("notty"))
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
