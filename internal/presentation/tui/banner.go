package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  ____  ____  _____           _`, "#818cf8"},
	{` |  _ \| __ )|__  /___  __ _ | | ___`, "#a78bfa"},
	{` | | | |  _ \  / // __|/ _' || |/ __|`, "#c084fc"},
	{` | |_| | |_) |/ /| (__| (_| || | (__`, "#e879f9"},
	{` |____/|____//____\___|\__,_||_|\___|`, "#f472b6"},
}

// PrintBanner writes the dbzcalc banner to w using the given colour profile.
func PrintBanner(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Header renders a bold, coloured section title.
func Header(p termenv.Profile, title string) string {
	return p.String(title).Bold().Foreground(p.Color("#a78bfa")).String()
}

// Status colours a result: green for a value, red for ERR.
func Status(p termenv.Profile, text string, ok bool) string {
	color := "#34d399"
	if !ok {
		color = "#fb7185"
	}
	return p.String(text).Foreground(p.Color(color)).String()
}
