package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the steer banner to w using the output's color profile.
func PrintBanner(out *termenv.Output, w io.Writer) {
	// Teal to sky gradient
	lines := []struct {
		text  string
		color string
	}{
		{"      _                  ", "#2dd4bf"},
		{"  ___| |_ ___  ___ _ __  ", "#22d3ee"},
		{" / __| __/ _ \\/ _ \\ '__| ", "#38bdf8"},
		{" \\__ \\ ||  __/  __/ |    ", "#60a5fa"},
		{" |___/\\__\\___|\\___|_|    ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
