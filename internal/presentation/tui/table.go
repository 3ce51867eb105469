package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/steer/pkg/domain"
	"github.com/muesli/termenv"
)

// Row is one line of a command trace.
type Row struct {
	Tick    domain.Tick
	Command domain.Command
	// Guarded marks axes the sink guard changed on this tick.
	Guarded [3]bool
	// Active lists assist branches that contributed.
	Active []string
}

// Table prints command traces as aligned columns.
type Table struct {
	w   io.Writer
	out *termenv.Output
}

// NewTable creates a table writer. Colors follow the output's profile; use
// termenv.Ascii to disable them.
func NewTable(w io.Writer, out *termenv.Output) *Table {
	return &Table{w: w, out: out}
}

// Header prints the column titles.
func (t *Table) Header() {
	title := fmt.Sprintf("%6s %8s %8s %8s %8s  %s", "tick", "time", "lateral", "axial", "omega", "assists")
	fmt.Fprintln(t.w, t.out.String(title).Bold())
	fmt.Fprintln(t.w, strings.Repeat("-", len(title)))
}

// Row prints one trace line. Guarded axes are highlighted.
func (t *Table) Row(r Row, elapsed float64) {
	cells := make([]string, len(domain.Axes))
	for i, a := range domain.Axes {
		cell := fmt.Sprintf("%8.3f", r.Command.Axis(a))
		if r.Guarded[i] {
			cell = t.out.String(cell).Foreground(t.out.Color("#f87171")).String()
		} else if r.Command.Axis(a) == 0 {
			cell = t.out.String(cell).Faint().String()
		}
		cells[i] = cell
	}

	assists := strings.Join(r.Active, ",")
	if assists != "" {
		assists = t.out.String(assists).Foreground(t.out.Color("#2dd4bf")).String()
	}
	fmt.Fprintf(t.w, "%6d %8.2f %s %s %s  %s\n", r.Tick.Seq, elapsed, cells[0], cells[1], cells[2], assists)
}
