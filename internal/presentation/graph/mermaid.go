package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/steer/pkg/branch"
	"github.com/aretw0/steer/pkg/config"
)

// Overlay contains per-tick data to visualize on the graph.
type Overlay struct {
	// Active lists assist branches that contributed on the tick.
	Active []string
	// Guarded lists axes the sink guard changed.
	Guarded []string
}

// GenerateMermaid produces a Mermaid flowchart of the composition pipeline.
// It applies semantic styling:
// - Driver and chassis: ((Circle))
// - Fixed stages: [[Subroutine]]
// - Assists: [/Parallelogram/], labelled with role, gate and weight
// - Mixer: {Rhombus}
// It also applies overlay styles (active branches, guard) if provided.
func GenerateMermaid(tuning config.Tuning, assists []branch.Branch, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	sb.WriteString("    driver((\"driver\"))\n")
	sb.WriteString("    shape[[\"shape\"]]\n")
	sb.WriteString("    driver --> shape\n")

	last := "shape"
	if tuning.FieldCentric {
		sb.WriteString("    frame[[\"field-centric\"]]\n")
		sb.WriteString("    shape --> frame\n")
		last = "frame"
	}

	sb.WriteString(fmt.Sprintf("    mixer{\"%s\"}\n", tuning.Mix.Strategy))
	sb.WriteString(fmt.Sprintf("    %s -- \"1.0\" --> mixer\n", last))

	for i, b := range assists {
		safeID := "assist_" + sanitizeMermaidID(b.Name)
		sb.WriteString(fmt.Sprintf("    %s[/\"%d. %s\"/]\n", safeID, i+1, b.Name))

		label := []string{b.Role.String()}
		if b.Enabled != nil {
			label = append(label, "gated")
		}
		if b.Weight != nil {
			label = append(label, "weighted")
		}
		arrow := "-->"
		if b.Enabled != nil {
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" %s mixer\n", safeID, strings.Join(label, ", "), arrow))
	}

	sb.WriteString(fmt.Sprintf("    limit[[\"%s\"]]\n", tuning.Mix.Policy))
	sb.WriteString("    guard[[\"sink guard\"]]\n")
	sb.WriteString("    chassis((\"chassis\"))\n")
	sb.WriteString("    mixer --> limit --> guard --> chassis\n")

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef active fill:#ccfbf1,stroke:#0f766e,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef guarded fill:#fee2e2,stroke:#b91c1c,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.Active {
			safeID := "assist_" + sanitizeMermaidID(name)
			if !seen[safeID] && name != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s active;\n", safeID))
			}
		}

		if len(overlay.Guarded) > 0 {
			sb.WriteString("    class guard guarded;\n")
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
