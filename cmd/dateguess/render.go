package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/az-ai-labs/dateguess/datefmt"
)

// styleMap holds the styles used for terminal output
type styleMap struct {
	header     lipgloss.Style
	input      lipgloss.Style
	template   lipgloss.Style
	alternate  lipgloss.Style
	confidence lipgloss.Style
	rationale  lipgloss.Style
	warning    lipgloss.Style
}

func newStyles() styleMap {
	return styleMap{
		header:     lipgloss.NewStyle().Bold(true).Underline(true),
		input:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		template:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		alternate:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		confidence: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		rationale:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func renderResults(w io.Writer, results []datefmt.Result, st styleMap) {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, st.input.Render(fmt.Sprintf("%q", res.Input)))
		if len(res.Interpretations) == 0 {
			fmt.Fprintln(w, "  "+st.warning.Render("no interpretation"))
			continue
		}
		if res.Ambiguous {
			fmt.Fprintln(w, "  "+st.warning.Render("ambiguous"))
		}
		for j, in := range res.Interpretations {
			style := st.alternate
			if j == 0 {
				style = st.template
			}
			fmt.Fprintf(w, "  %s  %s  %s\n",
				style.Render(in.Template),
				st.confidence.Render(fmt.Sprintf("%3d", in.Confidence)),
				st.rationale.Render(in.Rationale),
			)
		}
	}
}
