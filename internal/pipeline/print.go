package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var statusColors = map[Status]lipgloss.Color{
	StatusUnchanged: lipgloss.Color("245"),
	StatusFixed:     lipgloss.Color("42"),
	StatusSkipped:   lipgloss.Color("214"),
	StatusError:     lipgloss.Color("196"),
	StatusValid:     lipgloss.Color("42"),
	StatusInvalid:   lipgloss.Color("196"),
}

const labelWidth = len("UNCHANGED")

// Print writes one status line per fixture, its indented details and a
// summary line. Colors are used only when w is a terminal.
func Print(w io.Writer, r *Report) error {
	renderer := lipgloss.NewRenderer(w)
	detailStyle := renderer.NewStyle().Faint(true)

	var b strings.Builder
	for _, res := range r.Results {
		label := strings.ToUpper(string(res.Status))
		style := renderer.NewStyle().Bold(true).Foreground(statusColors[res.Status])
		fmt.Fprintf(&b, "%s%s %s\n", style.Render(label), strings.Repeat(" ", labelWidth-len(label)), res.Name)
		for _, d := range res.Details {
			fmt.Fprintf(&b, "          %s\n", detailStyle.Render("- "+d))
		}
	}

	statuses := r.Command.Statuses()
	counts := make([]string, len(statuses))
	for i, s := range statuses {
		counts[i] = fmt.Sprintf("%d %s", r.Count(s), s)
	}
	summary := fmt.Sprintf("Summary: %s (%d total)", strings.Join(counts, ", "), len(r.Results))
	if r.Check {
		summary += " [check only]"
	}
	fmt.Fprintf(&b, "\n%s\n", renderer.NewStyle().Bold(true).Render(summary))

	_, err := io.WriteString(w, b.String())
	return err
}
