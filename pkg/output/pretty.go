// Package output renders human-oriented views of a check run.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"checkplug/pkg/plugin"
)

// PrettyPrinter writes a styled table of recorded outcomes for
// interactive troubleshooting. The machine-readable plugin line on
// stdout is unaffected; callers point this at stderr.
type PrettyPrinter struct {
	writer io.Writer
}

// NewPrettyPrinter creates a printer writing to w.
func NewPrettyPrinter(w io.Writer) *PrettyPrinter {
	return &PrettyPrinter{writer: w}
}

// Render writes the outcome table and, when present, the perfdata
// records. perf may be nil.
func (p *PrettyPrinter) Render(res *plugin.Result, perf *plugin.PerfData) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	severityStyles := map[plugin.Severity]lipgloss.Style{
		plugin.OK:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // Green
		plugin.Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true), // Yellow
		plugin.Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Red
		plugin.Unknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),  // Gray
	}

	var rows [][]string
	for _, sev := range []plugin.Severity{plugin.Unknown, plugin.Critical, plugin.Warning, plugin.OK} {
		for _, msg := range res.Messages(sev) {
			rows = append(rows, []string{severityStyles[sev].Render(sev.String()), msg})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("STATUS", "MESSAGE").
		Rows(rows...)

	fmt.Fprintln(p.writer, t)

	if perf != nil && len(perf.Records()) > 0 {
		fmt.Fprintln(p.writer, "Performance data:")
		for _, r := range perf.Records() {
			fmt.Fprintf(p.writer, "  %s\n", r)
		}
	}
}
