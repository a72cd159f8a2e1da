package qshor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	reportHeaderStyle = lipgloss.NewStyle().Bold(true)
	reportOkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	reportBadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	reportLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// String renders the comparison as a small table, one row per channel,
// with the aggregate verdict on the last line.
func (r Report) String() string {
	var sb strings.Builder

	sb.WriteString(reportHeaderStyle.Render("channel  expected  observed  match"))
	sb.WriteByte('\n')
	for _, c := range r.Comparisons {
		row := fmt.Sprintf("%-7s  %-8s  %-8s  %v", c.Channel, c.Expected, c.Observed, c.Match)
		if c.Match {
			sb.WriteString(reportOkStyle.Render(row))
		} else {
			sb.WriteString(reportBadStyle.Render(row))
		}
		sb.WriteByte('\n')
	}

	verdict := "syndrome mismatch"
	style := reportBadStyle
	if r.Matched {
		verdict = "syndrome matches"
		style = reportOkStyle
	}
	sb.WriteString(fmt.Sprintf(
		"label %s: %s",
		reportLabelStyle.Render(string(r.Label)),
		style.Render(verdict),
	))
	return sb.String()
}
