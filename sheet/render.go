package sheet

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).PaddingLeft(1).PaddingRight(1)
	columnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).PaddingLeft(1).PaddingRight(1)
	cellStyle   = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
)

// Render draws header block and data table for console output. Styling is
// dropped automatically when output is not a terminal.
func Render(t *Table) string {
	pairs := make([][]string, 0, len(t.Header))
	for _, p := range t.Header {
		pairs = append(pairs, []string{p[0], p[1]})
	}
	header := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(_, _ int) lipgloss.Style { return headerStyle }).
		Rows(pairs...)

	data := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return columnStyle
			}
			return cellStyle
		}).
		Headers(t.Columns...).
		Rows(t.Rows...)

	return lipgloss.JoinVertical(lipgloss.Left, header.Render(), data.Render())
}
