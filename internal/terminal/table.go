package terminal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = cellStyle.Foreground(lipgloss.Color("8"))
)

// Table prints rows under headers with a rounded border. The first column is
// dimmed when colour is enabled.
func Table(headers []string, rows [][]string) {
	colored := Colored()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 && colored:
				return dimStyle
			default:
				return cellStyle
			}
		})
	printf("%s\n", t.Render())
}
