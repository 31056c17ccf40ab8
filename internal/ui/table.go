package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dedene/urlcoder/querystring"
)

// RenderTable builds a formatted table string using lipgloss.
// When color is true, headers are styled and borders are rendered with color.
// When color is false, a plain ASCII table is produced.
func RenderTable(headers []string, rows [][]string, color bool) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		BorderColumn(true).
		BorderHeader(true)

	if color {
		headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5e9"))
		cellStyle := lipgloss.NewStyle()
		dimStyle := lipgloss.NewStyle().Faint(true)

		t.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return dimStyle
			default:
				return cellStyle
			}
		})
	}

	return t.Render()
}

// RenderParams renders a parameter list as a numbered Key/Value table.
// Empty strings and values with control characters are shown quoted so they
// stay visible.
func RenderParams(params querystring.Params, color bool) string {
	rows := make([][]string, 0, len(params))
	for i, p := range params {
		rows = append(rows, []string{strconv.Itoa(i + 1), displayCell(p.Key), displayCell(p.Value)})
	}

	return RenderTable([]string{"#", "Key", "Value"}, rows, color)
}

func displayCell(s string) string {
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return strconv.Quote(s)
	}

	return s
}
