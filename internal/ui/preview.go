package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csvtrim/csvtrim/internal/table"
)

// missingPlaceholder is what a missing cell looks like in previews. It is
// only a display artifact; the writer still emits an empty field.
const missingPlaceholder = "·"

var (
	previewFrameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
	previewLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	previewMissingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	previewFooterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderPreview draws the first maxRows rows of the table in a bordered
// grid. Numbers are right-aligned, missing cells show as a dim placeholder,
// and a footer notes how many rows were cut off.
func RenderPreview(t table.Table, maxRows int) string {
	if t.Columns() == 0 || (t.RowCount() == 0 && !t.HasLabels()) {
		return previewFrameStyle.Render("(empty table)")
	}
	if maxRows < 1 {
		maxRows = 1
	}

	shown := t.RowCount()
	if shown > maxRows {
		shown = maxRows
	}

	widths := columnWidths(t, shown)
	var lines []string

	if t.HasLabels() {
		cells := make([]string, t.Columns())
		for i, label := range t.Labels() {
			cells[i] = previewLabelStyle.Render(pad(label, widths[i], false))
		}
		lines = append(lines, strings.Join(cells, "  "))
	}

	for r := 0; r < shown; r++ {
		row := t.Row(r)
		cells := make([]string, len(row))
		for i, c := range row {
			_, numeric := c.Number()
			text := pad(cellText(c), widths[i], numeric)
			if c.IsMissing() {
				text = previewMissingStyle.Render(text)
			}
			cells[i] = text
		}
		lines = append(lines, strings.Join(cells, "  "))
	}

	if rest := t.RowCount() - shown; rest > 0 {
		lines = append(lines, previewFooterStyle.Render(fmt.Sprintf("… and %d more row(s)", rest)))
	}
	return previewFrameStyle.Render(strings.Join(lines, "\n"))
}

// columnWidths sizes each column to its widest visible value among the
// labels and the rows being shown.
func columnWidths(t table.Table, shown int) []int {
	widths := make([]int, t.Columns())
	for i, label := range t.Labels() {
		if w := lipgloss.Width(label); w > widths[i] {
			widths[i] = w
		}
	}
	for r := 0; r < shown; r++ {
		for i, c := range t.Row(r) {
			if w := lipgloss.Width(cellText(c)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func cellText(c table.Cell) string {
	if c.IsMissing() {
		return missingPlaceholder
	}
	return c.Text()
}

func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
