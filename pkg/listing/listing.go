// Package listing lays out asset names for the --list commands.
package listing

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/ponysay/pkg/text"
)

// gap is the number of blank columns between entries.
const gap = 2

// Columns arranges names top-to-bottom in as many columns as fit within
// width. A non-positive width, or a width too narrow for two columns,
// yields one name per line. Lines carry no trailing spaces.
func Columns(names []string, width int) string {
	if len(names) == 0 {
		return ""
	}

	widest := 0
	for _, n := range names {
		widest = max(widest, text.VisibleWidth(n))
	}
	cell := widest + gap

	cols := 1
	if width > 0 {
		cols = max(1, (width+gap)/cell)
	}
	if cols == 1 {
		return strings.Join(names, "\n")
	}
	rows := (len(names) + cols - 1) / cols
	cols = (len(names) + rows - 1) / rows

	cellStyle := lipgloss.NewStyle().Width(cell)
	blocks := make([]string, 0, cols)
	for c := range cols {
		end := min(len(names), (c+1)*rows)
		block := strings.Join(names[c*rows:end], "\n")
		if c < cols-1 {
			block = cellStyle.Render(block)
		}
		blocks = append(blocks, block)
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	lines := strings.Split(joined, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
