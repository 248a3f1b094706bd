package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// renderGrid draws each row between rule lines, one fixed-width cell per
// value, 0 for an empty cell. Cell width grows with the side length so
// 16×16 boards stay aligned.
func renderGrid(grid [][]int) string {
	size := len(grid)
	width := len(fmt.Sprint(size))
	rule := ruleStyle.Render(strings.Repeat("-", size*(width+1)+1))
	sep := ruleStyle.Render("|")

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(rule)
		sb.WriteByte('\n')
		for _, val := range row {
			sb.WriteString(sep)
			cell := fmt.Sprintf("%*d", width, val)
			if val == 0 {
				sb.WriteString(emptyStyle.Render(cell))
			} else {
				sb.WriteString(valueStyle.Render(cell))
			}
		}
		sb.WriteString(sep)
		sb.WriteByte('\n')
	}
	sb.WriteString(rule)
	return sb.String()
}
