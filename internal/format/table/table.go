// Package table pads rows of cells into aligned columns for the menu list.
package table

import "strings"

// Pad returns the rows with every cell padded to the widest entry of its
// column. The final column keeps its natural width so styled rows carry no
// trailing padding. Callers style the padded cells individually.
func Pad(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, len(row))
		for c, cell := range row {
			if c == len(row)-1 {
				padded[c] = cell
				continue
			}
			padded[c] = cell + strings.Repeat(" ", widths[c]-cellWidth(cell))
		}
		out[i] = padded
	}
	return out
}

func cellWidth(text string) int {
	return len([]rune(text))
}
