package life

import (
	"strings"

	"lifecast/pkg/core"
)

// FormatText renders alive points on a grid of the given size, one line per
// row. Every cell is drawn as "|x" or "| " and each row is closed by "|".
// Points outside the size are ignored.
func FormatText(size core.Size, alive []core.Point) string {
	if size.W <= 0 || size.H <= 0 {
		return ""
	}
	rows := make([][]byte, size.H)
	for y := range rows {
		row := make([]byte, 2*size.W+1)
		for x := 0; x < size.W; x++ {
			row[2*x] = '|'
			row[2*x+1] = ' '
		}
		row[2*size.W] = '|'
		rows[y] = row
	}
	for _, p := range alive {
		if size.Contains(p.X, p.Y) {
			rows[p.Y][2*p.X+1] = 'x'
		}
	}

	var b strings.Builder
	b.Grow(size.H * (2*size.W + 2))
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
