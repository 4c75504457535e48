package ui

import "lifecast/internal/core"

const (
	panelPadding   = 12
	lineHeight     = 18
	groupGap       = 10
	headerBaseline = 18
)

// hudLine is one row of the status panel. Headers have no value.
type hudLine struct {
	y      int
	label  string
	value  string
	header bool
}

// layoutLines positions the snapshot's groups top to bottom, stopping at the
// panel height.
func layoutLines(s core.ParameterSnapshot, paused bool, height int) []hudLine {
	var lines []hudLine
	y := panelPadding + headerBaseline
	add := func(l hudLine) bool {
		if height > 0 && y > height-panelPadding {
			return false
		}
		l.y = y
		lines = append(lines, l)
		y += lineHeight
		return true
	}

	title := "Game of Life"
	if paused {
		title += " (paused)"
	}
	if !add(hudLine{label: title, header: true}) {
		return lines
	}
	for _, g := range s.Groups {
		y += groupGap
		if !add(hudLine{label: g.Name, header: true}) {
			return lines
		}
		for _, p := range g.Params {
			if !add(hudLine{label: p.Label, value: p.Value}) {
				return lines
			}
		}
	}
	return lines
}
