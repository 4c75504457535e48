package ui

import (
	"testing"

	"lifecast/internal/core"
)

func TestLayoutLines(t *testing.T) {
	s := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Generation", Params: []core.Parameter{
			core.Uint64Param("gen", "Gen", 3),
			core.IntParam("alive", "Alive", 9),
		}},
	}}

	lines := layoutLines(s, true, 0)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0].label != "Game of Life (paused)" || !lines[0].header {
		t.Fatalf("title line = %+v", lines[0])
	}
	if lines[2].label != "Gen" || lines[2].value != "3" {
		t.Fatalf("gen line = %+v", lines[2])
	}
	for i := 1; i < len(lines); i++ {
		if lines[i].y <= lines[i-1].y {
			t.Fatalf("lines not increasing: %+v", lines)
		}
	}
}

func TestLayoutLinesClipsToHeight(t *testing.T) {
	s := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "A", Params: []core.Parameter{core.IntParam("a", "A", 1), core.IntParam("b", "B", 2)}},
	}}
	lines := layoutLines(s, false, 60)
	if len(lines) == 0 || len(lines) >= 4 {
		t.Fatalf("got %d lines for a 60px panel", len(lines))
	}
	for _, l := range lines {
		if l.y > 60-panelPadding {
			t.Fatalf("line %+v drawn below the panel", l)
		}
	}
}
