package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lavabreak/internal/core"
)

func TestFitLayout(t *testing.T) {
	tests := []struct {
		name       string
		field      core.Field
		cols, rows int
		expected   Layout
	}{
		{"exact square", core.Field{W: 100, H: 100}, 10, 5, Layout{Cols: 10, Rows: 5, Scale: 10}},
		{"height bound", core.DefaultField, 80, 23, Layout{Cols: 62, Rows: 23, Scale: 768.0 / 46}},
		{"width bound", core.DefaultField, 64, 100, Layout{Cols: 64, Rows: 24, Scale: 16}},
		{"no space", core.DefaultField, 0, 10, Layout{}},
		{"empty field", core.Field{}, 80, 24, Layout{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FitLayout(tc.field, tc.cols, tc.rows)
			if got != tc.expected {
				t.Errorf("FitLayout() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestLayoutToField(t *testing.T) {
	l := Layout{Cols: 10, Rows: 5, Scale: 10}

	x, y, ok := l.ToField(3, 2)
	if !ok || x != 35 || y != 45 {
		t.Errorf("ToField(3, 2) = %d, %d, %v; expected 35, 45, true", x, y, ok)
	}
	if _, _, ok := l.ToField(10, 0); ok {
		t.Error("ToField outside the layout should fail")
	}
	if _, _, ok := (Layout{}).ToField(0, 0); ok {
		t.Error("zero layout should map nothing")
	}
}

func TestDownsampleKeepsSmallBodies(t *testing.T) {
	fb := core.NewFrameBuffer(core.Field{W: 100, H: 100})
	fb.FillRect(core.NewRect(55, 55, 2, 2), core.ColorYellow)

	cells := Downsample(fb, FitLayout(core.Field{W: 100, H: 100}, 10, 5))

	if len(cells) != 5 || len(cells[0]) != 10 {
		t.Fatalf("Downsample() size = %dx%d, expected 10x5", len(cells[0]), len(cells))
	}
	if cells[2][5].Bottom != core.ColorYellow {
		t.Errorf("cell (5, 2) bottom = %s, expected the 2px dot", cells[2][5].Bottom.Hex())
	}
	if cells[2][5].Top != core.Background || cells[0][0] != (Cell{}) {
		t.Error("empty blocks should stay background")
	}
}

func TestDownsampleMajority(t *testing.T) {
	fb := core.NewFrameBuffer(core.Field{W: 100, H: 100})
	fb.FillRect(core.NewRect(0, 0, 10, 10), core.ColorRed)
	fb.FillRect(core.NewRect(0, 0, 3, 3), core.ColorGreen)

	cells := Downsample(fb, FitLayout(core.Field{W: 100, H: 100}, 10, 5))
	if cells[0][0].Top != core.ColorRed {
		t.Errorf("block colour = %s, expected majority red", cells[0][0].Top.Hex())
	}
}

func TestFrameRendererSize(t *testing.T) {
	fr := NewFrameRenderer(lipgloss.NewRenderer(io.Discard))
	fb := core.NewFrameBuffer(core.DefaultField)
	fb.FillRect(core.NewRect(0, 738, 1024, 30), core.ColorRed)

	out := fr.Render(fb, 80, 23)
	lines := strings.Split(out, "\n")
	if len(lines) != 23 {
		t.Fatalf("Render() produced %d lines, expected 23", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 62 {
			t.Fatalf("line %d width = %d, expected 62", i, w)
		}
	}

	if fr.Render(fb, 0, 0) != "" {
		t.Error("Render() into no space should be empty")
	}
}
