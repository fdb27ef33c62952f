package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lavabreak/internal/core"
)

// halfBlock paints the top half of a cell with the foreground colour and
// the bottom half with the background colour.
const halfBlock = "▀"

// Cell is one terminal cell covering two vertically stacked pixel blocks.
type Cell struct {
	Top    core.Color
	Bottom core.Color
}

// Layout maps field pixels onto terminal cells. Every half-cell covers a
// square block of Scale x Scale pixels, keeping the field's aspect ratio.
type Layout struct {
	Cols  int
	Rows  int
	Scale float64
}

// FitLayout computes the largest layout of the field that fits within
// cols x rows cells. A zero layout is returned when nothing fits.
func FitLayout(field core.Field, cols, rows int) Layout {
	if cols <= 0 || rows <= 0 || field.W <= 0 || field.H <= 0 {
		return Layout{}
	}
	scale := math.Max(float64(field.W)/float64(cols), float64(field.H)/float64(2*rows))
	return Layout{
		Cols:  min(int(math.Ceil(float64(field.W)/scale)), cols),
		Rows:  min(int(math.Ceil(float64(field.H)/(2*scale))), rows),
		Scale: scale,
	}
}

// ToField converts a cell position to the field pixel at the centre of its
// top half. ok is false outside the layout.
func (l Layout) ToField(col, row int) (x, y int, ok bool) {
	if l.Scale == 0 || col < 0 || row < 0 || col >= l.Cols || row >= l.Rows {
		return 0, 0, false
	}
	x = int((float64(col) + 0.5) * l.Scale)
	y = int((float64(2*row) + 0.5) * l.Scale)
	return x, y, true
}

// Downsample reduces the frame buffer to terminal cells. A block takes its
// most frequent non-background colour, so a body smaller than a block
// still shows up.
func Downsample(fb *core.FrameBuffer, l Layout) [][]Cell {
	cells := make([][]Cell, l.Rows)
	for row := range l.Rows {
		cells[row] = make([]Cell, l.Cols)
		for col := range l.Cols {
			cells[row][col] = Cell{
				Top:    blockColor(fb, l, col, 2*row),
				Bottom: blockColor(fb, l, col, 2*row+1),
			}
		}
	}
	return cells
}

// blockColor samples the pixel block at half-cell (bx, by).
func blockColor(fb *core.FrameBuffer, l Layout, bx, by int) core.Color {
	x0 := int(float64(bx) * l.Scale)
	x1 := min(int(math.Ceil(float64(bx+1)*l.Scale)), fb.Width())
	y0 := int(float64(by) * l.Scale)
	y1 := min(int(math.Ceil(float64(by+1)*l.Scale)), fb.Height())

	// A block rarely holds more than a handful of colours
	var colors [8]core.Color
	var counts [8]int
	n := 0

	for y := y0; y < y1; y++ {
		row := fb.Row(y)
		for x := x0; x < x1; x++ {
			c := row[x]
			if c == core.Background {
				continue
			}
			i := 0
			for i < n && colors[i] != c {
				i++
			}
			if i == n {
				if n == len(colors) {
					continue
				}
				colors[n] = c
				n++
			}
			counts[i]++
		}
	}

	best := core.Background
	bestCount := 0
	for i := range n {
		if counts[i] > bestCount {
			best, bestCount = colors[i], counts[i]
		}
	}
	return best
}

// FrameRenderer converts frame buffers to styled strings. Styles are cached
// per colour pair.
type FrameRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[Cell]lipgloss.Style
}

// NewFrameRenderer creates a renderer. A nil lipgloss renderer uses the
// default one bound to stdout.
func NewFrameRenderer(r *lipgloss.Renderer) *FrameRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &FrameRenderer{
		renderer: r,
		styles:   make(map[Cell]lipgloss.Style),
	}
}

// Render draws the frame buffer into at most cols x rows cells.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (fr *FrameRenderer) Render(fb *core.FrameBuffer, cols, rows int) string {
	layout := FitLayout(core.Field{W: fb.Width(), H: fb.Height()}, cols, rows)
	cells := Downsample(fb, layout)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(layout.Cols*layout.Rows*8 + layout.Rows)

	for y, line := range cells {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(line) {
			start := line[x]
			n := 0
			for x < len(line) && line[x] == start {
				n++
				x++
			}
			sb.WriteString(fr.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func (fr *FrameRenderer) style(c Cell) lipgloss.Style {
	if s, ok := fr.styles[c]; ok {
		return s
	}
	s := fr.renderer.NewStyle().
		Foreground(lipgloss.Color(c.Top.Hex())).
		Background(lipgloss.Color(c.Bottom.Hex()))
	fr.styles[c] = s
	return s
}
