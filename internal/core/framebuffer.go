package core

// FrameBuffer is a row-major 2D array of pixel colors sized to the field.
// The render pass writes it; the host presents it after each frame.
type FrameBuffer struct {
	width  int
	height int
	pixels []Color
}

// NewFrameBuffer creates a buffer for the given field, cleared to Background.
func NewFrameBuffer(field Field) *FrameBuffer {
	fb := &FrameBuffer{
		width:  max(field.W, 0),
		height: max(field.H, 0),
	}
	fb.pixels = make([]Color, fb.width*fb.height)
	fb.Clear(Background)
	return fb
}

// Width returns the buffer width in pixels.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the buffer height in pixels.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Clear fills the entire buffer with c.
func (fb *FrameBuffer) Clear(c Color) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored.
func (fb *FrameBuffer) Set(x, y int, c Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = c
}

// At returns the pixel at (x, y), or Background when out of bounds.
func (fb *FrameBuffer) At(x, y int) Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return Background
	}
	return fb.pixels[y*fb.width+x]
}

// FillRect paints r with c, overwriting whatever was there.
// The part of r outside the buffer is clipped.
func (fb *FrameBuffer) FillRect(r Rect, c Color) {
	r = r.Clip(fb.width, fb.height)
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := fb.pixels[y*fb.width : (y+1)*fb.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = c
		}
	}
}

// Row returns the pixels of row y. The slice aliases the buffer.
func (fb *FrameBuffer) Row(y int) []Color {
	if y < 0 || y >= fb.height {
		return nil
	}
	return fb.pixels[y*fb.width : (y+1)*fb.width]
}
