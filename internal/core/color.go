package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 0xRRGGBB pixel value. Only renderers interpret it.
type Color uint32

// Palette used by the simulation and its hosts.
const (
	ColorBlack  Color = 0x000000
	ColorRed    Color = 0xFF0000
	ColorGreen  Color = 0x00FF00
	ColorBlue   Color = 0x0000FF
	ColorYellow Color = 0xFFFF00
	ColorWhite  Color = 0xFFFFFF
)

// Background is the value the render pass clears the frame buffer to.
const Background = ColorBlack

// RGB splits the color into its 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c) //#nosec G115 -- masked by truncation
}

// Hex returns the color as a "#rrggbb" string suitable for lipgloss.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or "rrggbb".
func ParseColor(s string) (Color, bool) {
	switch {
	case len(s) == 7 && s[0] == '#':
		s = s[1:]
	case len(s) == 8 && (s[:2] == "0x" || s[:2] == "0X"):
		s = s[2:]
	}
	if len(s) != 6 {
		return 0, false
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return 0, false
	}
	r, g, b := c.RGB255()
	col := Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))

	// Scanf tolerates padding such as "# f0000"
	if col.Hex()[1:] != strings.ToLower(s) {
		return 0, false
	}
	return col, true
}
