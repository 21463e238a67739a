package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha byte of the color.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// WithAlpha8 returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// IsTransparent reports whether the color is fully transparent.
func (c Color) IsTransparent() bool {
	return c.Alpha() == 0
}

// ParseColor resolves a color from a CSS color name or a hex literal.
// Accepted hex forms are #RRGGBB and #AARRGGBB.
func ParseColor(s string) (Color, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return 0, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return RGBA8(c.R, c.G, c.B, c.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}

func parseHexColor(hex string) (Color, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", "#"+hex, err)
	}
	switch len(hex) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(v), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", "#"+hex)
	}
}
