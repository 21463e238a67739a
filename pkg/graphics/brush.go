package graphics

// Brush describes how a region is filled.
type Brush interface {
	// Fill returns the effective fill color of the brush.
	Fill() Color
}

// SolidBrush fills with a single color, optionally faded by Opacity.
type SolidBrush struct {
	Color   Color
	Opacity float64 // 0.0 to 1.0
}

// NewSolidBrush creates a fully opaque solid brush.
func NewSolidBrush(c Color) *SolidBrush {
	return &SolidBrush{Color: c, Opacity: 1}
}

// Fill returns the brush color with opacity applied to its alpha channel.
func (b *SolidBrush) Fill() Color {
	o := b.Opacity
	if o < 0 {
		o = 0
	}
	if o > 1 {
		o = 1
	}
	a := float64(b.Color.Alpha()) * o
	return b.Color.WithAlpha8(uint8(a + 0.5))
}
