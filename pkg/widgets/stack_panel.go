package widgets

import (
	"math"

	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/property"
)

// StackPanel stacks its children vertically. It is the capability type
// for the parent-affecting layout properties: a child's MarginProp change
// re-measures its StackPanel parent, and an AlignmentProp change
// re-arranges it.
type StackPanel struct {
	Panel
	// Spacing is the vertical gap between adjacent children.
	Spacing float64
}

// NewStackPanel creates an empty vertical stack.
func NewStackPanel(subs *property.Subscriptions, owner *layout.Queue) *StackPanel {
	s := &StackPanel{}
	s.init(s, subs, owner)
	return s
}

// PerformMeasure computes the stack's desired size: the max child width
// and the sum of child heights, both including uniform margins and the
// inter-child spacing.
func (s *StackPanel) PerformMeasure(available graphics.Size) graphics.Size {
	children := s.VisualChildren()
	width := 0.0
	height := 0.0
	for i := 0; i < children.Len(); i++ {
		child := children.At(i)
		child.Measure(available)
		m := Margin(child)
		d := child.DesiredSize()
		width = math.Max(width, d.Width+2*m)
		height += d.Height + 2*m
		if i > 0 {
			height += s.Spacing
		}
	}
	return graphics.Size{Width: width, Height: height}
}

// PerformArrange positions children top to bottom. Horizontal placement
// follows each child's alignment; bounds handed to children are relative
// to the stack's own origin.
func (s *StackPanel) PerformArrange(bounds graphics.Rect) {
	children := s.VisualChildren()
	y := 0.0
	for i := 0; i < children.Len(); i++ {
		child := children.At(i)
		m := Margin(child)
		d := child.DesiredSize()
		w := d.Width
		x := m
		switch AlignmentOf(child) {
		case AlignCenter:
			x = (bounds.Width() - w) / 2
		case AlignEnd:
			x = bounds.Width() - w - m
		case AlignStretch:
			w = bounds.Width() - 2*m
		}
		child.Arrange(graphics.RectFromLTWH(x, y+m, w, d.Height))
		y += d.Height + 2*m
		if i < children.Len()-1 {
			y += s.Spacing
		}
	}
}
