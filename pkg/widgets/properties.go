package widgets

import (
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/property"
)

// Alignment controls horizontal placement of a child within a stack.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return "start"
	}
}

// Widget properties consumed by the containers in this package.
var (
	// BackgroundProp holds a graphics.Brush; changing it redraws the widget.
	BackgroundProp = property.New("Panel", "Background")
	// MarginProp holds a uniform float64 margin; changing it on a child
	// re-measures the child's stack container.
	MarginProp = property.New("Layoutable", "Margin")
	// AlignmentProp holds an Alignment; changing it on a child re-arranges
	// the child's stack container without re-measuring it.
	AlignmentProp = property.New("Layoutable", "Alignment")
)

// RegisterLayoutProperties installs the parent-affecting and
// render-affecting relays for this package's containers into the given
// registry. Call once per registry, at startup, before widgets mutate
// properties.
func RegisterLayoutProperties(subs *property.Subscriptions) {
	layout.AffectsParentMeasure[*StackPanel](subs, MarginProp)
	layout.AffectsParentArrange[*StackPanel](subs, AlignmentProp)
	layout.AffectsRender(subs, BackgroundProp)
}

// propsHolder is the surface a node must expose for the attached-style
// accessors below.
type propsHolder interface {
	Props() *property.Store
}

// Margin returns the uniform margin set on the node, or 0.
func Margin(n layout.Node) float64 {
	if h, ok := n.(propsHolder); ok {
		if m, ok := h.Props().Value(MarginProp).(float64); ok {
			return m
		}
	}
	return 0
}

// SetMargin sets the node's uniform margin.
func SetMargin(n layout.Node, margin float64) {
	if h, ok := n.(propsHolder); ok {
		h.Props().Set(n, MarginProp, margin)
	}
}

// AlignmentOf returns the alignment set on the node, or AlignStart.
func AlignmentOf(n layout.Node) Alignment {
	if h, ok := n.(propsHolder); ok {
		if a, ok := h.Props().Value(AlignmentProp).(Alignment); ok {
			return a
		}
	}
	return AlignStart
}

// SetAlignment sets the node's alignment.
func SetAlignment(n layout.Node, a Alignment) {
	if h, ok := n.(propsHolder); ok {
		h.Props().Set(n, AlignmentProp, a)
	}
}
