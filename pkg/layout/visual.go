package layout

import (
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/property"
	"github.com/go-slate/slate/pkg/render"
)

// Visual provides base behavior for tree nodes. Widgets embed Visual and
// call SetSelf with the concrete type so invalidation schedules the
// embedder, not the base.
//
// The validity flags start out invalid: a freshly constructed node has
// never been measured or arranged.
type Visual struct {
	self   Node
	parent Node
	depth  int
	owner  *Queue

	logical NodeList
	visual  NodeList

	desired graphics.Size
	bounds  graphics.Rect

	measureValid bool
	arrangeValid bool
	renderValid  bool

	props *property.Store
}

// SetSelf registers the concrete node for scheduling and relay dispatch.
func (v *Visual) SetSelf(self Node) {
	v.self = self
}

// Self returns the concrete node registered via SetSelf.
func (v *Visual) Self() Node {
	if v.self != nil {
		return v.self
	}
	return nil
}

// SetOwner assigns the queue used to schedule invalidated nodes.
func (v *Visual) SetOwner(owner *Queue) {
	v.owner = owner
}

// Owner returns the queue assigned via SetOwner.
func (v *Visual) Owner() *Queue {
	return v.owner
}

// BindProps attaches a property store publishing to the given registry.
func (v *Visual) BindProps(subs *property.Subscriptions) {
	v.props = property.NewStore(subs)
}

// Props returns the node's property store. Nodes constructed without
// BindProps get an unobserved store on first use.
func (v *Visual) Props() *property.Store {
	if v.props == nil {
		v.props = property.NewStore(nil)
	}
	return v.props
}

// Parent returns the current structural parent, or nil.
func (v *Visual) Parent() Node {
	return v.parent
}

// SetParent sets the advisory back reference and recomputes depth. The
// reference never extends lifetime; ownership runs parent to child only.
func (v *Visual) SetParent(parent Node) {
	if v.parent == parent {
		return
	}
	v.parent = parent
	if parent == nil {
		v.depth = 0
	} else {
		v.depth = parent.Depth() + 1
	}
}

// Depth returns the tree depth (root = 0).
func (v *Visual) Depth() int {
	return v.depth
}

// LogicalChildren returns the semantic child sequence.
func (v *Visual) LogicalChildren() *NodeList {
	return &v.logical
}

// VisualChildren returns the render child sequence.
func (v *Visual) VisualChildren() *NodeList {
	return &v.visual
}

// MeasureValid reports whether the last measurement is still current.
func (v *Visual) MeasureValid() bool {
	return v.measureValid
}

// ArrangeValid reports whether the last arrangement is still current.
func (v *Visual) ArrangeValid() bool {
	return v.arrangeValid
}

// RenderValid reports whether the last rendering is still current.
func (v *Visual) RenderValid() bool {
	return v.renderValid
}

// InvalidateMeasure marks the node's measurement as stale and schedules
// it for the next measure pass. Safe to call repeatedly; the queue
// deduplicates.
func (v *Visual) InvalidateMeasure() {
	v.measureValid = false
	if v.owner != nil && v.self != nil {
		v.owner.ScheduleMeasure(v.self)
	}
}

// InvalidateArrange marks the node's arrangement as stale and schedules
// it for the next arrange pass. Measurement is untouched.
func (v *Visual) InvalidateArrange() {
	v.arrangeValid = false
	if v.owner != nil && v.self != nil {
		v.owner.ScheduleArrange(v.self)
	}
}

// InvalidateRender marks the node's rendering as stale.
func (v *Visual) InvalidateRender() {
	v.renderValid = false
	if v.owner != nil && v.self != nil {
		v.owner.ScheduleRender(v.self)
	}
}

// Measure computes the desired size and marks measurement valid. Clean
// nodes skip the computation entirely.
func (v *Visual) Measure(available graphics.Size) {
	if v.measureValid {
		return
	}
	if measurer, ok := v.self.(Measurer); ok {
		v.desired = measurer.PerformMeasure(available)
	} else {
		v.desired = graphics.Size{}
	}
	v.measureValid = true
}

// Arrange assigns the final bounds and marks arrangement valid. Clean
// nodes with unchanged bounds skip the computation.
func (v *Visual) Arrange(bounds graphics.Rect) {
	if v.arrangeValid && v.bounds == bounds {
		return
	}
	v.bounds = bounds
	if arranger, ok := v.self.(Arranger); ok {
		arranger.PerformArrange(bounds)
	}
	v.arrangeValid = true
}

// DesiredSize returns the size computed by the last Measure.
func (v *Visual) DesiredSize() graphics.Size {
	return v.desired
}

// Bounds returns the rect assigned by the last Arrange.
func (v *Visual) Bounds() graphics.Rect {
	return v.bounds
}

// Render draws nothing. Widgets with visible content override this.
func (v *Visual) Render(ctx render.DrawingContext) {
}

// MarkRendered records that the node's content has been drawn. Called by
// the tree walker after the node's Render step.
func (v *Visual) MarkRendered() {
	v.renderValid = true
}
