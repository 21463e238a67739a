// Package layout provides the visual-tree node base, the layout
// invalidation queue, and the parent-affecting property relay.
//
// Nodes carry a pair of validity flags for the two-phase layout contract:
// measurement (desired size) and arrangement (final position). Structural
// or property changes flip a flag to invalid and schedule the node on its
// owning Queue; the surrounding layout pass flips it back to valid after
// recomputing.
package layout

import (
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/render"
)

// Node is the handle to a widget in the tree. It is identity-comparable;
// the trees hold non-owning references, and the child-to-parent back edge
// is advisory only.
type Node interface {
	// Parent returns the current structural parent, or nil for a root or
	// detached node.
	Parent() Node
	// SetParent sets the advisory back reference to the structural parent.
	SetParent(parent Node)
	// Depth returns the tree depth (root = 0).
	Depth() int

	// LogicalChildren is the semantic child sequence used for traversal,
	// focus, and event bubbling.
	LogicalChildren() *NodeList
	// VisualChildren is the render/hit-test child sequence, kept in
	// lockstep with LogicalChildren by container widgets.
	VisualChildren() *NodeList

	InvalidateMeasure()
	InvalidateArrange()
	InvalidateRender()
	MeasureValid() bool
	ArrangeValid() bool

	// Measure computes the node's desired size for the given available
	// space and marks measurement valid.
	Measure(available graphics.Size)
	// Arrange assigns the node's final bounds and marks arrangement valid.
	Arrange(bounds graphics.Rect)
	// DesiredSize returns the size computed by the last Measure.
	DesiredSize() graphics.Size
	// Bounds returns the rect assigned by the last Arrange.
	Bounds() graphics.Rect

	// Render draws the node's own content. Children are drawn separately,
	// in tree order, by RenderTree.
	Render(ctx render.DrawingContext)

	SetOwner(owner *Queue)
}

// Measurer is implemented by nodes with custom measurement logic.
type Measurer interface {
	// PerformMeasure returns the desired size for the available space.
	PerformMeasure(available graphics.Size) graphics.Size
}

// Arranger is implemented by nodes with custom arrangement logic.
type Arranger interface {
	// PerformArrange positions content within the final bounds.
	PerformArrange(bounds graphics.Rect)
}

// RenderTree draws a node and then its visual children in tree order.
// Parents paint first, so children composite on top.
func RenderTree(n Node, ctx render.DrawingContext) {
	if n == nil {
		return
	}
	n.Render(ctx)
	if marker, ok := n.(interface{ MarkRendered() }); ok {
		marker.MarkRendered()
	}
	children := n.VisualChildren()
	for i := 0; i < children.Len(); i++ {
		child := children.At(i)
		offset := child.Bounds()
		ctx.Save()
		ctx.Translate(offset.Left, offset.Top)
		RenderTree(child, ctx)
		ctx.Restore()
	}
}
