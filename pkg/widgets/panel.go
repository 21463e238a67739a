// Package widgets provides container widgets built on the layout core.
package widgets

import (
	"github.com/go-slate/slate/pkg/collections"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/property"
	"github.com/go-slate/slate/pkg/render"
)

// Panel is a container widget. It owns an ordered child collection and
// keeps the logical and visual child trees in lockstep with it: every
// collection notification is applied as an equivalent patch to the
// logical tree, then the visual tree, after which the panel's own
// measurement is invalidated.
//
// The collection lives exactly as long as the panel. External callers
// mutate children only through Children(); the child trees are mutated
// exclusively by the panel itself.
type Panel struct {
	layout.Visual
	children *collections.ChildList
}

// NewPanel creates an empty panel publishing property changes to subs and
// scheduling invalidations on owner. Both may be nil for detached use.
func NewPanel(subs *property.Subscriptions, owner *layout.Queue) *Panel {
	p := &Panel{}
	p.init(p, subs, owner)
	return p
}

// init wires the outermost widget as the concrete node and creates the
// child collection. Embedders pass themselves as self.
func (p *Panel) init(self layout.Node, subs *property.Subscriptions, owner *layout.Queue) {
	p.SetSelf(self)
	p.SetOwner(owner)
	p.BindProps(subs)
	p.children = collections.NewChildList()
	p.children.SetListener(p.childrenChanged)
}

// Children returns the panel's child collection.
func (p *Panel) Children() *collections.ChildList {
	return p.children
}

// Background returns the panel's background brush, or nil.
func (p *Panel) Background() graphics.Brush {
	if b, ok := p.Props().Value(BackgroundProp).(graphics.Brush); ok {
		return b
	}
	return nil
}

// SetBackground sets the panel's background brush. The property is
// registered as render-affecting, so the change triggers a redraw.
func (p *Panel) SetBackground(b graphics.Brush) {
	p.Props().Set(p.Self(), BackgroundProp, b)
}

// childrenChanged applies one collection notification to both child
// trees, logical first, then invalidates the panel's measurement. Items
// counts of one take the single-item paths; larger counts use the O(k)
// range operations.
//
// Reset notifications are rejected: they carry no item detail, so the
// trees cannot be reconciled with the collection. Failing fast here beats
// silently desynchronizing; callers clear a panel by removing the items
// they tracked.
func (p *Panel) childrenChanged(c collections.Change) {
	logical := p.LogicalChildren()
	visual := p.VisualChildren()

	switch c.Action {
	case collections.ActionAdd:
		if len(c.NewItems) == 1 {
			logical.Insert(c.NewIndex, c.NewItems[0])
			visual.Insert(c.NewIndex, c.NewItems[0])
		} else {
			logical.InsertRange(c.NewIndex, c.NewItems)
			visual.InsertRange(c.NewIndex, c.NewItems)
		}
		for _, item := range c.NewItems {
			p.attach(item)
		}

	case collections.ActionMove:
		if len(c.OldItems) == 1 {
			logical.Move(c.OldIndex, c.NewIndex)
			visual.Move(c.OldIndex, c.NewIndex)
		} else {
			logical.MoveRange(c.OldIndex, len(c.OldItems), c.NewIndex)
			visual.MoveRange(c.OldIndex, len(c.OldItems), c.NewIndex)
		}

	case collections.ActionRemove:
		if len(c.OldItems) == 1 && c.OldIndex >= 0 {
			logical.RemoveAt(c.OldIndex)
			visual.RemoveAt(c.OldIndex)
		} else {
			logical.RemoveAll(c.OldItems)
			visual.RemoveAll(c.OldItems)
		}
		for _, item := range c.OldItems {
			p.detach(item)
		}

	case collections.ActionReplace:
		for i, item := range c.NewItems {
			index := c.NewIndex + i
			logical.Set(index, item)
			visual.Set(index, item)
			p.detach(c.OldItems[i])
			p.attach(item)
		}

	case collections.ActionReset:
		panic(errors.UnsupportedReset("widgets.Panel.childrenChanged"))
	}

	// Any structural change to children can change the panel's desired
	// size, so measurement is invalidated unconditionally.
	p.InvalidateMeasure()
}

// attach sets the parent back reference and propagates the owner queue so
// the child's own invalidations are scheduled.
func (p *Panel) attach(item layout.Node) {
	item.SetParent(p.Self())
	if p.Owner() != nil {
		item.SetOwner(p.Owner())
	}
}

// detach clears the parent back reference.
func (p *Panel) detach(item layout.Node) {
	item.SetParent(nil)
}

// Render fills the panel's background, when one is set, with exactly one
// rectangle covering the panel's current bounds. Children are drawn on
// top by the tree walker.
func (p *Panel) Render(ctx render.DrawingContext) {
	if bg := p.Background(); bg != nil {
		ctx.FillRectangle(bg, graphics.RectFromSize(p.Bounds().Size()))
	}
}
