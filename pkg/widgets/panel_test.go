package widgets

import (
	"testing"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/property"
	"github.com/go-slate/slate/pkg/render"
)

type childWidget struct {
	layout.Visual
	name string
}

func newChildWidget(name string) *childWidget {
	w := &childWidget{name: name}
	w.SetSelf(w)
	return w
}

func children(names ...string) []layout.Node {
	nodes := make([]layout.Node, len(names))
	for i, name := range names {
		nodes[i] = newChildWidget(name)
	}
	return nodes
}

// expectCongruent asserts the logical tree, visual tree and collection
// have identical length and item-at-index mapping.
func expectCongruent(t *testing.T, p *Panel) {
	t.Helper()
	logical := p.LogicalChildren()
	visual := p.VisualChildren()
	if logical.Len() != p.Children().Len() || visual.Len() != p.Children().Len() {
		t.Fatalf("length mismatch: collection=%d logical=%d visual=%d",
			p.Children().Len(), logical.Len(), visual.Len())
	}
	for i := 0; i < p.Children().Len(); i++ {
		if logical.At(i) != p.Children().At(i) {
			t.Fatalf("logical tree diverges at %d", i)
		}
		if visual.At(i) != p.Children().At(i) {
			t.Fatalf("visual tree diverges at %d", i)
		}
	}
}

func expectNames(t *testing.T, l *layout.NodeList, want ...string) {
	t.Helper()
	if l.Len() != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), l.Len())
	}
	for i, name := range want {
		if got := l.At(i).(*childWidget).name; got != name {
			t.Fatalf("index %d: expected %q, got %q", i, name, got)
		}
	}
}

// validateMeasure runs a measure pass on the panel so invalidation can be
// observed against a clean flag.
func validateMeasure(p *Panel) {
	p.Measure(graphics.Size{Width: 1000, Height: 1000})
}

func TestAddRangeSyncsBothTrees(t *testing.T) {
	p := NewPanel(nil, nil)
	items := children("h0", "h1", "h2", "h3", "h4")

	p.Children().AddRange(items)

	expectCongruent(t, p)
	expectNames(t, p.LogicalChildren(), "h0", "h1", "h2", "h3", "h4")
	expectNames(t, p.VisualChildren(), "h0", "h1", "h2", "h3", "h4")
	if p.MeasureValid() {
		t.Fatal("structural change must invalidate measurement")
	}
}

func TestScenarioAddRangeMoveClear(t *testing.T) {
	p := NewPanel(nil, nil)
	items := children("h0", "h1", "h2", "h3", "h4")
	p.Children().AddRange(items)

	if err := p.Children().Move(1, 2, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCongruent(t, p)
	expectNames(t, p.LogicalChildren(), "h0", "h3", "h4", "h1", "h2")
	expectNames(t, p.VisualChildren(), "h0", "h3", "h4", "h1", "h2")

	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected Clear to panic")
			}
			err, ok := r.(*errors.Error)
			if !ok || err.Kind != errors.KindUnsupportedReset {
				t.Fatalf("expected unsupported-reset error, got %v", r)
			}
		}()
		p.Children().Clear()
	}()

	// The trees keep their pre-clear state.
	expectNames(t, p.LogicalChildren(), "h0", "h3", "h4", "h1", "h2")
	expectNames(t, p.VisualChildren(), "h0", "h3", "h4", "h1", "h2")
}

func TestSingleVsBulkAddEquivalence(t *testing.T) {
	single := NewPanel(nil, nil)
	bulk := NewPanel(nil, nil)
	names := []string{"a", "b", "c", "d"}

	items := children(names...)
	for i, item := range items {
		if err := single.Children().Insert(i, item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	bulk.Children().AddRange(children(names...))

	expectCongruent(t, single)
	expectCongruent(t, bulk)
	expectNames(t, single.LogicalChildren(), names...)
	expectNames(t, bulk.LogicalChildren(), names...)
}

func TestInsertUsesSingleItemPath(t *testing.T) {
	p := NewPanel(nil, nil)
	p.Children().AddRange(children("a", "c"))

	if err := p.Children().Insert(1, newChildWidget("b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCongruent(t, p)
	expectNames(t, p.LogicalChildren(), "a", "b", "c")
}

func TestRemoveSingleByIndex(t *testing.T) {
	p := NewPanel(nil, nil)
	items := children("a", "b", "c")
	p.Children().AddRange(items)
	validateMeasure(p)

	if err := p.Children().RemoveAt(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCongruent(t, p)
	expectNames(t, p.LogicalChildren(), "a", "c")
	if p.MeasureValid() {
		t.Fatal("removal must invalidate measurement")
	}
	if items[1].Parent() != nil {
		t.Fatal("removed child must lose its parent reference")
	}
}

func TestRemoveBulkByIdentity(t *testing.T) {
	p := NewPanel(nil, nil)
	items := children("a", "b", "c", "d")
	p.Children().AddRange(items)

	p.Children().RemoveAll([]layout.Node{items[0], items[2]})

	expectCongruent(t, p)
	expectNames(t, p.LogicalChildren(), "b", "d")
	if items[0].Parent() != nil || items[2].Parent() != nil {
		t.Fatal("removed children must lose their parent reference")
	}
	if items[1].Parent() != layout.Node(p) {
		t.Fatal("remaining children keep their parent reference")
	}
}

func TestReplaceOverwritesIndex(t *testing.T) {
	p := NewPanel(nil, nil)
	items := children("a", "b", "c")
	p.Children().AddRange(items)
	validateMeasure(p)

	repl := newChildWidget("z")
	if err := p.Children().Replace(1, repl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCongruent(t, p)
	expectNames(t, p.LogicalChildren(), "a", "z", "c")
	if items[1].Parent() != nil {
		t.Fatal("replaced child must lose its parent reference")
	}
	if repl.Parent() != layout.Node(p) {
		t.Fatal("replacement child must gain the panel as parent")
	}
	if p.MeasureValid() {
		t.Fatal("replace must invalidate measurement")
	}
}

func TestMoveSingleItem(t *testing.T) {
	p := NewPanel(nil, nil)
	p.Children().AddRange(children("a", "b", "c"))

	if err := p.Children().Move(0, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCongruent(t, p)
	expectNames(t, p.LogicalChildren(), "b", "c", "a")
}

func TestMixedMutationSequenceStaysCongruent(t *testing.T) {
	p := NewPanel(nil, nil)
	items := children("a", "b", "c", "d", "e", "f")
	p.Children().AddRange(items[:4])
	expectCongruent(t, p)

	if err := p.Children().Insert(2, items[4]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCongruent(t, p)

	if err := p.Children().Move(1, 3, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCongruent(t, p)

	p.Children().RemoveAll([]layout.Node{items[0], items[2]})
	expectCongruent(t, p)

	if err := p.Children().Replace(0, items[5]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCongruent(t, p)
}

func TestMeasureInvalidatedRegardlessOfPriorState(t *testing.T) {
	p := NewPanel(nil, nil)
	p.Children().Add(newChildWidget("a"))
	if p.MeasureValid() {
		t.Fatal("expected invalid measurement after add")
	}

	validateMeasure(p)
	if !p.MeasureValid() {
		t.Fatal("expected valid measurement after measure pass")
	}

	p.Children().Add(newChildWidget("b"))
	if p.MeasureValid() {
		t.Fatal("expected invalid measurement after second add")
	}
}

func TestAddedChildrenGetOwnerQueue(t *testing.T) {
	var q layout.Queue
	p := NewPanel(nil, &q)
	child := newChildWidget("a")

	p.Children().Add(child)
	q.FlushMeasure()

	child.InvalidateMeasure()
	if !q.NeedsMeasure() {
		t.Fatal("attached child invalidations must reach the panel's queue")
	}
}

func TestPanelRendersBackgroundOnce(t *testing.T) {
	p := NewPanel(property.NewSubscriptions(), nil)
	p.Arrange(graphics.RectFromLTWH(0, 0, 200, 100))
	brush := graphics.NewSolidBrush(graphics.RGB(9, 9, 9))
	p.SetBackground(brush)

	var rec render.Recorder
	ctx := rec.Begin(p.Bounds().Size())
	p.Render(ctx)
	list := rec.End()

	fills := 0
	for _, op := range list.Ops() {
		if fill, ok := op.(render.FillOp); ok {
			fills++
			if fill.Brush != graphics.Brush(brush) {
				t.Fatal("fill must use the background brush")
			}
			if fill.Rect != graphics.RectFromSize(p.Bounds().Size()) {
				t.Fatalf("fill must cover the panel bounds, got %v", fill.Rect)
			}
		}
	}
	if fills != 1 {
		t.Fatalf("expected exactly one fill, got %d", fills)
	}
}

func TestPanelWithoutBackgroundRendersNothing(t *testing.T) {
	p := NewPanel(nil, nil)
	var rec render.Recorder
	p.Render(rec.Begin(graphics.Size{Width: 10, Height: 10}))
	if list := rec.End(); list.Len() != 0 {
		t.Fatalf("expected no ops, got %d", list.Len())
	}
}

func TestRenderTreePaintsBackgroundBeforeChildren(t *testing.T) {
	subs := property.NewSubscriptions()
	parent := NewPanel(subs, nil)
	child := NewPanel(subs, nil)

	parentBrush := graphics.NewSolidBrush(graphics.RGB(1, 0, 0))
	childBrush := graphics.NewSolidBrush(graphics.RGB(0, 1, 0))
	parent.SetBackground(parentBrush)
	child.SetBackground(childBrush)

	parent.Children().Add(child)
	parent.Arrange(graphics.RectFromLTWH(0, 0, 100, 100))
	child.Arrange(graphics.RectFromLTWH(10, 10, 50, 50))

	var rec render.Recorder
	layout.RenderTree(parent, rec.Begin(parent.Bounds().Size()))
	list := rec.End()

	var fillOrder []graphics.Brush
	for _, op := range list.Ops() {
		if fill, ok := op.(render.FillOp); ok {
			fillOrder = append(fillOrder, fill.Brush)
		}
	}
	if len(fillOrder) != 2 {
		t.Fatalf("expected 2 fills, got %d", len(fillOrder))
	}
	if fillOrder[0] != graphics.Brush(parentBrush) || fillOrder[1] != graphics.Brush(childBrush) {
		t.Fatal("parent background must paint before the child")
	}
}

func TestBackgroundChangeInvalidatesRender(t *testing.T) {
	subs := property.NewSubscriptions()
	RegisterLayoutProperties(subs)

	var q layout.Queue
	p := NewPanel(subs, &q)
	p.MarkRendered()

	p.SetBackground(graphics.NewSolidBrush(graphics.RGB(5, 5, 5)))
	if p.RenderValid() {
		t.Fatal("background change must invalidate rendering")
	}
	if !q.NeedsRender() {
		t.Fatal("background change must schedule a redraw")
	}
}
