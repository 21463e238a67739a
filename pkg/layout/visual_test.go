package layout

import (
	"testing"

	"github.com/go-slate/slate/pkg/graphics"
)

func sizeSquare(v float64) graphics.Size {
	return graphics.Size{Width: v, Height: v}
}

func rectSquare(v float64) graphics.Rect {
	return graphics.RectFromLTWH(0, 0, v, v)
}

// measuredNode reports a fixed desired size and counts measure calls.
type measuredNode struct {
	Visual
	desired      graphics.Size
	measureCalls int
}

func newMeasuredNode(desired graphics.Size) *measuredNode {
	n := &measuredNode{desired: desired}
	n.SetSelf(n)
	return n
}

func (n *measuredNode) PerformMeasure(available graphics.Size) graphics.Size {
	n.measureCalls++
	return n.desired
}

func TestInitialStateIsInvalid(t *testing.T) {
	n := newStubNode("a")
	if n.MeasureValid() || n.ArrangeValid() {
		t.Fatal("fresh nodes must start with invalid measurement and arrangement")
	}
}

func TestMeasureValidatesAndStoresDesiredSize(t *testing.T) {
	n := newMeasuredNode(sizeSquare(25))
	n.Measure(sizeSquare(100))
	if !n.MeasureValid() {
		t.Fatal("expected measurement to be valid")
	}
	if n.DesiredSize() != sizeSquare(25) {
		t.Fatalf("unexpected desired size: %v", n.DesiredSize())
	}
}

func TestMeasureSkipsWhenClean(t *testing.T) {
	n := newMeasuredNode(sizeSquare(25))
	n.Measure(sizeSquare(100))
	n.Measure(sizeSquare(100))
	if n.measureCalls != 1 {
		t.Fatalf("expected 1 measure call, got %d", n.measureCalls)
	}
	n.InvalidateMeasure()
	n.Measure(sizeSquare(100))
	if n.measureCalls != 2 {
		t.Fatalf("expected 2 measure calls, got %d", n.measureCalls)
	}
}

func TestArrangeValidatesAndStoresBounds(t *testing.T) {
	n := newStubNode("a")
	bounds := graphics.RectFromLTWH(10, 10, 50, 20)
	n.Arrange(bounds)
	if !n.ArrangeValid() {
		t.Fatal("expected arrangement to be valid")
	}
	if n.Bounds() != bounds {
		t.Fatalf("unexpected bounds: %v", n.Bounds())
	}
}

func TestSetParentComputesDepth(t *testing.T) {
	root := newStubNode("root")
	mid := newStubNode("mid")
	leaf := newStubNode("leaf")

	mid.SetParent(root)
	leaf.SetParent(mid)
	if root.Depth() != 0 || mid.Depth() != 1 || leaf.Depth() != 2 {
		t.Fatalf("unexpected depths: %d/%d/%d", root.Depth(), mid.Depth(), leaf.Depth())
	}

	leaf.SetParent(nil)
	if leaf.Depth() != 0 {
		t.Fatalf("detached node must have depth 0, got %d", leaf.Depth())
	}
}

func TestInvalidateWithoutOwnerIsSafe(t *testing.T) {
	n := newStubNode("a")
	n.InvalidateMeasure()
	n.InvalidateArrange()
	n.InvalidateRender()
	if n.MeasureValid() || n.ArrangeValid() || n.RenderValid() {
		t.Fatal("flags must still flip without an owner")
	}
}
