// Command slate-demo builds a small widget tree, runs a layout pass, and
// prints the recorded drawing operations. It exists to exercise the full
// pipeline end to end: theme loading, child collection sync, invalidation
// queue flushing, and display list recording.
//
// Usage:
//
//	slate-demo [-theme theme.yaml] [-width 320] [-height 480]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/property"
	"github.com/go-slate/slate/pkg/render"
	"github.com/go-slate/slate/pkg/theme"
	"github.com/go-slate/slate/pkg/widgets"
)

func main() {
	themePath := flag.String("theme", "", "path to a theme YAML file")
	width := flag.Float64("width", 320, "surface width")
	height := flag.Float64("height", 480, "surface height")
	flag.Parse()

	if err := run(*themePath, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "slate-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(themePath string, width, height float64) error {
	th := &theme.Theme{PanelBackground: "whitesmoke", StackSpacing: 8}
	if themePath != "" {
		data, err := os.ReadFile(themePath)
		if err != nil {
			return err
		}
		th, err = theme.Parse(data)
		if err != nil {
			return err
		}
	}

	subs := property.NewSubscriptions()
	widgets.RegisterLayoutProperties(subs)
	var queue layout.Queue

	stack := widgets.NewStackPanel(subs, &queue)
	th.ApplyStack(stack)

	for i, name := range []string{"crimson", "seagreen", "royalblue"} {
		c, err := graphics.ParseColor(name)
		if err != nil {
			return err
		}
		t := newTile(graphics.NewSolidBrush(c), graphics.Size{Width: 120, Height: 60})
		t.BindProps(subs)
		widgets.SetMargin(t, float64(4*i))
		stack.Children().Add(t)
	}
	widgets.SetAlignment(stack.Children().At(1), widgets.AlignCenter)
	widgets.SetAlignment(stack.Children().At(2), widgets.AlignStretch)

	surface := graphics.Size{Width: width, Height: height}
	for _, n := range queue.FlushMeasure() {
		n.Measure(surface)
	}
	stack.Arrange(graphics.RectFromSize(surface))
	for _, n := range queue.FlushArrange() {
		n.Arrange(n.Bounds())
	}

	var rec render.Recorder
	layout.RenderTree(stack, rec.Begin(surface))
	list := rec.End()
	queue.FlushRender()

	fmt.Printf("desired size: %.0fx%.0f\n", stack.DesiredSize().Width, stack.DesiredSize().Height)
	fmt.Printf("recorded %d ops:\n", list.Len())
	for _, op := range list.Ops() {
		fmt.Printf("  %+v\n", op)
	}
	return nil
}

// tile is a fixed-size leaf widget filled with a single brush.
type tile struct {
	layout.Visual
	brush graphics.Brush
	size  graphics.Size
}

func newTile(brush graphics.Brush, size graphics.Size) *tile {
	t := &tile{brush: brush, size: size}
	t.SetSelf(t)
	return t
}

func (t *tile) PerformMeasure(available graphics.Size) graphics.Size {
	return t.size
}

func (t *tile) Render(ctx render.DrawingContext) {
	ctx.FillRectangle(t.brush, graphics.RectFromSize(t.Bounds().Size()))
}
