package render

import "github.com/go-slate/slate/pkg/graphics"

// Op is a single recorded drawing operation.
type Op interface {
	replay(ctx DrawingContext)
}

// FillOp records a FillRectangle call.
type FillOp struct {
	Brush graphics.Brush
	Rect  graphics.Rect
}

func (o FillOp) replay(ctx DrawingContext) {
	ctx.FillRectangle(o.Brush, o.Rect)
}

// SaveOp records a Save call.
type SaveOp struct{}

func (SaveOp) replay(ctx DrawingContext) {
	ctx.Save()
}

// RestoreOp records a Restore call.
type RestoreOp struct{}

func (RestoreOp) replay(ctx DrawingContext) {
	ctx.Restore()
}

// TranslateOp records a Translate call.
type TranslateOp struct {
	DX float64
	DY float64
}

func (o TranslateOp) replay(ctx DrawingContext) {
	ctx.Translate(o.DX, o.DY)
}

// DisplayList is an immutable list of drawing operations. It can be
// replayed onto any DrawingContext implementation.
type DisplayList struct {
	ops  []Op
	size graphics.Size
}

// Replay executes the recorded operations against the provided context.
func (d *DisplayList) Replay(ctx DrawingContext) {
	for _, op := range d.ops {
		op.replay(ctx)
	}
}

// Ops returns the recorded operations in order.
func (d *DisplayList) Ops() []Op {
	out := make([]Op, len(d.ops))
	copy(out, d.ops)
	return out
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() graphics.Size {
	return d.size
}

// Recorder records drawing commands into a display list.
type Recorder struct {
	ops       []Op
	recording bool
	size      graphics.Size
}

// Begin starts a new recording session.
func (r *Recorder) Begin(size graphics.Size) DrawingContext {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingContext{recorder: r}
}

// End finishes the recording and returns a display list.
func (r *Recorder) End() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *Recorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingContext struct {
	recorder *Recorder
}

func (c *recordingContext) Save() {
	c.recorder.append(SaveOp{})
}

func (c *recordingContext) Restore() {
	c.recorder.append(RestoreOp{})
}

func (c *recordingContext) Translate(dx, dy float64) {
	c.recorder.append(TranslateOp{DX: dx, DY: dy})
}

func (c *recordingContext) FillRectangle(brush graphics.Brush, rect graphics.Rect) {
	c.recorder.append(FillOp{Brush: brush, Rect: rect})
}
