package layout

import "slices"

// Queue tracks nodes whose measurement, arrangement, or rendering has
// been invalidated. Invalidation methods on Visual schedule here; the
// surrounding layout pass drains the queue once per frame.
//
// The queue never runs layout itself. Flush methods return the nodes that
// are still dirty, sorted parent-first by depth, so a parent's pass can
// clean up descendants before they are visited.
type Queue struct {
	dirtyMeasure    []Node
	dirtyMeasureSet map[Node]bool
	dirtyArrange    []Node
	dirtyArrangeSet map[Node]bool
	dirtyRender     map[Node]struct{}
}

// ScheduleMeasure marks a node as needing measurement.
func (q *Queue) ScheduleMeasure(n Node) {
	if q.dirtyMeasureSet == nil {
		q.dirtyMeasureSet = make(map[Node]bool)
	}
	if q.dirtyMeasureSet[n] {
		return
	}
	q.dirtyMeasureSet[n] = true
	q.dirtyMeasure = append(q.dirtyMeasure, n)
}

// ScheduleArrange marks a node as needing arrangement.
func (q *Queue) ScheduleArrange(n Node) {
	if q.dirtyArrangeSet == nil {
		q.dirtyArrangeSet = make(map[Node]bool)
	}
	if q.dirtyArrangeSet[n] {
		return
	}
	q.dirtyArrangeSet[n] = true
	q.dirtyArrange = append(q.dirtyArrange, n)
}

// ScheduleRender marks a node as needing redraw.
func (q *Queue) ScheduleRender(n Node) {
	if q.dirtyRender == nil {
		q.dirtyRender = make(map[Node]struct{})
	}
	q.dirtyRender[n] = struct{}{}
}

// NeedsMeasure reports whether any node awaits measurement.
func (q *Queue) NeedsMeasure() bool {
	return len(q.dirtyMeasure) > 0
}

// NeedsArrange reports whether any node awaits arrangement.
func (q *Queue) NeedsArrange() bool {
	return len(q.dirtyArrange) > 0
}

// NeedsRender reports whether any node awaits redraw.
func (q *Queue) NeedsRender() bool {
	return len(q.dirtyRender) > 0
}

// FlushMeasure returns the scheduled nodes whose measurement is still
// invalid, parents first, and clears the measure queue.
func (q *Queue) FlushMeasure() []Node {
	dirty := q.dirtyMeasure
	q.dirtyMeasure = nil
	q.dirtyMeasureSet = nil
	return stillDirty(dirty, func(n Node) bool { return !n.MeasureValid() })
}

// FlushArrange returns the scheduled nodes whose arrangement is still
// invalid, parents first, and clears the arrange queue.
func (q *Queue) FlushArrange() []Node {
	dirty := q.dirtyArrange
	q.dirtyArrange = nil
	q.dirtyArrangeSet = nil
	return stillDirty(dirty, func(n Node) bool { return !n.ArrangeValid() })
}

// FlushRender returns the scheduled nodes needing redraw, parents first,
// and clears the render queue.
func (q *Queue) FlushRender() []Node {
	if len(q.dirtyRender) == 0 {
		q.dirtyRender = nil
		return nil
	}
	dirty := make([]Node, 0, len(q.dirtyRender))
	for n := range q.dirtyRender {
		dirty = append(dirty, n)
	}
	q.dirtyRender = nil
	return stillDirty(dirty, func(Node) bool { return true })
}

// stillDirty sorts nodes parent-first by depth and filters out nodes a
// parent's pass already cleaned.
func stillDirty(nodes []Node, dirty func(Node) bool) []Node {
	slices.SortStableFunc(nodes, func(a, b Node) int {
		return a.Depth() - b.Depth()
	})
	result := nodes[:0]
	for _, n := range nodes {
		if dirty(n) {
			result = append(result, n)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
