package layout

import "slices"

// NodeList is an ordered sequence of nodes. It backs the logical and
// visual child trees of container widgets, which mutate it only in
// response to child-collection change notifications.
//
// Range operations are true O(k) block operations, not repeated
// single-item edits; container rebuilds with large child counts depend
// on this.
type NodeList struct {
	items []Node
}

// Len returns the number of nodes in the list.
func (l *NodeList) Len() int {
	return len(l.items)
}

// At returns the node at the given index.
func (l *NodeList) At(index int) Node {
	return l.items[index]
}

// Items returns a snapshot copy of the list.
func (l *NodeList) Items() []Node {
	out := make([]Node, len(l.items))
	copy(out, l.items)
	return out
}

// IndexOf returns the index of the first occurrence of n, or -1.
func (l *NodeList) IndexOf(n Node) int {
	return slices.Index(l.items, n)
}

// Insert places a single node at the given index.
func (l *NodeList) Insert(index int, n Node) {
	l.items = slices.Insert(l.items, index, n)
}

// InsertRange places the nodes at the given index, preserving their
// relative order.
func (l *NodeList) InsertRange(index int, nodes []Node) {
	l.items = slices.Insert(l.items, index, nodes...)
}

// RemoveAt removes the node at the given index.
func (l *NodeList) RemoveAt(index int) {
	l.items = slices.Delete(l.items, index, index+1)
}

// RemoveAll removes the given nodes by identity. Each entry removes at
// most one occurrence, so duplicate handles are removed once per entry.
func (l *NodeList) RemoveAll(nodes []Node) {
	if len(nodes) == 0 {
		return
	}
	pending := make(map[Node]int, len(nodes))
	for _, n := range nodes {
		pending[n]++
	}
	kept := l.items[:0]
	for _, item := range l.items {
		if count := pending[item]; count > 0 {
			pending[item] = count - 1
			continue
		}
		kept = append(kept, item)
	}
	// Release trailing references so removed nodes are collectable.
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = nil
	}
	l.items = kept
}

// Move relocates a single node from oldIndex to newIndex. The destination
// index is expressed against the list as observed before the move.
func (l *NodeList) Move(oldIndex, newIndex int) {
	l.MoveRange(oldIndex, 1, newIndex)
}

// MoveRange relocates the contiguous block of count nodes starting at
// oldIndex to newIndex, preserving the relative order within the block.
// The destination index is expressed against the list as observed before
// the move.
func (l *NodeList) MoveRange(oldIndex, count, newIndex int) {
	if count == 0 || oldIndex == newIndex {
		return
	}
	block := make([]Node, count)
	copy(block, l.items[oldIndex:oldIndex+count])
	l.items = slices.Delete(l.items, oldIndex, oldIndex+count)
	dest := newIndex
	if newIndex > oldIndex {
		dest = newIndex - count + 1
	}
	l.items = slices.Insert(l.items, dest, block...)
}

// Set overwrites the entry at the given index.
func (l *NodeList) Set(index int, n Node) {
	l.items[index] = n
}
