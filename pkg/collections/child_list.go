// Package collections provides the observable ordered child collection
// consumed by container widgets.
//
// Every mutating call emits exactly one change notification, synchronously,
// before the call returns. A caller observing derived structures right
// after a mutation therefore always sees them already synchronized.
// The collection is single-writer by convention; there is no locking.
package collections

import (
	"slices"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/layout"
)

// Action identifies the kind of structural change.
type Action int

const (
	// ActionAdd means items were inserted at NewIndex.
	ActionAdd Action = iota
	// ActionRemove means OldItems were removed; OldIndex is the index of
	// the first removed item, or -1 for identity-based bulk removal.
	ActionRemove
	// ActionMove means the block of OldItems moved from OldIndex to NewIndex.
	ActionMove
	// ActionReplace means the entry at OldIndex was overwritten.
	ActionReplace
	// ActionReset means the collection was cleared without item detail.
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionMove:
		return "move"
	case ActionReplace:
		return "replace"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes the net structural effect of one mutating call. Index
// fields not meaningful for the action are -1. Indices are expressed
// against the collection's state after the mutation for inserts and
// before the mutation for removals and moves.
type Change struct {
	Action   Action
	NewItems []layout.Node
	OldItems []layout.Node
	NewIndex int
	OldIndex int
}

// Listener receives change notifications.
type Listener func(Change)

// ChildList is an ordered, index-addressable, observable sequence of
// widget handles. Membership is uniqueness-free: duplicates are a caller
// concern. The list holds non-owning references.
type ChildList struct {
	items    []layout.Node
	listener Listener
}

// NewChildList creates an empty collection.
func NewChildList() *ChildList {
	return &ChildList{}
}

// SetListener registers the single change listener, replacing any
// previous one. The owning container registers itself here.
func (l *ChildList) SetListener(fn Listener) {
	l.listener = fn
}

// Len returns the number of items.
func (l *ChildList) Len() int {
	return len(l.items)
}

// At returns the item at the given index.
func (l *ChildList) At(index int) layout.Node {
	return l.items[index]
}

// Items returns a snapshot copy of the collection.
func (l *ChildList) Items() []layout.Node {
	out := make([]layout.Node, len(l.items))
	copy(out, l.items)
	return out
}

// IndexOf returns the index of the first occurrence of item, or -1.
func (l *ChildList) IndexOf(item layout.Node) int {
	return slices.Index(l.items, item)
}

func (l *ChildList) notify(c Change) {
	if l.listener != nil {
		l.listener(c)
	}
}

// Add appends a single item.
func (l *ChildList) Add(item layout.Node) {
	l.items = append(l.items, item)
	l.notify(Change{
		Action:   ActionAdd,
		NewItems: []layout.Node{item},
		NewIndex: len(l.items) - 1,
		OldIndex: -1,
	})
}

// AddRange appends the items in order. Appending nothing is a no-op and
// emits no notification.
func (l *ChildList) AddRange(items []layout.Node) {
	if len(items) == 0 {
		return
	}
	index := len(l.items)
	l.items = append(l.items, items...)
	l.notify(Change{
		Action:   ActionAdd,
		NewItems: slices.Clone(items),
		NewIndex: index,
		OldIndex: -1,
	})
}

// Insert places a single item at the given index. The index may equal
// Len, which appends.
func (l *ChildList) Insert(index int, item layout.Node) error {
	if index < 0 || index > len(l.items) {
		return errors.OutOfRange("collections.Insert", index, len(l.items)+1)
	}
	l.items = slices.Insert(l.items, index, item)
	l.notify(Change{
		Action:   ActionAdd,
		NewItems: []layout.Node{item},
		NewIndex: index,
		OldIndex: -1,
	})
	return nil
}

// InsertRange places the items at the given index, preserving their
// relative order.
func (l *ChildList) InsertRange(index int, items []layout.Node) error {
	if index < 0 || index > len(l.items) {
		return errors.OutOfRange("collections.InsertRange", index, len(l.items)+1)
	}
	if len(items) == 0 {
		return nil
	}
	l.items = slices.Insert(l.items, index, items...)
	l.notify(Change{
		Action:   ActionAdd,
		NewItems: slices.Clone(items),
		NewIndex: index,
		OldIndex: -1,
	})
	return nil
}

// RemoveAt removes the item at the given index.
func (l *ChildList) RemoveAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return errors.OutOfRange("collections.RemoveAt", index, len(l.items))
	}
	item := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	l.notify(Change{
		Action:   ActionRemove,
		OldItems: []layout.Node{item},
		NewIndex: -1,
		OldIndex: index,
	})
	return nil
}

// Remove removes the first occurrence of item by identity. Returns false,
// with no notification, when the item is not present.
func (l *ChildList) Remove(item layout.Node) bool {
	index := l.IndexOf(item)
	if index < 0 {
		return false
	}
	// Index is known valid here.
	_ = l.RemoveAt(index)
	return true
}

// RemoveAll removes the given items by identity, one occurrence per
// entry, emitting a single bulk notification. Items not present are
// skipped. Removing nothing emits no notification.
func (l *ChildList) RemoveAll(items []layout.Node) {
	if len(items) == 0 {
		return
	}
	pending := make(map[layout.Node]int, len(items))
	for _, item := range items {
		pending[item]++
	}
	removed := make([]layout.Node, 0, len(items))
	firstIndex := -1
	kept := l.items[:0]
	for i, item := range l.items {
		if count := pending[item]; count > 0 {
			pending[item] = count - 1
			removed = append(removed, item)
			if firstIndex < 0 {
				firstIndex = i
			}
			continue
		}
		kept = append(kept, item)
	}
	if len(removed) == 0 {
		return
	}
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = nil
	}
	l.items = kept
	l.notify(Change{
		Action:   ActionRemove,
		OldItems: removed,
		NewIndex: -1,
		OldIndex: firstIndex,
	})
}

// Move relocates the contiguous block of count items starting at oldIndex
// to newIndex, preserving the relative order within the block. newIndex
// is expressed against the collection as observed before the move.
func (l *ChildList) Move(oldIndex, count, newIndex int) error {
	length := len(l.items)
	if oldIndex < 0 || oldIndex >= length {
		return errors.OutOfRange("collections.Move", oldIndex, length)
	}
	if count < 1 || oldIndex+count > length {
		return errors.OutOfRange("collections.Move", oldIndex+count, length+1)
	}
	if newIndex < 0 || newIndex >= length {
		return errors.OutOfRange("collections.Move", newIndex, length)
	}
	if oldIndex == newIndex {
		return nil
	}
	block := make([]layout.Node, count)
	copy(block, l.items[oldIndex:oldIndex+count])
	l.items = slices.Delete(l.items, oldIndex, oldIndex+count)
	dest := newIndex
	if newIndex > oldIndex {
		dest = newIndex - count + 1
	}
	l.items = slices.Insert(l.items, dest, block...)
	l.notify(Change{
		Action:   ActionMove,
		OldItems: block,
		NewIndex: newIndex,
		OldIndex: oldIndex,
	})
	return nil
}

// Replace overwrites the entry at the given index.
func (l *ChildList) Replace(index int, item layout.Node) error {
	if index < 0 || index >= len(l.items) {
		return errors.OutOfRange("collections.Replace", index, len(l.items))
	}
	old := l.items[index]
	if old == item {
		return nil
	}
	l.items[index] = item
	l.notify(Change{
		Action:   ActionReplace,
		NewItems: []layout.Node{item},
		OldItems: []layout.Node{old},
		NewIndex: index,
		OldIndex: index,
	})
	return nil
}

// Clear empties the collection and emits a Reset notification carrying no
// item detail. Clearing an empty collection is a no-op.
func (l *ChildList) Clear() {
	if len(l.items) == 0 {
		return
	}
	l.items = nil
	l.notify(Change{Action: ActionReset, NewIndex: -1, OldIndex: -1})
}
