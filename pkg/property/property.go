// Package property provides typed, observable widget properties with
// synchronous change notification.
//
// Property descriptors are declared once per owner type, typically in
// package-level vars. Change subscribers are class-level: they fire for a
// property change on any instance. Subscribers live in an explicit
// Subscriptions registry built at startup and passed by reference, so
// tests can construct isolated registries.
package property

import "fmt"

// Prop identifies a registered property. The zero value is not a valid
// property. Props are identity-comparable: two Props are equal only if
// they come from the same New call.
type Prop struct {
	id uint32
}

var (
	nextID    uint32
	propNames = map[Prop]string{}
)

// New declares a property for the given owner type. Declaration is
// expected to happen at package initialization time, before any widget
// instances exist; it is not safe for concurrent use.
func New(owner, name string) Prop {
	nextID++
	p := Prop{id: nextID}
	propNames[p] = owner + "." + name
	return p
}

// IsValid reports whether the property was obtained from New.
func (p Prop) IsValid() bool {
	return p.id != 0
}

func (p Prop) String() string {
	if name, ok := propNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Prop(%d)", p.id)
}

// ChangedEvent describes a single property value transition.
type ChangedEvent struct {
	// Sender is the widget whose property changed.
	Sender any
	// Property is the changed property.
	Property Prop
	// Old is the previous value (nil when the property was unset).
	Old any
	// New is the value after the change.
	New any
}

// Handler receives property change events.
type Handler func(ChangedEvent)

// Subscriptions is a class-level change subscriber registry. A handler
// subscribed for a property fires whenever that property changes on any
// store bound to this registry.
type Subscriptions struct {
	handlers map[Prop][]Handler
}

// NewSubscriptions creates an empty registry.
func NewSubscriptions() *Subscriptions {
	return &Subscriptions{handlers: make(map[Prop][]Handler)}
}

// Subscribe registers a handler for changes to the given property.
func (s *Subscriptions) Subscribe(p Prop, h Handler) {
	if !p.IsValid() || h == nil {
		return
	}
	s.handlers[p] = append(s.handlers[p], h)
}

func (s *Subscriptions) notify(e ChangedEvent) {
	for _, h := range s.handlers[e.Property] {
		h(e)
	}
}

// Store holds per-instance property values and publishes changes to the
// Subscriptions registry it was bound with. Values must be comparable
// with == (numbers, strings, enums, pointers).
type Store struct {
	values map[Prop]any
	subs   *Subscriptions
}

// NewStore creates a value store bound to the given registry. A nil
// registry is allowed; changes are then unobserved.
func NewStore(subs *Subscriptions) *Store {
	return &Store{values: make(map[Prop]any), subs: subs}
}

// Value returns the current value of the property, or nil if unset.
func (s *Store) Value(p Prop) any {
	return s.values[p]
}

// Set updates the property value on behalf of sender. If the value
// actually changes, all class-level subscribers fire synchronously before
// Set returns. Setting an equal value is a no-op.
func (s *Store) Set(sender any, p Prop, value any) {
	if !p.IsValid() {
		return
	}
	old, had := s.values[p]
	if had && old == value {
		return
	}
	s.values[p] = value
	if s.subs != nil {
		s.subs.notify(ChangedEvent{Sender: sender, Property: p, Old: old, New: value})
	}
}
