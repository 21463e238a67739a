package layout

import "github.com/go-slate/slate/pkg/property"

// Invalidation selects which cached layout result a relay marks stale.
type Invalidation int

const (
	// MeasureInvalidation invalidates the target's measurement.
	MeasureInvalidation Invalidation = iota
	// ArrangeInvalidation invalidates the target's arrangement only.
	ArrangeInvalidation
)

func (i Invalidation) String() string {
	if i == ArrangeInvalidation {
		return "arrange"
	}
	return "measure"
}

// RelayOutcome enumerates the possible results of relaying a child
// property change to its parent. Only RelayInvalidated performs an
// invalidation; the other outcomes are deliberate no-ops.
type RelayOutcome int

const (
	// RelayInvalidated means the parent implements the registered
	// capability and was invalidated.
	RelayInvalidated RelayOutcome = iota
	// RelayNoParent means the originating node currently has no parent.
	RelayNoParent
	// RelayNotCapable means the parent does not implement the registered
	// capability type.
	RelayNotCapable
)

func (o RelayOutcome) String() string {
	switch o {
	case RelayInvalidated:
		return "invalidated"
	case RelayNoParent:
		return "no parent"
	default:
		return "not capable"
	}
}

// AffectsParentMeasure registers properties whose change on any child
// invalidates the measurement of the child's current parent, provided the
// parent is a T. Registration is expected once per capability type, at
// startup, into the registry that widget stores publish to.
func AffectsParentMeasure[T any](subs *property.Subscriptions, props ...property.Prop) {
	for _, p := range props {
		subs.Subscribe(p, func(e property.ChangedEvent) {
			RelayToParent[T](e.Sender, MeasureInvalidation)
		})
	}
}

// AffectsParentArrange registers properties whose change on any child
// invalidates the arrangement of the child's current parent, provided the
// parent is a T. Measurement is not touched.
func AffectsParentArrange[T any](subs *property.Subscriptions, props ...property.Prop) {
	for _, p := range props {
		subs.Subscribe(p, func(e property.ChangedEvent) {
			RelayToParent[T](e.Sender, ArrangeInvalidation)
		})
	}
}

// AffectsRender registers properties whose change causes the originating
// node itself to be redrawn.
func AffectsRender(subs *property.Subscriptions, props ...property.Prop) {
	for _, p := range props {
		subs.Subscribe(p, func(e property.ChangedEvent) {
			if node, ok := e.Sender.(Node); ok {
				node.InvalidateRender()
			}
		})
	}
}

// RelayToParent walks exactly one level up from the sender and applies
// the invalidation to the parent when it implements capability T. It
// never fails: a missing parent and a parent lacking the capability are
// distinct, silent outcomes. The parent's own propagation upward, if any,
// is a separately registered relay.
func RelayToParent[T any](sender any, kind Invalidation) RelayOutcome {
	node, ok := sender.(Node)
	if !ok {
		return RelayNoParent
	}
	parent := node.Parent()
	if parent == nil {
		return RelayNoParent
	}
	if _, ok := parent.(T); !ok {
		return RelayNotCapable
	}
	switch kind {
	case ArrangeInvalidation:
		parent.InvalidateArrange()
	default:
		parent.InvalidateMeasure()
	}
	return RelayInvalidated
}
