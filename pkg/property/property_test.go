package property

import "testing"

func TestSetFiresSubscriberOnce(t *testing.T) {
	subs := NewSubscriptions()
	prop := New("Test", "Value")
	store := NewStore(subs)

	var events []ChangedEvent
	subs.Subscribe(prop, func(e ChangedEvent) {
		events = append(events, e)
	})

	sender := &struct{}{}
	store.Set(sender, prop, 42)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Sender != sender || e.Property != prop {
		t.Fatalf("unexpected event identity: %+v", e)
	}
	if e.Old != nil || e.New != 42 {
		t.Fatalf("unexpected old/new: %v/%v", e.Old, e.New)
	}
}

func TestSetEqualValueIsNoOp(t *testing.T) {
	subs := NewSubscriptions()
	prop := New("Test", "Value")
	store := NewStore(subs)

	fired := 0
	subs.Subscribe(prop, func(ChangedEvent) { fired++ })

	store.Set(nil, prop, "a")
	store.Set(nil, prop, "a")
	if fired != 1 {
		t.Fatalf("expected 1 notification, got %d", fired)
	}
	store.Set(nil, prop, "b")
	if fired != 2 {
		t.Fatalf("expected 2 notifications, got %d", fired)
	}
}

func TestSubscriptionsAreIsolated(t *testing.T) {
	prop := New("Test", "Value")
	first := NewSubscriptions()
	second := NewSubscriptions()

	fired := 0
	first.Subscribe(prop, func(ChangedEvent) { fired++ })

	store := NewStore(second)
	store.Set(nil, prop, 1)
	if fired != 0 {
		t.Fatal("subscriber on a different registry must not fire")
	}
}

func TestUnboundStoreIsSilent(t *testing.T) {
	prop := New("Test", "Value")
	store := NewStore(nil)
	store.Set(nil, prop, 1)
	if store.Value(prop) != 1 {
		t.Fatalf("expected stored value, got %v", store.Value(prop))
	}
}

func TestPropIdentity(t *testing.T) {
	a := New("Owner", "Name")
	b := New("Owner", "Name")
	if a == b {
		t.Fatal("distinct declarations must not compare equal")
	}
	if !a.IsValid() || (Prop{}).IsValid() {
		t.Fatal("validity must track registration")
	}
	if a.String() != "Owner.Name" {
		t.Fatalf("unexpected name: %q", a.String())
	}
}

func TestValueUnsetReturnsNil(t *testing.T) {
	prop := New("Test", "Value")
	store := NewStore(NewSubscriptions())
	if store.Value(prop) != nil {
		t.Fatal("unset property should read as nil")
	}
}
