package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOutOfRange(t *testing.T) {
	err := OutOfRange("collections.Insert", 7, 3)
	if err.Kind != KindOutOfRange {
		t.Fatalf("expected out-of-range kind, got %v", err.Kind)
	}
	msg := err.Error()
	if !strings.Contains(msg, "collections.Insert") || !strings.Contains(msg, "7") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestUnsupportedReset(t *testing.T) {
	err := UnsupportedReset("widgets.Panel")
	if err.Kind != KindUnsupportedReset {
		t.Fatalf("expected unsupported-reset kind, got %v", err.Kind)
	}
}

func TestIsKind(t *testing.T) {
	err := OutOfRange("op", 1, 1)
	if !IsKind(err, KindOutOfRange) {
		t.Fatal("expected IsKind to match")
	}
	if IsKind(err, KindUnsupportedReset) {
		t.Fatal("expected IsKind to reject other kinds")
	}
	wrapped := fmt.Errorf("context: %w", err)
	if !IsKind(wrapped, KindOutOfRange) {
		t.Fatal("expected IsKind to unwrap")
	}
	if IsKind(errors.New("plain"), KindOutOfRange) {
		t.Fatal("expected IsKind to reject plain errors")
	}
}

func TestReportUsesInstalledHandler(t *testing.T) {
	var got *Error
	SetHandler(handlerFunc(func(err *Error) { got = err }))
	defer SetHandler(nil)

	err := Config("theme.Parse", errors.New("bad yaml"))
	Report(err)
	if got != err {
		t.Fatalf("expected handler to receive the error, got %v", got)
	}
}

type handlerFunc func(*Error)

func (f handlerFunc) HandleError(err *Error) {
	f(err)
}
