package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "sheet.write",
		Kind: KindExecution,
		Path: "neg-add-sheet.html",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindExecution {
		t.Fatalf("expected kind %s", KindExecution)
	}

	msg := err.Error()
	for _, want := range []string{"sheet.write", "execution", "path=neg-add-sheet.html", "root"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestIsKindForOpError(t *testing.T) {
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
	}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match op error")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected IsKind to reject plain errors")
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestInvalidInputWrapsSentinel(t *testing.T) {
	err := invalidInput("cube.from_side", "side must be positive, got %d", -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected invalid_input kind")
	}
	if !strings.Contains(err.Error(), "got -1") {
		t.Fatalf("expected detail in %q", err.Error())
	}
}
