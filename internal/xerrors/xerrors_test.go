package xerrors

import (
	"errors"
	"testing"
)

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(SyntaxError, cause, "parsing query")

	if err.Kind != SyntaxError {
		t.Errorf("Kind = %v, want SyntaxError", err.Kind)
	}
	if !errors.Is(err, err) {
		t.Error("errors.Is(err, err) = false, want true")
	}

	kind, ok := KindOf(err)
	if !ok || kind != SyntaxError {
		t.Errorf("KindOf(err) = (%v, %v), want (SyntaxError, true)", kind, ok)
	}
}

func TestKindOfNonMatchingError(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf(plain error) = true, want false")
	}
}

func TestNewFormatsMessage(t *testing.T) {
	err := New(SemanticError, "column %q not found", "foo")
	if got := err.Error(); got == "" {
		t.Error("Error() returned empty string")
	}
}
