package wire

import (
	"strings"
	"testing"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	a := underflow(4, 2, 0)
	b := underflow(8, 1, 3)
	if !a.Is(b) {
		t.Error("two underflow errors of different magnitude should still match by kind")
	}
	c := invalidWidth("bad")
	if a.Is(c) {
		t.Error("underflow should not match invalid width")
	}
}

func TestErrorMessageIncludesPosition(t *testing.T) {
	err := underflow(4, 2, 6)
	msg := err.Error()
	if msg == "" {
		t.Error("expected non-empty error message")
	}
	if !strings.Contains(msg, "position 6") {
		t.Errorf("message %q does not include the position", msg)
	}
}
