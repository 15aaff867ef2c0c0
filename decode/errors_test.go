package decode

import (
	"errors"
	"testing"

	"github.com/anirudhraja/packetcodec/wire"
)

func TestWrapReadErrPreservesUnderflowContext(t *testing.T) {
	we := &wire.Error{Kind: wire.ErrUnderflow, Needed: 4, Available: 2, Position: 3}
	err := wrapReadErr("field1", we)
	var derr *Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if derr.Kind != KindUnderflow || derr.Field != "field1" || derr.Needed != 4 || derr.Available != 2 || derr.Position != 3 {
		t.Errorf("unexpected error: %+v", derr)
	}
	if !errors.Is(err, we) {
		t.Error("expected wrapped error to unwrap to the original wire error")
	}
}

func TestErrorIsMatchesByKind(t *testing.T) {
	a := &Error{Kind: KindConstraintViolation}
	b := &Error{Kind: KindConstraintViolation, Field: "other"}
	if !errors.Is(a, b) {
		t.Error("errors with the same Kind should match via Is")
	}
	c := &Error{Kind: KindUnknownPacket}
	if errors.Is(a, c) {
		t.Error("errors with different Kind should not match")
	}
}
