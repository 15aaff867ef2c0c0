package wire

import (
	"testing"

	"github.com/anirudhraja/packetcodec/schema"
)

func TestSwapBytesRoundTrip(t *testing.T) {
	cases := []struct {
		width int
		value uint64
	}{
		{1, 0x2A},
		{2, 0x1234},
		{4, 0x12345678},
		{8, 0x0123456789ABCDEF},
	}
	for _, c := range cases {
		swapped := SwapBytes(c.value, c.width)
		back := SwapBytes(swapped, c.width)
		if back != c.value {
			t.Errorf("width %d: round trip failed: got %x, want %x", c.width, back, c.value)
		}
	}
}

func TestSwapBytes32(t *testing.T) {
	got := SwapBytes(0x12345678, 4)
	want := uint64(0x78563412)
	if got != want {
		t.Errorf("SwapBytes(0x12345678, 4) = %x, want %x", got, want)
	}
}

func TestNeedsSwapNativeNeverSwaps(t *testing.T) {
	if NeedsSwap(schema.Native) {
		t.Error("Native must never require a swap")
	}
}

func TestNeedsSwapMatchesHost(t *testing.T) {
	host := HostByteOrder()
	if NeedsSwap(host) {
		t.Errorf("declaring the host's own order (%v) should not need a swap", host)
	}
	other := schema.Big
	if host == schema.Big {
		other = schema.Little
	}
	if !NeedsSwap(other) {
		t.Errorf("declaring the non-host order (%v) should need a swap", other)
	}
}

func TestConvertUintIdentityWhenNoSwapNeeded(t *testing.T) {
	v := ConvertUint(0x1234, 2, schema.Native)
	if v != 0x1234 {
		t.Errorf("Native declared order must never swap, got %x", v)
	}
}
