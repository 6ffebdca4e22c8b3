package byteorder

import "testing"

func TestSwap32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x12345678, 0xFFFFFFFF, 0xFFC00000} {
		for _, isMSB := range []bool{true, false} {
			got := Swap32(Swap32(v, isMSB), isMSB)
			if got != v {
				t.Errorf("Swap32 twice(%#x, isMSB=%v) = %#x, want %#x", v, isMSB, got, v)
			}
		}
	}
}

func TestSwap16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x1234, 0xFFFF, 0x8000} {
		for _, isMSB := range []bool{true, false} {
			got := Swap16(Swap16(v, isMSB), isMSB)
			if got != v {
				t.Errorf("Swap16 twice(%#x, isMSB=%v) = %#x, want %#x", v, isMSB, got, v)
			}
		}
	}
}

func TestSwap32MatchesHostOrder(t *testing.T) {
	// When isMSB matches the host's native order, Swap32 is a no-op.
	v := uint32(0x01020304)
	if Swap32(v, HostIsBigEndian()) != v {
		t.Errorf("Swap32 should be identity when isMSB matches host order")
	}
	if HostIsBigEndian() {
		return
	}
	if Swap32(v, true) != 0x04030201 {
		t.Errorf("Swap32(%#x, true) on little-endian host = %#x, want 0x04030201", v, Swap32(v, true))
	}
}

func FuzzSwap32RoundTrip(f *testing.F) {
	f.Add(uint32(0), false)
	f.Add(uint32(0xFFFFFFFF), true)
	f.Fuzz(func(t *testing.T, v uint32, isMSB bool) {
		if got := Swap32(Swap32(v, isMSB), isMSB); got != v {
			t.Errorf("Swap32 round-trip failed for %#x isMSB=%v: got %#x", v, isMSB, got)
		}
	})
}
