package bitcodec

import (
	"math"
	"testing"

	"github.com/aakash0910-codes/logimage/internal/byteorder"
)

func TestRowBytesTable(t *testing.T) {
	cases := []struct {
		bps, packing, width, depth, want int
	}{
		{1, 1, 32, 1, 4},
		{1, 1, 33, 1, 8},
		{8, 1, 4, 1, 4},
		{8, 1, 5, 1, 8},
		{10, 0, 32, 3, ceilDiv(32*3*10, 32) * 4},
		{10, 1, 3, 1, 4},
		{10, 1, 4, 1, 8},
		{12, 0, 32, 1, ceilDiv(32*12, 32) * 4},
		{12, 1, 4, 1, 8},
		{16, 1, 4, 1, 8},
	}
	for _, c := range cases {
		got := RowBytes(c.bps, c.packing, c.width, c.depth)
		if got != c.want {
			t.Errorf("RowBytes(%d,%d,%d,%d) = %d, want %d", c.bps, c.packing, c.width, c.depth, got, c.want)
		}
	}
}

func TestUnpack10FilledScenarioS1(t *testing.T) {
	// 2x1 RGB 10-bit filled, packing=1, big-endian: pixels (1023,0,0)
	// and (0,1023,0) encode as one u32 per pixel: 0xFFC00000, 0x003FF000.
	row := make([]byte, 8)
	row[0], row[1], row[2], row[3] = 0xFF, 0xC0, 0x00, 0x00
	row[4], row[5], row[6], row[7] = 0x00, 0x3F, 0xF0, 0x00
	out := Unpack10Filled(row, true, 1, false, 6)
	want := []float32{1, 0, 0, 0, 1, 0}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 1e-6 {
			t.Fatalf("sample %d = %v, want %v (full=%v)", i, out[i], want[i], out)
		}
	}
}

func TestUnpack16LittleEndianScenarioS2(t *testing.T) {
	// 1x1 RGBA 16-bit little-endian, codes 0x8000,0x4000,0x2000,0xFFFF.
	row := []byte{0x00, 0x80, 0x00, 0x40, 0x00, 0x20, 0xFF, 0xFF}
	out := Unpack16Row(row, false, 4)
	want := []float32{0.50004, 0.25002, 0.12501, 1.0}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 1e-4 {
			t.Errorf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestUnpack10PackedMatchesReferenceEncoder(t *testing.T) {
	// Packed and filled layouts place bits differently, so this does not
	// go through Pack10Filled: it round trips through an independent
	// reference encoder for the packed layout and checks packed decode
	// recovers every quantized sample.
	samples := []float32{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0, 0.33, 0.66}
	row := packTenPackedReference(samples, false)
	out := Unpack10Packed(row, false, len(samples))
	for i, f := range samples {
		want := float32(floatToCode(f, 1023)) / 1023.0
		if math.Abs(float64(out[i]-want)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, out[i], want)
		}
	}
}

// packTenPackedReference is a reference encoder for the type-A packed
// 10-bit layout, independent of Unpack10Packed, used only to exercise
// the decoder under test with a known-correct bitstream.
func packTenPackedReference(samples []float32, isMSB bool) []byte {
	bitsTotal := len(samples) * 10
	words := ceilDiv(bitsTotal, 32)
	row := make([]byte, words*4)
	bitPos := 0
	for _, f := range samples {
		code := uint64(floatToCode(f, 1023))
		for b := 0; b < 10; b++ {
			if code&(1<<uint(b)) != 0 {
				globalBit := bitPos + b
				wordIdx := globalBit / 32
				bitInWord := globalBit % 32
				cur := loadU32(row[wordIdx*4:])
				cur |= 1 << uint(bitInWord)
				storeU32(row[wordIdx*4:], cur)
			}
		}
		bitPos += 10
	}
	// Each word must appear on disk already byte-swapped per isMSB,
	// matching what Unpack10Packed expects to undo.
	for w := 0; w < words; w++ {
		v := loadU32(row[w*4:])
		storeU32(row[w*4:], byteorder.Swap32(v, isMSB))
	}
	return row
}

func TestUnpack12FilledPackingVariants(t *testing.T) {
	row := make([]byte, 4)
	storeU16(row[0:], 0xABC0) // upper 12 bits set: 0xABC
	storeU16(row[2:], 0x0ABC) // lower 12 bits set: 0xABC
	out1 := Unpack12Filled(row, hostNativeIsMSB(), 1, 1)
	out2 := Unpack12Filled(row[2:], hostNativeIsMSB(), 2, 1)
	want := float32(0xABC) / 4095.0
	if math.Abs(float64(out1[0]-want)) > 1e-6 {
		t.Errorf("packing=1: got %v want %v", out1[0], want)
	}
	if math.Abs(float64(out2[0]-want)) > 1e-6 {
		t.Errorf("packing=2: got %v want %v", out2[0], want)
	}
}

func TestPackUnpack8RoundTrip(t *testing.T) {
	samples := []float32{0, 0.25, 0.5, 0.75, 1.0}
	row := Pack8Row(samples)
	out := Unpack8Row(row, len(samples))
	for i, f := range samples {
		want := float32(floatToCode(f, 255)) / 255.0
		if math.Abs(float64(out[i]-want)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v (f=%v)", i, out[i], want, f)
		}
	}
}

func TestPackUnpack16RoundTrip(t *testing.T) {
	samples := []float32{0, 0.1, 0.5, 0.9, 1.0}
	for _, isMSB := range []bool{true, false} {
		row := Pack16Row(samples, isMSB)
		out := Unpack16Row(row, isMSB, len(samples))
		for i, f := range samples {
			want := float32(floatToCode(f, 65535)) / 65535.0
			if math.Abs(float64(out[i]-want)) > 1e-5 {
				t.Errorf("isMSB=%v sample %d = %v, want %v (f=%v)", isMSB, i, out[i], want, f)
			}
		}
	}
}

func TestPackUnpack10FilledRoundTrip(t *testing.T) {
	samples := []float32{0, 0.1, 0.5, 0.9, 1.0, 0.33}
	for _, isMSB := range []bool{true, false} {
		row := Pack10Filled(samples, isMSB)
		out := Unpack10Filled(row, isMSB, 1, false, len(samples))
		for i, f := range samples {
			want := float32(floatToCode(f, 1023)) / 1023.0
			if math.Abs(float64(out[i]-want)) > 1e-6 {
				t.Errorf("isMSB=%v sample %d = %v, want %v", isMSB, i, out[i], want)
			}
		}
	}
}

func TestPackUnpack12FilledRoundTrip(t *testing.T) {
	samples := []float32{0, 0.1, 0.5, 0.9, 1.0, 0.33}
	for _, isMSB := range []bool{true, false} {
		row := Pack12Filled(samples, isMSB)
		out := Unpack12Filled(row, isMSB, 1, len(samples))
		for i, f := range samples {
			want := float32(floatToCode(f, 4095)) / 4095.0
			if math.Abs(float64(out[i]-want)) > 1e-6 {
				t.Errorf("isMSB=%v sample %d = %v, want %v", isMSB, i, out[i], want)
			}
		}
	}
}

func FuzzUnpack10Packed(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0}, false, 3)
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF}, true, 3)
	f.Fuzz(func(t *testing.T, row []byte, isMSB bool, n int) {
		if n < 0 || n > 64 {
			return
		}
		needed := ceilDiv(n*10, 32) * 4
		if len(row) < needed {
			return
		}
		out := Unpack10Packed(row[:needed], isMSB, n)
		for _, v := range out {
			if v < 0 || v > 1 {
				t.Errorf("sample out of range: %v", v)
			}
		}
	})
}

func hostNativeIsMSB() bool {
	// Unpack12Filled applies byteorder.Swap16 internally; passing the
	// host's own order as isMSB makes the swap a no-op so the test can
	// reason about the raw bytes written directly into the row.
	return byteorder.HostIsBigEndian()
}
