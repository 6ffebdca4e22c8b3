package logimage

import "testing"

func TestRowBytesTable(t *testing.T) {
	cases := []struct {
		bps, packing, width, depth, want int
	}{
		{1, int(PackingTypeA), 40, 1, 8},
		{8, int(PackingTypeA), 5, 3, 16},
		{10, int(PackingTypeA), 8, 3, 32},
		{10, int(PackingFilledLSB), 9, 1, 12},
		{12, int(PackingTypeA), 8, 1, 12},
		{12, int(PackingFilledLSB), 4, 3, 24},
		{16, int(PackingFilledLSB), 4, 2, 16},
	}
	for _, c := range cases {
		got := RowBytes(c.bps, Packing(c.packing), c.width, c.depth)
		if got != c.want {
			t.Errorf("RowBytes(%d,%d,%d,%d) = %d, want %d", c.bps, c.packing, c.width, c.depth, got, c.want)
		}
	}
}

func TestElementMaxValue(t *testing.T) {
	e := LogImageElement{BitsPerSample: 10}
	if e.MaxValue() != 1023 {
		t.Fatalf("MaxValue = %d, want 1023", e.MaxValue())
	}
}

func TestVerboseToggle(t *testing.T) {
	SetVerbose(true)
	if !Verbose() {
		t.Fatal("expected Verbose() true")
	}
	SetVerbose(false)
	if Verbose() {
		t.Fatal("expected Verbose() false")
	}
}
