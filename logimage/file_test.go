package logimage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsDpxMagicBothByteOrders(t *testing.T) {
	be := []byte{0x53, 0x44, 0x50, 0x58}
	le := []byte{0x58, 0x50, 0x44, 0x53}
	if !IsDpxMagic(be) || !IsDpxMagic(le) {
		t.Fatal("IsDpxMagic should accept both byte orders")
	}
	if IsDpxMagic([]byte{0, 0, 0, 0}) {
		t.Fatal("IsDpxMagic false positive")
	}
}

func TestIsCineonMagicBothByteOrders(t *testing.T) {
	be := []byte{0xd7, 0x5f, 0x2a, 0x80}
	le := []byte{0x80, 0x2a, 0x5f, 0xd7}
	if !IsCineonMagic(be) || !IsCineonMagic(le) {
		t.Fatal("IsCineonMagic should accept both byte orders")
	}
}

func TestOpenRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.dpx")
	if err := os.WriteFile(path, []byte{0, 0, 0, 0, 0, 0, 0, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path, Header{}); err != ErrNotACineonOrDPXFile {
		t.Fatalf("got %v, want ErrNotACineonOrDPXFile", err)
	}
}

func TestOpenDetectsByteOrderFromMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swapped.dpx")
	// DPX magic written byte-swapped relative to its canonical orientation,
	// i.e. a little-endian file.
	swapped := []byte{0x58, 0x50, 0x44, 0x53}
	if err := os.WriteFile(path, swapped, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Open(path, Header{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	if f.SrcFormat != FormatDPX {
		t.Fatalf("SrcFormat = %v, want DPX", f.SrcFormat)
	}
	if f.IsMSB {
		t.Fatal("expected IsMSB false for byte-swapped (little-endian) magic")
	}
}

func TestOpenMemUsesCallerBuffer(t *testing.T) {
	buf := []byte{0x53, 0x44, 0x50, 0x58, 1, 2, 3, 4}
	f, err := OpenMem(buf, Header{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("OpenMem: %v", err)
	}
	defer f.Close()
	if f.SrcFormat != FormatDPX || !f.IsMSB {
		t.Fatalf("SrcFormat=%v IsMSB=%v, want DPX/true", f.SrcFormat, f.IsMSB)
	}
}

func TestCreateCineonDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cin")
	f, err := Create(path, CreateConfig{IsCineon: true, Width: 4, Height: 4, BitsPerSample: 10, HasAlpha: false})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if f.ReferenceBlack != DefaultCineonReferenceBlack || f.ReferenceWhite != DefaultCineonReferenceWhite {
		t.Fatalf("refBlack/refWhite = %d/%d, want defaults", f.ReferenceBlack, f.ReferenceWhite)
	}
	if f.Element[0].Packing != PackingFilledLSB {
		t.Fatalf("packing = %v, want FilledLSB", f.Element[0].Packing)
	}
	if f.Element[0].Transfer != TransferPrintingDensity {
		t.Fatalf("transfer = %v, want PrintingDensity", f.Element[0].Transfer)
	}
	if f.Element[0].Descriptor != DescriptorRGB {
		t.Fatalf("descriptor = %v, want RGB", f.Element[0].Descriptor)
	}
}

func TestCreateRejectsInvertedReferenceRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.dpx")
	_, err := Create(path, CreateConfig{Width: 1, Height: 1, BitsPerSample: 10, ReferenceBlack: 900, ReferenceWhite: 100})
	if err != ErrInvalidReferenceRange {
		t.Fatalf("got %v, want ErrInvalidReferenceRange", err)
	}
}

func TestGetSizeOnNilFile(t *testing.T) {
	var f *LogImageFile
	if _, _, _, err := f.GetSize(); err != ErrInvalidFile {
		t.Fatalf("got %v, want ErrInvalidFile", err)
	}
}
