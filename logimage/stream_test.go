package logimage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemStreamReadWriteSeek(t *testing.T) {
	s := NewMemStream(make([]byte, 8))
	if err := s.Write([]byte{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if err := s.Seek(0); err != nil {
		t.Fatal(err)
	}
	got, err := s.ReadExact(4)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestMemStreamReadExactPastEndFails(t *testing.T) {
	s := NewMemStream([]byte{1, 2, 3})
	if _, err := s.ReadExact(4); err != ErrShortRead {
		t.Fatalf("got %v, want ErrShortRead", err)
	}
}

func TestMemStreamWriteGrowsBuffer(t *testing.T) {
	s := NewMemStream(nil)
	if err := s.Write([]byte{9, 9, 9}); err != nil {
		t.Fatal(err)
	}
	if len(s.Bytes()) != 3 {
		t.Fatalf("len = %d, want 3", len(s.Bytes()))
	}
}

func TestFileStreamRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stream.bin")

	ws, err := CreateFileStream(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := ws.Write([]byte{0xAA, 0xBB, 0xCC}); err != nil {
		t.Fatal(err)
	}
	ws.Close()

	rs, err := OpenFileStream(path)
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Close()
	if err := rs.Seek(1); err != nil {
		t.Fatal(err)
	}
	got, err := rs.ReadExact(2)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0xBB || got[1] != 0xCC {
		t.Fatalf("got %v", got)
	}
}

func TestFileStreamReadExactPastEndFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(path, []byte{1, 2}, 0o644); err != nil {
		t.Fatal(err)
	}
	rs, err := OpenFileStream(path)
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Close()
	if _, err := rs.ReadExact(4); err != ErrShortRead {
		t.Fatalf("got %v, want ErrShortRead", err)
	}
}
