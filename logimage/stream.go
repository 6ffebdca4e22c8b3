package logimage

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Stream is the byte-I/O collaborator the core requires: seek, exact
// read, and write. It is the external interface spec.md §4.1 describes;
// this package provides two concrete adapters (FileStream, MemStream)
// so the module is usable without a caller-supplied implementation, but
// any io.ReadWriteSeeker-backed type can satisfy the contract instead.
type Stream interface {
	// Seek positions the stream at an absolute byte offset.
	Seek(offset int64) error
	// ReadExact reads exactly n bytes or returns ErrShortRead.
	ReadExact(n int) ([]byte, error)
	// Write writes p in full.
	Write(p []byte) error
	// Close releases any underlying resource.
	Close() error
}

// FileStream adapts an *os.File to Stream.
type FileStream struct {
	f *os.File
}

// NewFileStream wraps an already-opened file.
func NewFileStream(f *os.File) *FileStream {
	return &FileStream{f: f}
}

// OpenFileStream opens an existing file at path read-only. Use
// CreateFileStream to create a new file for writing.
func OpenFileStream(path string) (*FileStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "logimage: open %s", path)
	}
	return &FileStream{f: f}, nil
}

// CreateFileStream creates (or truncates) path for writing.
func CreateFileStream(path string) (*FileStream, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "logimage: create %s", path)
	}
	return &FileStream{f: f}, nil
}

func (s *FileStream) Seek(offset int64) error {
	_, err := s.f.Seek(offset, io.SeekStart)
	return errors.Wrap(err, "logimage: seek")
}

func (s *FileStream) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.f, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrShortRead
		}
		return nil, errors.Wrap(err, "logimage: read")
	}
	return buf, nil
}

func (s *FileStream) Write(p []byte) error {
	n, err := s.f.Write(p)
	if err != nil {
		return errors.Wrap(err, "logimage: write")
	}
	if n != len(p) {
		return ErrShortWrite
	}
	return nil
}

func (s *FileStream) Close() error {
	return s.f.Close()
}

// MemStream adapts an in-memory byte buffer to Stream, backing OpenMem
// and any caller that already has the whole container resident.
type MemStream struct {
	buf []byte
	pos int
}

// NewMemStream wraps buf. The returned stream does not copy buf.
func NewMemStream(buf []byte) *MemStream {
	return &MemStream{buf: buf}
}

func (s *MemStream) Seek(offset int64) error {
	if offset < 0 || offset > int64(len(s.buf)) {
		return errors.New("logimage: seek out of range")
	}
	s.pos = int(offset)
	return nil
}

func (s *MemStream) ReadExact(n int) ([]byte, error) {
	if s.pos+n > len(s.buf) {
		return nil, ErrShortRead
	}
	out := make([]byte, n)
	copy(out, s.buf[s.pos:s.pos+n])
	s.pos += n
	return out, nil
}

func (s *MemStream) Write(p []byte) error {
	if s.pos+len(p) > len(s.buf) {
		grown := make([]byte, s.pos+len(p))
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:], p)
	s.pos += len(p)
	return nil
}

func (s *MemStream) Close() error { return nil }

// Bytes returns the stream's current backing buffer.
func (s *MemStream) Bytes() []byte { return s.buf }
