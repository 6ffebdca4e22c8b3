package logimage

import (
	"github.com/pkg/errors"
)

// Header carries the container metadata this package does not parse
// itself: image geometry, the element table, and the file-level log LUT
// reference values. Cineon/DPX header parsing is an external
// collaborator (spec: "file-header parsing... out of scope"); a caller
// owning that parser builds a Header and hands it to Open/OpenMem.
type Header struct {
	Width, Height int
	NumElements   int
	Element       [8]LogImageElement
	// ReferenceBlack/ReferenceWhite/Gamma seed the log→lin/lin→log LUTs.
	// DPX carries these in its header; Cineon fixes them, so a caller
	// opening a Cineon file should pass DefaultCineonReferenceBlack/
	// DefaultCineonReferenceWhite/DefaultCineonGamma.
	ReferenceBlack int
	ReferenceWhite int
	Gamma          float32
}

// LogImageFile is a handle to one open Cineon or DPX container.
type LogImageFile struct {
	Width, Height int
	Depth         int
	NumElements   int
	Element       [8]LogImageElement
	IsMSB         bool
	SrcFormat     SrcFormat

	ReferenceBlack int
	ReferenceWhite int
	Gamma          float32

	file Stream
}

// IsDpxMagic reports whether buf begins with the DPX magic number in
// either byte order.
func IsDpxMagic(buf []byte) bool {
	return hasMagic(buf, DPXFileMagic)
}

// IsCineonMagic reports whether buf begins with the Cineon magic number
// in either byte order.
func IsCineonMagic(buf []byte) bool {
	return hasMagic(buf, CineonFileMagic)
}

func hasMagic(buf []byte, magic uint32) bool {
	if len(buf) < 4 {
		return false
	}
	be := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	return be == magic || be == swapBytes32(magic)
}

func swapBytes32(v uint32) uint32 {
	return (v&0xff)<<24 | (v&0xff00)<<8 | (v&0xff0000)>>8 | (v>>24)&0xff
}

// sniff reads the first 4 bytes of s, identifies the container format,
// and derives isMSB from which byte order of the magic matched — the
// two-way check logImageIsDpx/logImageIsCineon perform.
func sniff(s Stream) (SrcFormat, bool, error) {
	if err := s.Seek(0); err != nil {
		return 0, false, err
	}
	buf, err := s.ReadExact(4)
	if err != nil {
		return 0, false, ErrNotACineonOrDPXFile
	}
	be := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])

	switch {
	case be == DPXFileMagic:
		return FormatDPX, true, nil
	case be == swapBytes32(DPXFileMagic):
		return FormatDPX, false, nil
	case be == CineonFileMagic:
		return FormatCineon, false, nil
	case be == swapBytes32(CineonFileMagic):
		return FormatCineon, true, nil
	default:
		return 0, false, ErrNotACineonOrDPXFile
	}
}

// Open opens the container at path and builds a LogImageFile from hdr,
// the caller-supplied (externally parsed) metadata. Open itself only
// sniffs the magic number to identify the format and byte order.
func Open(path string, hdr Header) (*LogImageFile, error) {
	fs, err := OpenFileStream(path)
	if err != nil {
		return nil, err
	}
	f, err := openWithStream(fs, hdr)
	if err != nil {
		fs.Close()
		return nil, err
	}
	logf("opened %s as %s, isMSB=%v", path, f.SrcFormat, f.IsMSB)
	return f, nil
}

// OpenMem builds a LogImageFile backed by an in-memory buffer, the
// logImageOpenFromMemory equivalent.
func OpenMem(buf []byte, hdr Header) (*LogImageFile, error) {
	ms := NewMemStream(buf)
	f, err := openWithStream(ms, hdr)
	if err != nil {
		return nil, err
	}
	logf("opened memory buffer as %s, isMSB=%v", f.SrcFormat, f.IsMSB)
	return f, nil
}

func openWithStream(s Stream, hdr Header) (*LogImageFile, error) {
	format, isMSB, err := sniff(s)
	if err != nil {
		return nil, err
	}
	f := &LogImageFile{
		Width:          hdr.Width,
		Height:         hdr.Height,
		NumElements:    hdr.NumElements,
		Element:        hdr.Element,
		IsMSB:          isMSB,
		SrcFormat:      format,
		ReferenceBlack: hdr.ReferenceBlack,
		ReferenceWhite: hdr.ReferenceWhite,
		Gamma:          hdr.Gamma,
		file:           s,
	}
	f.Depth = f.assembledDepth()
	return f, nil
}

// assembledDepth sums the depth of every element that will participate
// in assembly, skipping Depth/Composite elements per spec §3.
func (f *LogImageFile) assembledDepth() int {
	if f.NumElements <= 1 {
		if f.NumElements == 1 {
			return f.Element[0].Depth
		}
		return 0
	}
	total := 0
	for i := 0; i < f.NumElements; i++ {
		d := f.Element[i].Descriptor
		if d == DescriptorDepth || d == DescriptorComposite {
			continue
		}
		total += f.Element[i].Depth
	}
	return total
}

// CreateConfig mirrors the language-neutral create(...) signature from
// spec.md §6.
type CreateConfig struct {
	IsCineon bool
	Width, Height int
	BitsPerSample int
	// IsLog selects PrintingDensity transfer for DPX; ignored for Cineon,
	// which is always PrintingDensity (spec §6: "Cineon path ignores
	// isLog/refs/gamma").
	IsLog    bool
	HasAlpha bool
	ReferenceWhite, ReferenceBlack int
	Gamma                         float32
	// Creator is accepted for signature parity with the original API but
	// unused: container header serialization (where a creator string
	// would be recorded) is out of scope for this core.
	Creator string
}

// Create builds a new LogImageFile for writing at path, with a single
// element whose layout follows the original cineonCreate/dpxCreate
// defaults (§6.2 of SPEC_FULL.md): packing is always filled-LSB, and
// transfer is PrintingDensity unless the caller asked for linear.
func Create(path string, cfg CreateConfig) (*LogImageFile, error) {
	fs, err := CreateFileStream(path)
	if err != nil {
		return nil, err
	}
	f, err := createWithStream(fs, cfg)
	if err != nil {
		fs.Close()
		return nil, err
	}
	return f, nil
}

func createWithStream(s Stream, cfg CreateConfig) (*LogImageFile, error) {
	if !cfg.IsCineon && cfg.ReferenceBlack > cfg.ReferenceWhite {
		return nil, ErrInvalidReferenceRange
	}

	depth := 3
	descriptor := DescriptorRGB
	if cfg.HasAlpha {
		depth = 4
		descriptor = DescriptorRGBA
	}

	transfer := TransferLinear
	refBlack, refWhite, gamma := cfg.ReferenceBlack, cfg.ReferenceWhite, cfg.Gamma

	format := FormatDPX
	if cfg.IsCineon {
		format = FormatCineon
		transfer = TransferPrintingDensity
		refBlack = DefaultCineonReferenceBlack
		refWhite = DefaultCineonReferenceWhite
		gamma = DefaultCineonGamma
	} else if cfg.IsLog {
		transfer = TransferPrintingDensity
	}

	elem := LogImageElement{
		Descriptor:      descriptor,
		Depth:           depth,
		BitsPerSample:   cfg.BitsPerSample,
		Packing:         PackingFilledLSB,
		Transfer:        transfer,
		RefLowData:      refBlack,
		RefHighData:     refWhite,
		RefLowQuantity:  0,
		RefHighQuantity: 2.048,
	}

	f := &LogImageFile{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Depth:          depth,
		NumElements:    1,
		IsMSB:          false,
		SrcFormat:      format,
		ReferenceBlack: refBlack,
		ReferenceWhite: refWhite,
		Gamma:          gamma,
		file:           s,
	}
	f.Element[0] = elem
	return f, nil
}

// GetSize reports the assembled image's dimensions and channel depth.
func (f *LogImageFile) GetSize() (width, height, depth int, err error) {
	if f == nil {
		return 0, 0, 0, ErrInvalidFile
	}
	return f.Width, f.Height, f.Depth, nil
}

// Close releases the underlying byte-I/O handle exactly once. Later
// calls do nothing and return nil.
func (f *LogImageFile) Close() error {
	if f == nil || f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return errors.Wrap(err, "logimage: close")
}
