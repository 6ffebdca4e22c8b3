package logimage

import "github.com/aakash0910-codes/logimage/internal/bitcodec"

// LogImageElement describes one planar channel group within a
// container: its bit layout, its photometric role, and the reference
// code values used to build the color-pipeline LUTs.
type LogImageElement struct {
	Descriptor Descriptor
	// Depth is the number of channels carried by this element (1..4).
	Depth int
	// BitsPerSample is one of 1, 8, 10, 12, 16.
	BitsPerSample int
	Packing       Packing
	Transfer      Transfer
	// DataOffset is the byte offset in the container where this
	// element's pixel data begins.
	DataOffset int64
	// RefLowData/RefHighData are the integer code values mapped to 0.0
	// and 1.0 of Y′ (and, for Y′CbCr, the chroma scaling reference).
	RefLowData  int
	RefHighData int
	// RefLowQuantity/RefHighQuantity are reference densities used only
	// to build the printing-density log LUT.
	RefLowQuantity  float32
	RefHighQuantity float32
}

// MaxValue returns (1<<BitsPerSample)-1, the element's maximum code
// value.
func (e LogImageElement) MaxValue() int {
	return (1 << e.BitsPerSample) - 1
}

// RowBytes returns the zero-padded on-disk byte length of one row of
// this element at the given pixel width.
func (e LogImageElement) RowBytes(width int) int {
	return bitcodec.RowBytes(e.BitsPerSample, int(e.Packing), width, e.Depth)
}

// RowBytes is the package-level form of LogImageElement.RowBytes,
// exposed independently so a caller computing raw offsets into element
// data does not need a populated LogImageElement (mirrors the original
// C API's getRowLength, which took bitsPerSample/packing/depth as loose
// values too).
func RowBytes(bitsPerSample int, packing Packing, width, depth int) int {
	return bitcodec.RowBytes(bitsPerSample, int(packing), width, depth)
}

// DefaultCineon* are the reference values a freshly created or freshly
// opened Cineon element uses when the container format itself does not
// carry reference-black/white/gamma fields (Cineon fixes these; DPX
// carries them in its header, out of this package's scope).
const (
	DefaultCineonReferenceBlack = 95
	DefaultCineonReferenceWhite = 685
	DefaultCineonGamma          = float32(1.0)
)
