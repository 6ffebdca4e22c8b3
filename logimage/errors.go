package logimage

import "errors"

// Errors returned while opening or identifying a container.
var (
	ErrNotACineonOrDPXFile = errors.New("logimage: buffer does not start with a Cineon or DPX magic number")
	ErrInvalidFile         = errors.New("logimage: nil LogImageFile")
)

// Errors returned while reading or writing pixel data.
var (
	ErrUnsupportedFormat     = errors.New("logimage: unsupported descriptor, transfer, or (bitsPerSample, packing) combination")
	ErrShortRead             = errors.New("logimage: unexpected end of file")
	ErrShortWrite            = errors.New("logimage: short write")
	ErrInvalidReferenceRange = errors.New("logimage: refLowData must be <= refHighData")
	ErrMultiElementWrite     = errors.New("logimage: writing is only supported for a single RGB or RGBA element")
)
