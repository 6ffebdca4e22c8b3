// Package logimage reads and writes Cineon and DPX still-image
// containers: cinema-scan formats that store bit-packed per-channel
// samples under configurable channel layouts and logarithmic
// (printing-density) or Y′CbCr transfer functions.
//
// The package converts between the on-disk byte stream and a canonical
// RGBA float32 image; it does not parse container metadata headers,
// allocate host image buffers, or perform compression — those remain
// the caller's responsibility, consistent with how a thin codec core
// should stay independent of its hosting application.
package logimage

// Descriptor identifies which channel, or channel group, an element
// carries.
type Descriptor int

const (
	DescriptorRed         Descriptor = 0
	DescriptorGreen       Descriptor = 1
	DescriptorBlue        Descriptor = 2
	DescriptorAlpha       Descriptor = 3
	DescriptorLuminance   Descriptor = 4
	DescriptorChrominance Descriptor = 5
	DescriptorDepth       Descriptor = 6
	DescriptorComposite   Descriptor = 7
	DescriptorRGB         Descriptor = 50
	DescriptorRGBA        Descriptor = 51
	DescriptorABGR        Descriptor = 52
	DescriptorCbYCr       Descriptor = 60
	DescriptorCbYCrY      Descriptor = 61
	DescriptorCbYCrA      Descriptor = 62
	DescriptorCbYACrYA    Descriptor = 63
	// DescriptorYA is for internal use only: it never appears in a file,
	// it is synthesized by the element assembler for a Luminance+Alpha
	// merge (spec: "YA (internal)").
	DescriptorYA Descriptor = 100
	// descriptorUnknown marks a merged element before its descriptor has
	// been determined by the assembler.
	descriptorUnknown Descriptor = -1
)

func (d Descriptor) String() string {
	switch d {
	case DescriptorRed:
		return "Red"
	case DescriptorGreen:
		return "Green"
	case DescriptorBlue:
		return "Blue"
	case DescriptorAlpha:
		return "Alpha"
	case DescriptorLuminance:
		return "Luminance"
	case DescriptorChrominance:
		return "Chrominance"
	case DescriptorDepth:
		return "Depth"
	case DescriptorComposite:
		return "Composite"
	case DescriptorRGB:
		return "RGB"
	case DescriptorRGBA:
		return "RGBA"
	case DescriptorABGR:
		return "ABGR"
	case DescriptorCbYCr:
		return "CbYCr"
	case DescriptorCbYCrY:
		return "CbYCrY"
	case DescriptorCbYCrA:
		return "CbYCrA"
	case DescriptorCbYACrYA:
		return "CbYACrYA"
	case DescriptorYA:
		return "YA"
	default:
		return "Unknown"
	}
}

// Transfer identifies a per-element photometric transfer curve.
type Transfer int

const (
	TransferUnspecified    Transfer = 0
	TransferUserDefined    Transfer = 1
	TransferLinear         Transfer = 2
	TransferLogarithmic    Transfer = 3
	TransferPrintingDensity Transfer = 4
	TransferSMPTE240M      Transfer = 5
	TransferCCIR709        Transfer = 6
	TransferCCIR601        Transfer = 7
	TransferVariant        Transfer = 8
)

func (t Transfer) String() string {
	switch t {
	case TransferUnspecified:
		return "Unspecified"
	case TransferUserDefined:
		return "UserDefined"
	case TransferLinear:
		return "Linear"
	case TransferLogarithmic:
		return "Logarithmic"
	case TransferPrintingDensity:
		return "PrintingDensity"
	case TransferSMPTE240M:
		return "SMPTE240M"
	case TransferCCIR709:
		return "CCIR709"
	case TransferCCIR601:
		return "CCIR601"
	case TransferVariant:
		return "Variant"
	default:
		return "Unknown"
	}
}

// Packing identifies how sub-byte samples pack into 32-bit words.
type Packing int

const (
	// PackingTypeA is the dense layout where sample boundaries straddle
	// 32-bit words.
	PackingTypeA Packing = 0
	// PackingFilledLSB pads each sample cell with its padding bits in
	// the low-order position ("padded-left" data).
	PackingFilledLSB Packing = 1
	// PackingFilledMSB pads each sample cell with its padding bits in
	// the high-order position ("padded-right" data).
	PackingFilledMSB Packing = 2
)

func (p Packing) String() string {
	switch p {
	case PackingTypeA:
		return "TypeA"
	case PackingFilledLSB:
		return "FilledLSB"
	case PackingFilledMSB:
		return "FilledMSB"
	default:
		return "Unknown"
	}
}

// SrcFormat identifies which of the two supported container formats a
// LogImageFile was opened from.
type SrcFormat int

const (
	FormatCineon SrcFormat = iota
	FormatDPX
)

func (f SrcFormat) String() string {
	if f == FormatCineon {
		return "Cineon"
	}
	return "DPX"
}

// Magic values for the two supported container formats, accepted in
// either byte order.
const (
	CineonFileMagic uint32 = 0xd75f2a80
	DPXFileMagic    uint32 = 0x53445058
)
