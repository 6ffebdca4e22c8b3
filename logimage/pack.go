package logimage

import (
	"github.com/aakash0910-codes/logimage/internal/bitcodec"
)

// writeElementPlane bit-packs samples (width*height*e.Depth values in
// [0,1], row-major) and writes them to the stream starting at
// e.DataOffset. Only the single-element write path is supported (spec
// §3: "For write, only the first element is consulted").
func (f *LogImageFile) writeElementPlane(e LogImageElement, samples []float32) error {
	width := f.Width
	n := width * e.Depth

	if err := f.file.Seek(e.DataOffset); err != nil {
		return err
	}

	for y := 0; y < f.Height; y++ {
		row := samples[y*n : (y+1)*n]

		var encoded []byte
		switch e.BitsPerSample {
		case 8:
			encoded = bitcodec.Pack8Row(row)
		case 10:
			encoded = bitcodec.Pack10Filled(row, f.IsMSB)
		case 12:
			encoded = bitcodec.Pack12Filled(row, f.IsMSB)
		case 16:
			encoded = bitcodec.Pack16Row(row, f.IsMSB)
		default:
			return ErrUnsupportedFormat
		}
		if err := f.file.Write(encoded); err != nil {
			return err
		}
	}
	return nil
}
