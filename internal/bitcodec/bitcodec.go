// Package bitcodec implements the bit-unpack and bit-pack engines for
// Cineon/DPX sample data: dense float32 streams on one side, row-padded,
// bit-packed on-disk layouts on the other, for 1/8/10/12/16-bit samples
// in both "filled" (padded to 10/12-bit cells inside 32-bit words) and
// "packed" (sample boundaries cross 32-bit word boundaries) layouts.
//
// Every function here is pure: it decodes or encodes one already-read
// (or about-to-be-written) row buffer, and takes no responsibility for
// seeking or I/O. Byte order is handled by loading words with the host's
// native layout and then correcting with internal/byteorder, mirroring
// how the original C implementation reads a machine word and then calls
// swap_uint/swap_ushort on it.
package bitcodec

import (
	"encoding/binary"

	"github.com/aakash0910-codes/logimage/internal/byteorder"
)

// RowBytes returns the zero-padded byte length of one image row holding
// width*depth samples at bitsPerSample bits each, laid out per packing
// (0 = type-A packed, 1/2 = type-B filled). Every on-disk row is padded
// to a multiple of 4 bytes.
func RowBytes(bitsPerSample, packing, width, depth int) int {
	n := width * depth
	switch bitsPerSample {
	case 1:
		return ceilDiv(n, 32) * 4
	case 8:
		return ceilDiv(n, 4) * 4
	case 10:
		if packing == 0 {
			return ceilDiv(n*10, 32) * 4
		}
		return ceilDiv(n, 3) * 4
	case 12:
		if packing == 0 {
			return ceilDiv(n*12, 32) * 4
		}
		return n * 2
	case 16:
		return n * 2
	default:
		return 0
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func loadU32(b []byte) uint32 { return binary.NativeEndian.Uint32(b) }
func loadU16(b []byte) uint16 { return binary.NativeEndian.Uint16(b) }

func storeU32(b []byte, v uint32) { binary.NativeEndian.PutUint32(b, v) }
func storeU16(b []byte, v uint16) { binary.NativeEndian.PutUint16(b, v) }

// Unpack1Row decodes n 1-bit samples (0.0 or 1.0) from a row of 32-bit
// words, each word holding up to 32 samples, low bit first.
func Unpack1Row(row []byte, isMSB bool, n int) []float32 {
	out := make([]float32, n)
	i := 0
	for wordStart := 0; i < n; wordStart += 4 {
		word := byteorder.Swap32(loadU32(row[wordStart:]), isMSB)
		for bit := 0; bit < 32 && i < n; bit++ {
			out[i] = float32((word >> bit) & 1)
			i++
		}
	}
	return out
}

// Pack1Row is the inverse of Unpack1Row: samples >= 0.5 become 1.
func Pack1Row(samples []float32, isMSB bool) []byte {
	n := len(samples)
	row := make([]byte, ceilDiv(n, 32)*4)
	i := 0
	for wordStart := 0; i < n; wordStart += 4 {
		var word uint32
		for bit := 0; bit < 32 && i < n; bit++ {
			if samples[i] >= 0.5 {
				word |= 1 << uint(bit)
			}
			i++
		}
		storeU32(row[wordStart:], byteorder.Swap32(word, isMSB))
	}
	return row
}

// Unpack8Row decodes n 8-bit samples, code/255, one byte per sample.
// Any row padding bytes beyond the first n are ignored.
func Unpack8Row(row []byte, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32(row[i]) / 255.0
	}
	return out
}

// Pack8Row is the inverse of Unpack8Row; trailing row padding is zero.
func Pack8Row(samples []float32) []byte {
	n := len(samples)
	row := make([]byte, ceilDiv(n, 4)*4)
	for i, f := range samples {
		row[i] = byte(floatToCode(f, 255))
	}
	return row
}

// Unpack10Filled decodes n 10-bit samples packed three to a 32-bit word
// with 2 bits of padding. Layouts below list the word's bits from most
// to least significant.
//
// packing == 1 ("padded-left"): [s0:10 | s1:10 | s2:10 | 2 pad], the
// general-purpose layout, first shift 22 decreasing by 10.
// packing == 2 ("padded-right"): [2 pad | s0:10 | s1:10 | s2:10], first
// shift 20 decreasing by 10.
//
// dpxSingleChannel selects the DPX single-channel convention, where
// shifts increase from 2 (packing 1) or 0 (packing 2) instead, and a
// word is exhausted once the next shift would reach or exceed 30.
func Unpack10Filled(row []byte, isMSB bool, packing int, dpxSingleChannel bool, n int) []float32 {
	out := make([]float32, n)
	var word uint32
	wordStart := 0
	loadNext := func() {
		word = byteorder.Swap32(loadU32(row[wordStart:]), isMSB)
		wordStart += 4
	}

	if dpxSingleChannel {
		shift := 32 // sentinel: force an initial load
		for i := 0; i < n; i++ {
			if shift >= 30 {
				if packing == 1 {
					shift = 2
				} else {
					shift = 0
				}
				loadNext()
			}
			out[i] = float32((word>>uint(shift))&0x3ff) / 1023.0
			shift += 10
		}
		return out
	}

	shift := -1 // sentinel: force an initial load
	for i := 0; i < n; i++ {
		if shift < 0 {
			if packing == 1 {
				shift = 22
			} else {
				shift = 20
			}
			loadNext()
		}
		out[i] = float32((word>>uint(shift))&0x3ff) / 1023.0
		shift -= 10
	}
	return out
}

// Pack10Filled is the writer's 10-bit filled encoder. Writers always
// emit packing == 1 (shift starts at 22, decreasing by 10).
func Pack10Filled(samples []float32, isMSB bool) []byte {
	n := len(samples)
	row := make([]byte, ceilDiv(n, 3)*4)
	shift := 22
	var word uint32
	wordStart := 0
	for i := 0; i < n; i++ {
		word |= uint32(floatToCode(samples[i], 1023)) << uint(shift)
		shift -= 10
		if shift < 0 {
			storeU32(row[wordStart:], byteorder.Swap32(word, isMSB))
			wordStart += 4
			word = 0
			shift = 22
		}
	}
	if word != 0 {
		storeU32(row[wordStart:], byteorder.Swap32(word, isMSB))
	}
	return row
}

// Unpack10Packed decodes n densely packed 10-bit samples where sample
// boundaries may straddle 32-bit words, maintaining a bit accumulator
// across word reads and restarting it at the start of each row.
func Unpack10Packed(row []byte, isMSB bool, n int) []float32 {
	return unpackPacked(row, isMSB, n, 10, 0x3ff, 1023.0)
}

// Unpack12Packed is the 12-bit analogue of Unpack10Packed.
func Unpack12Packed(row []byte, isMSB bool, n int) []float32 {
	return unpackPacked(row, isMSB, n, 12, 0xfff, 4095.0)
}

func unpackPacked(row []byte, isMSB bool, n, bits int, mask uint32, maxValue float32) []float32 {
	out := make([]float32, n)
	var pixel, oldPixel uint32
	offset, offset2 := 0, 0
	wordStart := 0

	for i := 0; i < n; i++ {
		switch {
		case offset2 != 0:
			offset = bits - offset2
			offset2 = 0
			oldPixel = 0
		case offset == 32:
			offset = 0
		case offset+bits > 32:
			oldPixel = pixel >> uint(offset)
			offset2 = 32 - offset
			offset = 0
		}

		if offset == 0 {
			pixel = byteorder.Swap32(loadU32(row[wordStart:]), isMSB)
			wordStart += 4
		}

		out[i] = float32((((pixel<<uint(offset2))>>uint(offset))&mask)|oldPixel) / maxValue
		offset += bits
	}
	return out
}

// Unpack12Filled decodes n 12-bit samples, one per 16-bit slot.
// packing == 1 takes the upper 12 bits (code >> 4); packing == 2 takes
// the lower 12 bits (code & 0xFFF).
func Unpack12Filled(row []byte, isMSB bool, packing int, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		code := byteorder.Swap16(loadU16(row[i*2:]), isMSB)
		if packing == 1 {
			out[i] = float32(code>>4) / 4095.0
		} else {
			out[i] = float32(code&0xfff) / 4095.0
		}
	}
	return out
}

// Pack12Filled is the writer's 12-bit filled encoder; writers always
// emit packing == 1 (code shifted into the upper 12 bits).
func Pack12Filled(samples []float32, isMSB bool) []byte {
	row := make([]byte, len(samples)*2)
	for i, f := range samples {
		code := uint16(floatToCode(f, 4095)) << 4
		storeU16(row[i*2:], byteorder.Swap16(code, isMSB))
	}
	return row
}

// Unpack16Row decodes n 16-bit samples, code/65535.
func Unpack16Row(row []byte, isMSB bool, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32(byteorder.Swap16(loadU16(row[i*2:]), isMSB)) / 65535.0
	}
	return out
}

// Pack16Row is the inverse of Unpack16Row.
func Pack16Row(samples []float32, isMSB bool) []byte {
	row := make([]byte, len(samples)*2)
	for i, f := range samples {
		storeU16(row[i*2:], byteorder.Swap16(uint16(floatToCode(f, 65535)), isMSB))
	}
	return row
}

// floatToCode quantizes f into [0, maxValue], rounding to nearest.
func floatToCode(f float32, maxValue int) int {
	code := int(f*float32(maxValue) + 0.5)
	if code < 0 {
		return 0
	}
	if code > maxValue {
		return maxValue
	}
	return code
}

// FloatToCode exports floatToCode for callers outside this package that
// need the same quantization rule (LUT indexing in the color pipeline).
func FloatToCode(f float32, maxValue int) int {
	return floatToCode(f, maxValue)
}
