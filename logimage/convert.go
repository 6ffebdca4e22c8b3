package logimage

import "github.com/aakash0910-codes/logimage/internal/bitcodec"

// rgbFamilyToRGBA converts a merged RGB/RGBA/ABGR element's interleaved
// samples into width*height*4 RGBA floats, applying the printing-density
// log→lin LUT per channel when the element's transfer calls for it.
func (f *LogImageFile) rgbFamilyToRGBA(merged LogImageElement, data []float32) ([]float32, error) {
	n := f.Width * f.Height
	out := make([]float32, n*4)
	hasAlpha := merged.Depth == 4
	abgr := merged.Descriptor == DescriptorABGR
	maxValue := merged.MaxValue()

	var logLUT []float32
	if merged.Transfer == TransferPrintingDensity {
		logLUT = buildLogToLin(maxValue, f.ReferenceBlack, f.ReferenceWhite, merged.RefHighQuantity, f.Gamma)
	}

	for p := 0; p < n; p++ {
		src := p * merged.Depth
		var r, g, b, a float32
		if abgr {
			a, b, g, r = data[src], data[src+1], data[src+2], data[src+3]
		} else {
			r, g, b = data[src], data[src+1], data[src+2]
			if hasAlpha {
				a = data[src+3]
			} else {
				a = 1.0
			}
		}
		if logLUT != nil {
			r = logLUT[bitcodec.FloatToCode(r, maxValue)]
			g = logLUT[bitcodec.FloatToCode(g, maxValue)]
			b = logLUT[bitcodec.FloatToCode(b, maxValue)]
		}
		dst := p * 4
		out[dst], out[dst+1], out[dst+2], out[dst+3] = r, g, b, a
	}
	return out, nil
}

// rgbaToLogElement is the write-side inverse of rgbFamilyToRGBA. Only
// RGB and RGBA targets are supported on write (spec §1 Non-goals: "the
// writer only emits RGB and RGBA"); ABGR is rejected.
func (f *LogImageFile) rgbaToLogElement(el LogImageElement, rgba []float32) ([]float32, error) {
	if el.Descriptor != DescriptorRGB && el.Descriptor != DescriptorRGBA {
		return nil, ErrMultiElementWrite
	}
	n := f.Width * f.Height
	out := make([]float32, n*el.Depth)
	maxValue := el.MaxValue()

	var logLUT []float32
	if el.Transfer == TransferPrintingDensity {
		logLUT = buildLinToLog(maxValue, f.ReferenceBlack, f.ReferenceWhite, el.RefHighQuantity, f.Gamma)
	}

	for p := 0; p < n; p++ {
		src := p * 4
		r, g, b, a := rgba[src], rgba[src+1], rgba[src+2], rgba[src+3]
		if logLUT != nil {
			r = logLUT[bitcodec.FloatToCode(r, maxValue)]
			g = logLUT[bitcodec.FloatToCode(g, maxValue)]
			b = logLUT[bitcodec.FloatToCode(b, maxValue)]
		}
		dst := p * el.Depth
		out[dst], out[dst+1], out[dst+2] = r, g, b
		if el.Depth == 4 {
			out[dst+3] = a
		}
	}
	return out, nil
}

// applySRGBToLinear replaces each R,G,B channel of rgba in place with
// srgbToLin[float_to_code(v)], leaving alpha untouched — the read-side
// finalize step when the caller asked for linear output.
func applySRGBToLinear(rgba []float32, n, maxValue int) {
	lut := buildSRGBToLin(maxValue)
	for p := 0; p < n; p++ {
		base := p * 4
		for c := 0; c < 3; c++ {
			rgba[base+c] = lut[bitcodec.FloatToCode(rgba[base+c], maxValue)]
		}
	}
}

// applyLinearToSRGB returns a copy of rgba with R,G,B replaced via
// linToSrgb, leaving alpha untouched — the write-side prepare step.
func applyLinearToSRGB(rgba []float32, n, maxValue int) []float32 {
	lut := buildLinToSRGB(maxValue)
	out := make([]float32, len(rgba))
	copy(out, rgba)
	for p := 0; p < n; p++ {
		base := p * 4
		for c := 0; c < 3; c++ {
			out[base+c] = lut[bitcodec.FloatToCode(out[base+c], maxValue)]
		}
	}
	return out
}
