package logimage

// ycbcrMatrix builds the 3x3 Y′CbCr→RGB matrix for a transfer
// identifier, rows R,G,B and columns Y,Cb,Cr, before reference-range
// scaling. Linear uses a Y-only matrix (every row 1,0,0: no chroma
// contribution);
// SMPTE240M, CCIR709 and CCIR601 use their standard broadcast
// coefficients (CCIR601 and the transfer=8 "variant" share a matrix,
// per spec §4.6: "transfer 7 and 8 share the same matrix").
func ycbcrMatrix(transfer Transfer) ([3][3]float64, error) {
	switch transfer {
	case TransferLinear, TransferUnspecified, TransferUserDefined, TransferLogarithmic:
		return [3][3]float64{
			{1, 0, 0},
			{1, 0, 0},
			{1, 0, 0},
		}, nil
	case TransferSMPTE240M:
		return [3][3]float64{
			{1, 0, 1.5756},
			{1, -0.2253, -0.4768},
			{1, 1.8270, 0},
		}, nil
	case TransferCCIR709:
		return [3][3]float64{
			{1, 0, 1.5748},
			{1, -0.1873, -0.4681},
			{1, 1.8556, 0},
		}, nil
	case TransferCCIR601, TransferVariant:
		return [3][3]float64{
			{1, 0, 1.402},
			{1, -0.344136, -0.714136},
			{1, 1.772, 0},
		}, nil
	default:
		return [3][3]float64{}, ErrUnsupportedFormat
	}
}

// scaledYCbCrMatrix applies the reference-range scaling from
// spec §4.6: the Y column is multiplied by scaleY, the Cb/Cr columns
// by scaleCbCr = scaleY*(876/896).
func scaledYCbCrMatrix(transfer Transfer, refLow, refHigh, maxValue int) ([3][3]float64, error) {
	m, err := ycbcrMatrix(transfer)
	if err != nil {
		return m, err
	}
	if refLow == refHigh {
		return m, ErrUnsupportedFormat
	}
	scaleY := 1.0 / (float64(refHigh)/float64(maxValue) - float64(refLow)/float64(maxValue))
	scaleCbCr := scaleY * (876.0 / 896.0)
	for r := 0; r < 3; r++ {
		m[r][0] *= scaleY
		m[r][1] *= scaleCbCr
		m[r][2] *= scaleCbCr
	}
	return m, nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func matMulRGB(m [3][3]float64, y, cb, cr float64) (r, g, b float32) {
	r = float32(m[0][0]*y + m[0][1]*cb + m[0][2]*cr)
	g = float32(m[1][0]*y + m[1][1]*cb + m[1][2]*cr)
	b = float32(m[2][0]*y + m[2][1]*cb + m[2][2]*cr)
	return clamp01(r), clamp01(g), clamp01(b)
}

// ycbcrFamilyToRGBA converts a merged Y′CbCr-family or Luminance
// element into width*height*4 RGBA floats.
func (f *LogImageFile) ycbcrFamilyToRGBA(merged LogImageElement, data []float32) ([]float32, error) {
	n := f.Width * f.Height
	out := make([]float32, n*4)
	refLow, refHigh, maxValue := merged.RefLowData, merged.RefHighData, merged.MaxValue()
	yOffset := float64(refLow) / float64(maxValue)

	switch merged.Descriptor {
	case DescriptorLuminance, DescriptorYA:
		m, err := scaledYCbCrMatrix(merged.Transfer, refLow, refHigh, maxValue)
		if err != nil {
			return nil, err
		}
		hasAlpha := merged.Descriptor == DescriptorYA
		for p := 0; p < n; p++ {
			src := p * merged.Depth
			y := float64(data[src]) - yOffset
			v := clamp01(float32(y * m[0][0]))
			var a float32 = 1.0
			if hasAlpha {
				a = data[src+1]
			}
			dst := p * 4
			out[dst], out[dst+1], out[dst+2], out[dst+3] = v, v, v, a
		}
		return out, nil

	case DescriptorCbYCr, DescriptorCbYCrA:
		m, err := scaledYCbCrMatrix(merged.Transfer, refLow, refHigh, maxValue)
		if err != nil {
			return nil, err
		}
		hasAlpha := merged.Descriptor == DescriptorCbYCrA
		for p := 0; p < n; p++ {
			src := p * merged.Depth
			cb := float64(data[src]) - 0.5
			y := float64(data[src+1]) - yOffset
			cr := float64(data[src+2]) - 0.5
			r, g, b := matMulRGB(m, y, cb, cr)
			var a float32 = 1.0
			if hasAlpha {
				a = data[src+3]
			}
			dst := p * 4
			out[dst], out[dst+1], out[dst+2], out[dst+3] = r, g, b, a
		}
		return out, nil

	case DescriptorCbYCrY:
		m, err := scaledYCbCrMatrix(merged.Transfer, refLow, refHigh, maxValue)
		if err != nil {
			return nil, err
		}
		pairs := n / 2
		for k := 0; k < pairs; k++ {
			src := k * 4
			cb := float64(data[src]) - 0.5
			y0 := float64(data[src+1]) - yOffset
			cr := float64(data[src+2]) - 0.5
			y1 := float64(data[src+3]) - yOffset

			r0, g0, b0 := matMulRGB(m, y0, cb, cr)
			r1, g1, b1 := matMulRGB(m, y1, cb, cr)

			d0 := (k * 2) * 4
			d1 := (k*2 + 1) * 4
			out[d0], out[d0+1], out[d0+2], out[d0+3] = r0, g0, b0, 1.0
			out[d1], out[d1+1], out[d1+2], out[d1+3] = r1, g1, b1, 1.0
		}
		return out, nil

	case DescriptorCbYACrYA:
		m, err := scaledYCbCrMatrix(merged.Transfer, refLow, refHigh, maxValue)
		if err != nil {
			return nil, err
		}
		pairs := n / 2
		for k := 0; k < pairs; k++ {
			src := k * 6
			cb := float64(data[src]) - 0.5
			y0 := float64(data[src+1]) - yOffset
			a0 := data[src+2]
			cr := float64(data[src+3]) - 0.5
			y1 := float64(data[src+4]) - yOffset
			a1 := data[src+5]

			r0, g0, b0 := matMulRGB(m, y0, cb, cr)
			r1, g1, b1 := matMulRGB(m, y1, cb, cr)

			d0 := (k * 2) * 4
			d1 := (k*2 + 1) * 4
			out[d0], out[d0+1], out[d0+2], out[d0+3] = r0, g0, b0, a0
			out[d1], out[d1+1], out[d1+2], out[d1+3] = r1, g1, b1, a1
		}
		return out, nil

	default:
		return nil, ErrUnsupportedFormat
	}
}
