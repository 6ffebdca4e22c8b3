package logimage

import "math"

// negativeFilmGamma and softClip are fixed constants of the printing
// density transfer (logImageCore.cc never makes either configurable).
const (
	negativeFilmGamma = 0.6
	softClip           = 0.0
)

// pow00 is math.Pow except it resolves the 0^0 case to 1, the
// convention needed to reproduce the original LUTs' knee-gain term
// when softClip == 0 (math.Pow already returns 1 for x**0 regardless
// of x, so this only exists to document the choice at the call site).
func pow00(base, exp float64) float64 {
	return math.Pow(base, exp)
}

// buildLogToLin builds the printing-density-to-linear LUT for an
// element with the given maxValue, file-level reference black/white
// and gamma, and the element's own reference high quantity.
func buildLogToLin(maxValue, refBlack, refWhite int, refHighQuantity float32, gamma float32) []float32 {
	lut := make([]float32, maxValue+1)

	step := float64(refHighQuantity) / float64(maxValue)
	negGamma := negativeFilmGamma
	g := float64(gamma)

	gain := float64(maxValue) / (1.0 - math.Pow(10, float64(refBlack-refWhite)*step/negGamma*g/1.7))
	offset := gain - float64(maxValue)
	breakPoint := float64(refWhite) - softClip
	kneeOffset := math.Pow(10, (breakPoint-float64(refWhite))*step/negGamma*g/1.7)*gain - offset
	kneeGain := (float64(maxValue) - kneeOffset) / pow00(5*softClip, softClip/100)

	for i := 0; i <= maxValue; i++ {
		fi := float64(i)
		switch {
		case i <= refBlack:
			lut[i] = 0
		case fi > breakPoint:
			lut[i] = float32((math.Pow(fi-breakPoint, softClip/100)*kneeGain + kneeOffset) / float64(maxValue))
		default:
			lut[i] = float32((math.Pow(10, (fi-float64(refWhite))*step/negGamma*g/1.7)*gain - offset) / float64(maxValue))
		}
	}
	return lut
}

// buildLinToLog is the inverse of buildLogToLin, same parameters.
func buildLinToLog(maxValue, refBlack, refWhite int, refHighQuantity float32, gamma float32) []float32 {
	lut := make([]float32, maxValue+1)

	step := float64(refHighQuantity) / float64(maxValue)
	negGamma := negativeFilmGamma
	g := float64(gamma)

	gain := float64(maxValue) / (1.0 - math.Pow(10, float64(refBlack-refWhite)*step/negGamma*g/1.7))
	offset := gain - float64(maxValue)

	for i := 0; i <= maxValue; i++ {
		fi := float64(i)
		v := float64(refWhite) + math.Log10(math.Pow((fi+offset)/gain, 1.7/g))/(step/negGamma)
		lut[i] = float32(v / float64(maxValue))
	}
	return lut
}

// buildLinToSRGB builds the linear-to-sRGB LUT of size maxValue+1.
func buildLinToSRGB(maxValue int) []float32 {
	lut := make([]float32, maxValue+1)
	for i := 0; i <= maxValue; i++ {
		col := float64(i) / float64(maxValue)
		var v float64
		if col < 0.0031308 {
			v = math.Max(0, col*12.92)
		} else {
			v = 1.055*math.Pow(col, 1/2.4) - 0.055
		}
		lut[i] = float32(v)
	}
	return lut
}

// buildSRGBToLin builds the sRGB-to-linear LUT of size maxValue+1.
func buildSRGBToLin(maxValue int) []float32 {
	lut := make([]float32, maxValue+1)
	for i := 0; i <= maxValue; i++ {
		col := float64(i) / float64(maxValue)
		var v float64
		if col < 0.04045 {
			v = math.Max(0, col/12.92)
		} else {
			v = math.Pow((col+0.055)/1.055, 2.4)
		}
		lut[i] = float32(v)
	}
	return lut
}

