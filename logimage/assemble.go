package logimage

import "sort"

// mergeElements composes f.NumElements planar buffers (planes[i] holds
// width*height*f.Element[i].Depth samples) into one interleaved buffer
// plus a synthetic element describing the merged layout.
//
// The original algorithm interleaves elements in file encounter order,
// which silently mislabels the output if a file presents planes out of
// RGB order (e.g. Blue, Green, Red). This implementation interleaves in
// the corrected order — by each element's assigned channel slot — per
// the design note that prefers the corrected behavior over the
// original's latent bug.
func (f *LogImageFile) mergeElements(planes [][]float32) (LogImageElement, []float32, error) {
	type part struct {
		idx  int
		el   LogImageElement
		base int
	}

	hasAlpha := false
	for i := 0; i < f.NumElements; i++ {
		if f.Element[i].Descriptor == DescriptorAlpha {
			hasAlpha = true
			break
		}
	}

	var parts []part
	hasLuminance := false
	chrominanceSeen := 0
	cbycrSeen := false
	directDescriptor := descriptorUnknown

	for i := 0; i < f.NumElements; i++ {
		el := f.Element[i]
		switch el.Descriptor {
		case DescriptorDepth, DescriptorComposite:
			continue
		case DescriptorAlpha:
			parts = append(parts, part{i, el, f.Depth - el.Depth})
		case DescriptorRed:
			parts = append(parts, part{i, el, 0})
		case DescriptorGreen:
			parts = append(parts, part{i, el, 1})
		case DescriptorBlue:
			parts = append(parts, part{i, el, 2})
		case DescriptorLuminance:
			hasLuminance = true
			// Y stays in slot 0 only when it's alone or paired with alpha;
			// combined with Chrominance it moves to slot 1 (Cb,Y,Cr order).
			base := 0
			if f.Depth != 1 && !(f.Depth == 2 && hasAlpha) {
				base = 1
			}
			parts = append(parts, part{i, el, base})
		case DescriptorChrominance:
			base := 0
			if chrominanceSeen > 0 {
				base = 2
			}
			chrominanceSeen++
			parts = append(parts, part{i, el, base})
		case DescriptorCbYCr:
			cbycrSeen = true
			parts = append(parts, part{i, el, 0})
		case DescriptorRGB:
			// Grouped with Red/Green/Blue, not the literal-mirror bucket
			// below: a bare RGB element combined with a separate Alpha
			// element resolves to RGBA via the hasAlpha default, the
			// same way three separate R/G/B elements do.
			parts = append(parts, part{i, el, 0})
		case DescriptorRGBA, DescriptorABGR,
			DescriptorCbYCrY, DescriptorCbYCrA, DescriptorCbYACrYA:
			directDescriptor = el.Descriptor
			parts = append(parts, part{i, el, 0})
		default:
			return LogImageElement{}, nil, ErrUnsupportedFormat
		}
	}
	if len(parts) == 0 {
		return LogImageElement{}, nil, ErrUnsupportedFormat
	}

	sort.SliceStable(parts, func(a, b int) bool { return parts[a].base < parts[b].base })

	merged := f.Element[0]
	merged.Depth = f.Depth

	switch {
	case directDescriptor != descriptorUnknown:
		merged.Descriptor = directDescriptor
	case cbycrSeen:
		if hasAlpha {
			merged.Descriptor = DescriptorCbYCrA
		} else {
			merged.Descriptor = DescriptorCbYCr
		}
	case hasLuminance && chrominanceSeen > 0:
		switch f.Depth {
		case 2:
			merged.Descriptor = DescriptorCbYCrY
		case 3:
			if hasAlpha {
				merged.Descriptor = DescriptorCbYACrYA
			} else {
				merged.Descriptor = DescriptorCbYCr
			}
		case 4:
			merged.Descriptor = DescriptorCbYCrA
		default:
			return LogImageElement{}, nil, ErrUnsupportedFormat
		}
	case hasLuminance:
		if hasAlpha {
			merged.Descriptor = DescriptorYA
		} else {
			merged.Descriptor = DescriptorLuminance
		}
	default:
		if hasAlpha {
			merged.Descriptor = DescriptorRGBA
		} else {
			merged.Descriptor = DescriptorRGB
		}
	}

	totalPixels := f.Width * f.Height
	out := make([]float32, totalPixels*f.Depth)
	cursors := make([]int, len(parts))
	cursor := 0
	for p := 0; p < totalPixels; p++ {
		for pi, pt := range parts {
			d := pt.el.Depth
			src := planes[pt.idx][cursors[pi] : cursors[pi]+d]
			copy(out[cursor:cursor+d], src)
			cursors[pi] += d
			cursor += d
		}
	}
	return merged, out, nil
}
