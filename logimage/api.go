package logimage

// GetDataRGBA decodes the container into a width*height*4 RGBA float32
// buffer, in [0,1] per channel. dstIsLinear requests the sRGB→linear
// finalize step on the R,G,B channels; alpha is never touched by it.
func (f *LogImageFile) GetDataRGBA(dstIsLinear bool) ([]float32, error) {
	if f == nil || f.file == nil {
		return nil, ErrInvalidFile
	}

	planes := make([][]float32, f.NumElements)
	for i := 0; i < f.NumElements; i++ {
		d := f.Element[i].Descriptor
		if d == DescriptorDepth || d == DescriptorComposite {
			continue
		}
		plane, err := f.readElementPlane(f.Element[i])
		if err != nil {
			return nil, err
		}
		planes[i] = plane
	}

	var merged LogImageElement
	var data []float32
	var err error
	if f.NumElements == 1 {
		merged = f.Element[0]
		data = planes[0]
	} else {
		merged, data, err = f.mergeElements(planes)
		if err != nil {
			return nil, err
		}
	}

	var rgba []float32
	switch merged.Descriptor {
	case DescriptorRGB, DescriptorRGBA, DescriptorABGR:
		rgba, err = f.rgbFamilyToRGBA(merged, data)
	case DescriptorLuminance, DescriptorYA,
		DescriptorCbYCr, DescriptorCbYCrA, DescriptorCbYCrY, DescriptorCbYACrYA:
		rgba, err = f.ycbcrFamilyToRGBA(merged, data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	if dstIsLinear {
		applySRGBToLinear(rgba, f.Width*f.Height, merged.MaxValue())
	}
	logf("decoded %dx%d depth=%d descriptor=%s linear=%v", f.Width, f.Height, merged.Depth, merged.Descriptor, dstIsLinear)
	return rgba, nil
}

// SetDataRGBA encodes a width*height*4 RGBA float32 buffer into the
// container's first element. Only element[0].Descriptor ∈ {RGB, RGBA}
// is supported, mirroring spec §3's "For write, only the first element
// is consulted; multi-element write is not supported."
func (f *LogImageFile) SetDataRGBA(rgba []float32, srcIsLinear bool) error {
	if f == nil || f.file == nil {
		return ErrInvalidFile
	}
	if f.NumElements < 1 {
		return ErrMultiElementWrite
	}

	el := f.Element[0]
	if el.Descriptor != DescriptorRGB && el.Descriptor != DescriptorRGBA {
		return ErrMultiElementWrite
	}

	working := rgba
	if srcIsLinear {
		working = applyLinearToSRGB(rgba, f.Width*f.Height, el.MaxValue())
	}

	encoded, err := f.rgbaToLogElement(el, working)
	if err != nil {
		return err
	}
	if err := f.writeElementPlane(el, encoded); err != nil {
		return err
	}
	logf("encoded %dx%d descriptor=%s linear=%v", f.Width, f.Height, el.Descriptor, srcIsLinear)
	return nil
}
