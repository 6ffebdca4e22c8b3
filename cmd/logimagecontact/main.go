// logimagecontact builds a contact-sheet PNG from a batch of Cineon or
// DPX frames that all share the same layout.
//
// Usage:
//
//	logimagecontact [options] outfile.png infile...
//
// Options:
//
//	-v            verbose output
//	-w, -height   source image width/height in pixels
//	-bits         bits per sample (1, 8, 10, 12, 16)
//	-depth        channels in the element (1..4)
//	-packing      0=typeA, 1=filledLSB, 2=filledMSB
//	-descriptor   rgb, rgba, abgr, luminance
//	-cineon       treat the files as Cineon
//	-cell         thumbnail cell width in pixels
//	-cols         thumbnails per row
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/aakash0910-codes/logimage/logimage"
	"github.com/nfnt/resize"
)

func main() {
	verbose := flag.Bool("v", false, "verbose output")
	width := flag.Int("w", 0, "source image width in pixels")
	height := flag.Int("height", 0, "source image height in pixels")
	bits := flag.Int("bits", 10, "bits per sample")
	depth := flag.Int("depth", 3, "channels in the element")
	packing := flag.Int("packing", 1, "0=typeA, 1=filledLSB, 2=filledMSB")
	descriptorFlag := flag.String("descriptor", "rgb", "rgb, rgba, abgr, luminance")
	isCineon := flag.Bool("cineon", false, "treat the files as Cineon")
	cell := flag.Int("cell", 160, "thumbnail cell width in pixels")
	cols := flag.Int("cols", 4, "thumbnails per row")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: logimagecontact [options] outfile.png infile...\n\n")
		fmt.Fprintf(os.Stderr, "Build a contact-sheet PNG from a batch of Cineon/DPX frames.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	logimage.SetVerbose(*verbose)

	args := flag.Args()
	if len(args) < 2 || *width <= 0 || *height <= 0 {
		flag.Usage()
		os.Exit(1)
	}
	outPath, inPaths := args[0], args[1:]

	descriptor := logimage.DescriptorRGB
	switch *descriptorFlag {
	case "rgba":
		descriptor = logimage.DescriptorRGBA
	case "abgr":
		descriptor = logimage.DescriptorABGR
	case "luminance":
		descriptor = logimage.DescriptorLuminance
	}

	refBlack, refWhite, gamma := logimage.DefaultCineonReferenceBlack, logimage.DefaultCineonReferenceWhite, logimage.DefaultCineonGamma
	transfer := logimage.TransferPrintingDensity
	if !*isCineon {
		transfer = logimage.TransferLinear
	}

	hdr := logimage.Header{
		Width: *width, Height: *height, NumElements: 1,
		ReferenceBlack: refBlack, ReferenceWhite: refWhite, Gamma: gamma,
	}
	hdr.Element[0] = logimage.LogImageElement{
		Descriptor: descriptor, Depth: *depth, BitsPerSample: *bits,
		Packing: logimage.Packing(*packing), Transfer: transfer,
		RefLowData: refBlack, RefHighData: refWhite,
	}

	cellH := int(float64(*cell) * float64(*height) / float64(*width))
	rows := (len(inPaths) + *cols - 1) / *cols
	sheet := image.NewRGBA(image.Rect(0, 0, *cols*(*cell), rows*cellH))

	for idx, path := range inPaths {
		f, err := logimage.Open(path, hdr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logimagecontact: %s: %v\n", path, err)
			continue
		}
		rgba, err := f.GetDataRGBA(false)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logimagecontact: %s: %v\n", path, err)
			continue
		}

		full := rgbaFloatToImage(rgba, *width, *height)
		thumb := resize.Resize(uint(*cell), uint(cellH), full, resize.Lanczos3)

		col := idx % *cols
		row := idx / *cols
		origin := image.Pt(col**cell, row*cellH)
		drawInto(sheet, thumb, origin)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logimagecontact: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := png.Encode(out, sheet); err != nil {
		fmt.Fprintf(os.Stderr, "logimagecontact: %v\n", err)
		os.Exit(1)
	}
}

func drawInto(dst *image.RGBA, src image.Image, origin image.Point) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(origin.X+x-b.Min.X, origin.Y+y-b.Min.Y, src.At(x, y))
		}
	}
}

func rgbaFloatToImage(rgba []float32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			img.SetRGBA(x, y, color.RGBA{
				R: to8(rgba[i]),
				G: to8(rgba[i+1]),
				B: to8(rgba[i+2]),
				A: to8(rgba[i+3]),
			})
		}
	}
	return img
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
