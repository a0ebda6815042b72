package resize

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

type Resizer struct {
	interp resize.InterpolationFunction
}

func NewResizer() *Resizer {
	return &Resizer{
		interp: resize.Bicubic,
	}
}

// Resize fits img into the maxWidth x maxHeight box keeping its aspect ratio.
// A bound <= 0 is treated as absent and defaults to the source dimension.
func (r *Resizer) Resize(img image.Image, maxWidth, maxHeight int) image.Image {
	w, h := r.FitSize(img.Bounds(), maxWidth, maxHeight)
	sz := img.Bounds()
	if w == sz.Dx() && h == sz.Dy() {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, r.interp)
}

// FitSize returns the dimensions Resize would produce for an image of size sz.
func (r *Resizer) FitSize(sz image.Rectangle, maxWidth, maxHeight int) (int, int) {
	srcw, srch := sz.Dx(), sz.Dy()
	if srcw == 0 || srch == 0 {
		return srcw, srch
	}
	if maxWidth <= 0 {
		maxWidth = srcw
	}
	if maxHeight <= 0 {
		maxHeight = srch
	}

	ratio := math.Min(float64(maxWidth)/float64(srcw), float64(maxHeight)/float64(srch))
	neww := int(math.Round(float64(srcw) * ratio))
	newh := int(math.Round(float64(srch) * ratio))
	return max(1, neww), max(1, newh)
}
