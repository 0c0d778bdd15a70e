package pageflow

import "image"

// Image is an image block pre-scaled to fixed page-unit dimensions. The
// pixel data is handed to the RenderTarget untouched; scaling to device
// space is the target's concern.
type Image struct {
	img image.Image
	dim Dim
}

// NewImage creates an image block occupying dim. Negative components are
// clamped to zero.
func NewImage(img image.Image, dim Dim) *Image {
	return &Image{img: img, dim: NewDim(dim.Width, dim.Height)}
}

// NewImageScaledToWidth creates an image block width page units wide, with
// the height derived from the source's aspect ratio.
func NewImageScaledToWidth(img image.Image, width float64) *Image {
	b := img.Bounds()
	var height float64
	if b.Dx() > 0 {
		height = width * float64(b.Dy()) / float64(b.Dx())
	}
	return NewImage(img, Dim{Width: width, Height: height})
}

// Dim returns the block's fixed dimensions.
func (i *Image) Dim() Dim { return i.dim }

// Measure returns the fixed dimensions regardless of maxWidth; an image does
// not reflow.
func (i *Image) Measure(maxWidth float64) Dim { return i.dim }

// Render emits a single image draw and returns the bottom-right corner of
// the block.
func (i *Image) Render(rt RenderTarget, topLeft Offset, outer Dim) Offset {
	rt.DrawImage(topLeft, i.dim, i.img)
	return Offset{X: topLeft.X + i.dim.Width, Y: topLeft.Y - i.dim.Height}
}
