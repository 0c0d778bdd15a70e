// Package raster implements the pageflow RenderTarget and FontMetrics
// contracts on top of an in-memory RGBA canvas. It exists for previews,
// golden-image inspection, and tests; a production backend (PDF writer,
// print spooler) would supply its own RenderTarget instead.
//
// One page unit maps to one pixel. Page space is y-up while image space is
// y-down, so every incoming y is flipped against the page height here and
// nowhere else.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lvillar/pageflow"
)

// Target rasterizes layout draw commands onto a single page image.
type Target struct {
	img  *image.RGBA
	face font.Face
}

// New creates a white page of the given pixel size drawing text with the
// built-in fixed-width face.
func New(width, height int) *Target {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Target{img: img, face: basicfont.Face7x13}
}

// SetFace replaces the font face used for text drawing.
func (t *Target) SetFace(face font.Face) { t.face = face }

// Image returns the page canvas.
func (t *Target) Image() *image.RGBA { return t.img }

// devY flips a page-space y (y-up) into image space (y-down).
func (t *Target) devY(y float64) int {
	return t.img.Bounds().Dy() - int(math.Round(y))
}

func rgba(c pageflow.RGBColor) color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

// FillRect fills the rectangle extending right and down from topLeft.
func (t *Target) FillRect(topLeft pageflow.Offset, dim pageflow.Dim, c pageflow.RGBColor) {
	x0 := int(math.Round(topLeft.X))
	y0 := t.devY(topLeft.Y)
	r := image.Rect(x0, y0, x0+int(math.Round(dim.Width)), y0+int(math.Round(dim.Height)))
	draw.Draw(t.img, r, image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

// DrawLine draws a line of the style's width. Axis-aligned lines, the only
// kind borders produce, are filled as thin rectangles; anything else falls
// back to stepping pixels.
func (t *Target) DrawLine(x1, y1, x2, y2 float64, style pageflow.LineStyle) {
	w := int(math.Round(style.Width))
	if w < 1 {
		w = 1
	}
	src := image.NewUniform(rgba(style.Color))
	switch {
	case y1 == y2:
		xa, xb := int(math.Round(math.Min(x1, x2))), int(math.Round(math.Max(x1, x2)))
		y := t.devY(y1)
		draw.Draw(t.img, image.Rect(xa, y-w/2, xb, y-w/2+w), src, image.Point{}, draw.Src)
	case x1 == x2:
		ya, yb := t.devY(math.Max(y1, y2)), t.devY(math.Min(y1, y2))
		x := int(math.Round(x1))
		draw.Draw(t.img, image.Rect(x-w/2, ya, x-w/2+w, yb), src, image.Point{}, draw.Src)
	default:
		steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1)))
		if steps < 1 {
			steps = 1
		}
		col := rgba(style.Color)
		for i := 0; i <= steps; i++ {
			f := float64(i) / float64(steps)
			x := int(math.Round(x1 + (x2-x1)*f))
			y := t.devY(y1 + (y2-y1)*f)
			t.img.SetRGBA(x, y, col)
		}
	}
}

// DrawText paints one wrapped line with its top-left at pos.
func (t *Target) DrawText(pos pageflow.Offset, style pageflow.TextStyle, line string) {
	m := t.face.Metrics()
	d := &font.Drawer{
		Dst:  t.img,
		Src:  image.NewUniform(rgba(style.Color)),
		Face: t.face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(math.Round(pos.X))),
			Y: fixed.I(t.devY(pos.Y)) + m.Ascent,
		},
	}
	d.DrawString(line)
}

// DrawImage scales img into the box extending right and down from topLeft.
func (t *Target) DrawImage(topLeft pageflow.Offset, dim pageflow.Dim, img image.Image) {
	x0 := int(math.Round(topLeft.X))
	y0 := t.devY(topLeft.Y)
	r := image.Rect(x0, y0, x0+int(math.Round(dim.Width)), y0+int(math.Round(dim.Height)))
	xdraw.ApproxBiLinear.Scale(t.img, r, img, img.Bounds(), xdraw.Over, nil)
}

// FaceMetrics adapts a font.Face into the glyph-width source the text
// component wraps against. The face's pixel advances are used as page
// units, matching Target's one-unit-per-pixel mapping; FontSpec and size
// are ignored because a Face is already sized.
type FaceMetrics struct {
	face font.Face
}

// NewFaceMetrics wraps face; a nil face falls back to the built-in
// fixed-width one.
func NewFaceMetrics(face font.Face) FaceMetrics {
	if face == nil {
		face = basicfont.Face7x13
	}
	return FaceMetrics{face: face}
}

// StringWidth returns the advance of s in pixels.
func (m FaceMetrics) StringWidth(spec pageflow.FontSpec, size float64, s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}
