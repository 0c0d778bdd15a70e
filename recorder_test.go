package pageflow

import "image"

// recorder is a RenderTarget that records every drawing command it receives,
// in order, so tests can assert on exact draw sequences.
type recorder struct {
	ops []any
}

type fillRectOp struct {
	TopLeft Offset
	Dim     Dim
	Color   RGBColor
}

type drawLineOp struct {
	X1, Y1, X2, Y2 float64
	Style          LineStyle
}

type drawTextOp struct {
	Pos  Offset
	Line string
}

type drawImageOp struct {
	TopLeft Offset
	Dim     Dim
}

func (r *recorder) FillRect(topLeft Offset, dim Dim, color RGBColor) {
	r.ops = append(r.ops, fillRectOp{topLeft, dim, color})
}

func (r *recorder) DrawLine(x1, y1, x2, y2 float64, style LineStyle) {
	r.ops = append(r.ops, drawLineOp{x1, y1, x2, y2, style})
}

func (r *recorder) DrawText(pos Offset, style TextStyle, line string) {
	r.ops = append(r.ops, drawTextOp{pos, line})
}

func (r *recorder) DrawImage(topLeft Offset, dim Dim, img image.Image) {
	r.ops = append(r.ops, drawImageOp{topLeft, dim})
}

// texts returns the recorded text lines in draw order.
func (r *recorder) texts() []string {
	var out []string
	for _, op := range r.ops {
		if t, ok := op.(drawTextOp); ok {
			out = append(out, t.Line)
		}
	}
	return out
}

// lines returns the recorded line draws in draw order.
func (r *recorder) lines() []drawLineOp {
	var out []drawLineOp
	for _, op := range r.ops {
		if l, ok := op.(drawLineOp); ok {
			out = append(out, l)
		}
	}
	return out
}

// fixedMetrics measures every rune at a constant advance, which makes
// expected widths trivial to compute in tests.
type fixedMetrics struct {
	charWidth float64
}

func (m fixedMetrics) StringWidth(font FontSpec, size float64, s string) float64 {
	return float64(len([]rune(s))) * m.charWidth
}

// testStyle is a 10-units-per-char, 15-unit-line-height text style.
func testStyle() TextStyle {
	return TextStyle{
		Font:       FontSpec{Family: "Helvetica"},
		Size:       10,
		LineHeight: 15,
		Metrics:    fixedMetrics{charWidth: 10},
	}
}

// block is a fixed-size renderable that counts how often it is measured.
type block struct {
	dim      Dim
	measured int
}

func (b *block) Measure(maxWidth float64) Dim {
	b.measured++
	return b.dim
}

func (b *block) Render(t RenderTarget, topLeft Offset, outer Dim) Offset {
	return Offset{X: topLeft.X + b.dim.Width, Y: topLeft.Y - b.dim.Height}
}

// overflowBlock renders taller than whatever outer height it is given, the
// way nested content continuing after a page break does.
type overflowBlock struct {
	dim      Dim
	overflow float64
}

func (b *overflowBlock) Measure(maxWidth float64) Dim { return b.dim }

func (b *overflowBlock) Render(t RenderTarget, topLeft Offset, outer Dim) Offset {
	return Offset{X: topLeft.X + b.dim.Width, Y: topLeft.Y - outer.Height - b.overflow}
}
