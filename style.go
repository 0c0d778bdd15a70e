package pageflow

// RGBColor represents an RGB color value with 0-255 components.
type RGBColor struct {
	R, G, B int
}

// FontSpec identifies a font to the collaborating FontMetrics and
// RenderTarget implementations. The core never opens font files.
type FontSpec struct {
	Family string
	Style  string // "", "B", "I", "BI"
}

// LineStyle defines the appearance of a single drawn line.
type LineStyle struct {
	Width float64
	Color RGBColor
}

// BorderStyle defines up to four cell edges. A nil edge is not drawn.
type BorderStyle struct {
	Top, Right, Bottom, Left *LineStyle
}

// UniformBorder returns a BorderStyle drawing the same line on all four
// edges.
func UniformBorder(ls LineStyle) *BorderStyle {
	return &BorderStyle{Top: &ls, Right: &ls, Bottom: &ls, Left: &ls}
}

// HAlign is a horizontal alignment within an enclosing area.
type HAlign int

const (
	Left HAlign = iota
	Center
	Right
)

// VAlign is a vertical alignment within an enclosing area.
type VAlign int

const (
	Top VAlign = iota
	Middle
	Bottom
)

// Align combines a horizontal and a vertical alignment.
type Align struct {
	H HAlign
	V VAlign
}

// The nine CSS-like alignment combinations.
var (
	TopLeft      = Align{Left, Top}
	TopCenter    = Align{Center, Top}
	TopRight     = Align{Right, Top}
	MiddleLeft   = Align{Left, Middle}
	MiddleCenter = Align{Center, Middle}
	MiddleRight  = Align{Right, Middle}
	BottomLeft   = Align{Left, Bottom}
	BottomCenter = Align{Center, Bottom}
	BottomRight  = Align{Right, Bottom}
)

// CalcOffset returns how far a block of size block must be shifted from the
// top-left of an area of size inner to satisfy the alignment. The X component
// shifts right, the Y component shifts down the page. Surplus space is never
// negative: a block larger than the area stays pinned to the top-left.
func (a Align) CalcOffset(inner, block Dim) Offset {
	spareW := inner.Width - block.Width
	if spareW < 0 {
		spareW = 0
	}
	spareH := inner.Height - block.Height
	if spareH < 0 {
		spareH = 0
	}
	var o Offset
	switch a.H {
	case Center:
		o.X = spareW / 2
	case Right:
		o.X = spareW
	}
	switch a.V {
	case Middle:
		o.Y = spareH / 2
	case Bottom:
		o.Y = spareH
	}
	return o
}

// LeftOffset returns the horizontal shift placing a row of width rowWidth
// inside a block of width blockWidth according to the horizontal component.
func (a Align) LeftOffset(blockWidth, rowWidth float64) float64 {
	spare := blockWidth - rowWidth
	if spare <= 0 {
		return 0
	}
	switch a.H {
	case Center:
		return spare / 2
	case Right:
		return spare
	}
	return 0
}

// CellStyle defines the visual appearance of a cell: padding inside its
// fixed width, an optional background fill, an optional border, and the
// alignment of the stacked content block. Nil padding and nil border mean
// "absent" and skip the respective geometry and draws entirely.
type CellStyle struct {
	Padding   *Padding
	FillColor *RGBColor
	Border    *BorderStyle
	Align     Align
}

// TextStyle carries everything a text run needs to wrap and paint itself.
// Metrics supplies glyph widths; it is the only collaborator the text
// component consults.
type TextStyle struct {
	Font       FontSpec
	Size       float64 // in page units
	LineHeight float64 // vertical advance per line, in page units
	Color      RGBColor
	Metrics    FontMetrics
}

// StringWidth returns the rendered width of s in this style, or 0 when no
// metrics source is configured.
func (ts TextStyle) StringWidth(s string) float64 {
	if ts.Metrics == nil {
		return 0
	}
	return ts.Metrics.StringWidth(ts.Font, ts.Size, s)
}
