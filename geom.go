package pageflow

// Dim is a width/height pair. Both components are non-negative; use NewDim
// when the inputs are not known to satisfy that.
type Dim struct {
	Width  float64
	Height float64
}

// DimZero is the zero-size dimension.
var DimZero = Dim{}

// NewDim returns a Dim with negative components clamped to zero. Layout
// passes legitimately probe boundary widths, so degenerate geometry degrades
// to empty rather than erroring.
func NewDim(width, height float64) Dim {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Dim{Width: width, Height: height}
}

// IsZero reports whether the dimension has no area on either axis.
func (d Dim) IsZero() bool { return d.Width == 0 && d.Height == 0 }

// Offset locates a point in page space.
type Offset struct {
	X float64
	Y float64
}

// Below returns the offset moved down the page by h. This is the single
// place where "down" is tied to the y-up coordinate convention.
func (o Offset) Below(h float64) Offset {
	return Offset{X: o.X, Y: o.Y - h}
}

// WithX returns the offset with its x component replaced.
func (o Offset) WithX(x float64) Offset {
	return Offset{X: x, Y: o.Y}
}

// Padding is a set of four non-negative insets.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding returns a Padding with the same inset on all four sides.
// Negative values are clamped to zero.
func UniformPadding(v float64) Padding {
	if v < 0 {
		v = 0
	}
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Horiz returns the combined left and right insets.
func (p Padding) Horiz() float64 { return p.Left + p.Right }

// Vert returns the combined top and bottom insets.
func (p Padding) Vert() float64 { return p.Top + p.Bottom }

// AddTo expands d by the padding on all sides.
func (p Padding) AddTo(d Dim) Dim {
	return Dim{Width: d.Width + p.Horiz(), Height: d.Height + p.Vert()}
}

// SubtractFrom shrinks d by the padding on all sides, clamping at zero so
// oversized padding never produces a negative dimension.
func (p Padding) SubtractFrom(d Dim) Dim {
	return NewDim(d.Width-p.Horiz(), d.Height-p.Vert())
}

// ApplyTopLeft moves an outer top-left corner to the padded inner top-left.
func (p Padding) ApplyTopLeft(o Offset) Offset {
	return Offset{X: o.X + p.Left, Y: o.Y - p.Top}
}
