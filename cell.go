package pageflow

// Cell is a styled layout block with a pre-set horizontal width. Its height
// is calculated from how the contents wrap within that width. Contents stack
// vertically in list order; nil entries are tolerated and skipped, so
// callers can conditionally omit content without filtering.
//
// A cell is built once and then immutable except for its measurement cache,
// which memoizes per-child layout keyed by the available width. The cache is
// never invalidated and is not safe for concurrent use; a renderable tree is
// driven by a single caller.
type Cell struct {
	style    CellStyle
	width    float64
	contents []Renderable

	// widthCache holds one layout per distinct width queried; layout is
	// recomputed only when a previously unseen width appears.
	widthCache map[float64]*cellCalc
}

type itemCalc struct {
	item Renderable
	dim  Dim
}

type cellCalc struct {
	items []itemCalc
	block Dim // stacked children: max width, summed height
}

// NewCell creates a cell with the given style, fixed width, and contents.
// A negative width fails with ErrNegativeWidth.
func NewCell(style CellStyle, width float64, contents ...Renderable) (*Cell, error) {
	if width < 0 {
		return nil, newLayoutError("NewCell", ErrNegativeWidth)
	}
	cs := make([]Renderable, len(contents))
	copy(cs, contents)
	return &Cell{
		style:      style,
		width:      width,
		contents:   cs,
		widthCache: make(map[float64]*cellCalc),
	}, nil
}

// NewTextCell creates a cell holding a single styled text run.
func NewTextCell(style CellStyle, width float64, ts TextStyle, s string) (*Cell, error) {
	return NewCell(style, width, NewText(ts, s))
}

// Style returns the cell's style.
func (c *Cell) Style() CellStyle { return c.style }

// Width returns the cell's fixed width.
func (c *Cell) Width() float64 { return c.width }

// calc returns the memoized layout for maxWidth, computing it on first use.
func (c *Cell) calc(maxWidth float64) *cellCalc {
	if pc, ok := c.widthCache[maxWidth]; ok {
		return pc
	}
	innerWidth := maxWidth
	if p := c.style.Padding; p != nil {
		innerWidth -= p.Horiz()
		if innerWidth < 0 {
			innerWidth = 0
		}
	}
	pc := &cellCalc{items: make([]itemCalc, 0, len(c.contents))}
	for _, item := range c.contents {
		d := DimZero
		if item != nil {
			d = item.Measure(innerWidth)
		}
		if d.Width > pc.block.Width {
			pc.block.Width = d.Width
		}
		pc.block.Height += d.Height
		pc.items = append(pc.items, itemCalc{item: item, dim: d})
	}
	c.widthCache[maxWidth] = pc
	return pc
}

// Measure returns the outer dimensions the cell occupies at maxWidth: the
// stacked content block expanded by padding, if any.
func (c *Cell) Measure(maxWidth float64) Dim {
	block := c.calc(maxWidth).block
	if p := c.style.Padding; p != nil {
		return p.AddTo(block)
	}
	return block
}

// Render paints the cell at outerTopLeft constrained to outer and returns
// the bottom-right corner of the last content drawn. Draw order is
// load-bearing: background first, contents over it, border last so its
// strokes cover content that touches the edge.
func (c *Cell) Render(t RenderTarget, outerTopLeft Offset, outer Dim) Offset {
	pc := c.calc(outer.Width)

	if c.style.FillColor != nil {
		t.FillRect(outerTopLeft, outer, *c.style.FillColor)
	}

	innerTopLeft := outerTopLeft
	innerDim := outer
	if p := c.style.Padding; p != nil {
		innerTopLeft = p.ApplyTopLeft(outerTopLeft)
		innerDim = p.SubtractFrom(outer)
	}

	// Align the whole stacked block within the padded area, not each child
	// independently.
	block := pc.block
	shift := c.style.Align.CalcOffset(innerDim, block)
	innerTopLeft = Offset{X: innerTopLeft.X + shift.X, Y: innerTopLeft.Y - shift.Y}

	lowerRight := innerTopLeft
	for _, it := range pc.items {
		if it.item == nil {
			continue
		}
		rowX := c.style.Align.LeftOffset(block.Width, it.dim.Width)
		lowerRight = it.item.Render(t, innerTopLeft.WithX(innerTopLeft.X+rowX), it.dim)
		// Advance to the bottom actually rendered, not the measured height:
		// nested content that hit a page break can come back shorter or
		// longer. X stays at the unshifted inner edge.
		innerTopLeft = Offset{X: innerTopLeft.X, Y: lowerRight.Y}
	}

	if b := c.style.Border; b != nil {
		origX := outerTopLeft.X
		origY := outerTopLeft.Y
		rightX := outerTopLeft.X + outer.Width

		// When the contents overflow the requested height (a page break
		// inside the cell made the caller pass an undersized outer), the
		// bottom border follows the real content bottom. The background
		// fill and sibling cells in the same row are not adjusted the same
		// way, so a visual mismatch can remain; that is a known limitation
		// of this correction, not something to compensate for elsewhere.
		bottomY := outerTopLeft.Y - outer.Height
		if lowerRight.Y < bottomY {
			bottomY = lowerRight.Y
		}

		// Edge order is top, right, bottom, left, as in CSS.
		if b.Top != nil {
			t.DrawLine(origX, origY, rightX, origY, *b.Top)
		}
		if b.Right != nil {
			t.DrawLine(rightX, origY, rightX, bottomY, *b.Right)
		}
		if b.Bottom != nil {
			t.DrawLine(origX, bottomY, rightX, bottomY, *b.Bottom)
		}
		if b.Left != nil {
			t.DrawLine(origX, origY, origX, bottomY, *b.Left)
		}
	}

	return lowerRight
}

// CellBuilder is a mutable builder for immutable cells. Errors detected
// while adding (a negative width, raw strings without a default text style)
// stick to the builder and surface from Build.
type CellBuilder struct {
	width     float64
	style     CellStyle
	contents  []Renderable
	textStyle *TextStyle
	err       error
}

// NewCellBuilder starts a builder with the given style and fixed width.
func NewCellBuilder(style CellStyle, width float64) *CellBuilder {
	b := &CellBuilder{width: width, style: style}
	if width < 0 {
		b.err = ErrNegativeWidth
	}
	return b
}

// CellStyle replaces the builder's cell style.
func (b *CellBuilder) CellStyle(cs CellStyle) *CellBuilder {
	b.style = cs
	return b
}

// Align sets the content alignment on the builder's style.
func (b *CellBuilder) Align(a Align) *CellBuilder {
	b.style.Align = a
	return b
}

// TextStyle sets the default text style used by AddStrings.
func (b *CellBuilder) TextStyle(ts TextStyle) *CellBuilder {
	b.textStyle = &ts
	return b
}

// Add appends renderables to the cell's contents.
func (b *CellBuilder) Add(rs ...Renderable) *CellBuilder {
	b.contents = append(b.contents, rs...)
	return b
}

// AddText appends one text run per string, all in the given style.
func (b *CellBuilder) AddText(ts TextStyle, ss ...string) *CellBuilder {
	for _, s := range ss {
		b.contents = append(b.contents, NewText(ts, s))
	}
	return b
}

// AddStrings appends one text run per string in the default text style set
// via TextStyle. Calling it before a default style is set is an error.
func (b *CellBuilder) AddStrings(ss ...string) *CellBuilder {
	if b.textStyle == nil {
		if b.err == nil {
			b.err = ErrNoTextStyle
		}
		return b
	}
	return b.AddText(*b.textStyle, ss...)
}

// Width returns the width the cell will be built with.
func (b *CellBuilder) Width() float64 { return b.width }

// Err returns the first error recorded by the builder, if any.
func (b *CellBuilder) Err() error { return b.err }

// Build freezes the builder into a Cell.
func (b *CellBuilder) Build() (*Cell, error) {
	if b.err != nil {
		return nil, newLayoutError("Build", b.err)
	}
	return NewCell(b.style, b.width, b.contents...)
}
