package pageflow

// TableRow is an ordered list of cells sharing a row. Column widths are
// independent and pre-assigned on each cell; the row does not recompute
// them. Row height is the max of the cells' heights; cells shorter than the
// row leave a gap below them — each cell paints its own background and
// border bounded by its own width and the row height, and the row back-fills
// nothing.
type TableRow struct {
	cells []*Cell
}

// NewRow creates a row over the given cells.
func NewRow(cells ...*Cell) *TableRow {
	r := &TableRow{cells: make([]*Cell, 0, len(cells))}
	r.AddCells(cells...)
	return r
}

// AddCells appends cells to the row. Nil cells are skipped.
func (r *TableRow) AddCells(cells ...*Cell) *TableRow {
	for _, c := range cells {
		if c != nil {
			r.cells = append(r.cells, c)
		}
	}
	return r
}

// Width returns the summed fixed widths of the row's cells.
func (r *TableRow) Width() float64 {
	var w float64
	for _, c := range r.cells {
		w += c.Width()
	}
	return w
}

// Measure measures every cell at its own fixed width and aggregates: summed
// widths, max height. maxWidth is ignored; the row's width is fully
// determined by its cells.
func (r *TableRow) Measure(maxWidth float64) Dim {
	var d Dim
	for _, c := range r.cells {
		cd := c.Measure(c.Width())
		d.Width += c.Width()
		if cd.Height > d.Height {
			d.Height = cd.Height
		}
	}
	return d
}

// Render paints each cell side by side at the row height outer.Height and
// returns the bottom-right corner consumed. A cell whose nested content
// overflowed the row height pushes the reported bottom down with it.
func (r *TableRow) Render(t RenderTarget, topLeft Offset, outer Dim) Offset {
	x := topLeft.X
	bottom := topLeft.Y - outer.Height
	for _, c := range r.cells {
		lr := c.Render(t, Offset{X: x, Y: topLeft.Y}, Dim{Width: c.Width(), Height: outer.Height})
		if lr.Y < bottom {
			bottom = lr.Y
		}
		x += c.Width()
	}
	return Offset{X: x, Y: bottom}
}
