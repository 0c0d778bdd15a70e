package pageflow

// Table drives a sequence of rows through a PageManager. It reserves space
// per row, breaks to a new page when a row no longer fits, and replays
// header rows at the top of every page it spills onto. The page-break
// decision lives here, between rows; the cells' own measure/render
// recursion stays page-agnostic.
type Table struct {
	rows       []*TableRow
	headerRows int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow appends a body row.
func (t *Table) AddRow(r *TableRow) *Table {
	if r != nil {
		t.rows = append(t.rows, r)
	}
	return t
}

// AddHeaderRow appends a header row. Header rows are rendered before any
// body rows and repeated at the top of each new page.
func (t *Table) AddHeaderRow(r *TableRow) *Table {
	if r == nil {
		return t
	}
	// Headers sit before body rows regardless of insertion order.
	t.rows = append(t.rows, nil)
	copy(t.rows[t.headerRows+1:], t.rows[t.headerRows:])
	t.rows[t.headerRows] = r
	t.headerRows++
	return t
}

// Render lays the table out through pm and paints it onto target. It
// returns the bottom-right offset of the last row rendered.
func (t *Table) Render(target RenderTarget, pm PageManager) (Offset, error) {
	headers := t.rows[:t.headerRows]
	body := t.rows[t.headerRows:]

	var headerH float64
	for _, hr := range headers {
		headerH += hr.Measure(0).Height
	}

	var last Offset
	renderHeaders := func(top Offset) Offset {
		for _, hr := range headers {
			hd := hr.Measure(0)
			last = hr.Render(target, top, hd)
			top = top.Below(hd.Height)
		}
		return top
	}

	// Headers on the first page.
	if t.headerRows > 0 {
		area, err := pm.Reserve(headerH)
		if err != nil {
			return last, err
		}
		renderHeaders(area.TopLeft)
	}

	page := pm.CurrentPage()
	for _, r := range body {
		d := r.Measure(0)

		// If the row will trip a page break, reserve room for the header
		// replay along with it so both land on the fresh page together.
		need := d.Height
		if t.headerRows > 0 && pm.Remaining() < d.Height {
			need += headerH
		}
		area, err := pm.Reserve(need)
		if err != nil {
			return last, err
		}

		top := area.TopLeft
		if pg := pm.CurrentPage(); pg != page {
			page = pg
			if t.headerRows > 0 {
				top = renderHeaders(top)
			}
		}
		last = r.Render(target, top, d)
	}

	return last, nil
}
