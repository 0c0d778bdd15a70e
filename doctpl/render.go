package doctpl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lvillar/pageflow"
	"github.com/lvillar/pageflow/barcode"
)

// Render parses a JSON template and lays it out onto target, measuring text
// with metrics. It returns the number of pages produced.
func Render(target pageflow.RenderTarget, metrics pageflow.FontMetrics, jsonTemplate []byte) (int, error) {
	var doc Document
	if err := json.Unmarshal(jsonTemplate, &doc); err != nil {
		return 0, fmt.Errorf("doctpl: parsing template: %w", err)
	}
	return RenderDocument(target, metrics, &doc)
}

// RenderDocument lays a Document out onto target. Elements flow top to
// bottom through a pager built from the document's page settings; page
// breaks happen wherever an element no longer fits. It returns the number
// of pages produced.
func RenderDocument(target pageflow.RenderTarget, metrics pageflow.FontMetrics, doc *Document) (int, error) {
	pageW := doc.PageWidth
	pageH := doc.PageHeight
	if pageW <= 0 {
		pageW = 595.28 // A4 in points
	}
	if pageH <= 0 {
		pageH = 841.89
	}

	opts := []pageflow.PagerOption{pageflow.WithPageSize(pageW, pageH)}
	if doc.Margin != nil {
		opts = append(opts, pageflow.WithMargins(pageflow.Padding{
			Top:    doc.Margin.Top,
			Right:  doc.Margin.Right,
			Bottom: doc.Margin.Bottom,
			Left:   doc.Margin.Left,
		}))
	}
	if doc.MaxPages > 0 {
		opts = append(opts, pageflow.WithMaxPages(doc.MaxPages))
	}
	pm := pageflow.NewPager(opts...)

	defaultFont := Font{Family: "Helvetica", Size: 11}
	if doc.Font != nil {
		defaultFont = mergeFont(defaultFont, doc.Font)
	}

	r := &renderer{target: target, metrics: metrics, pm: pm}
	for i, elem := range doc.Elements {
		if err := r.renderElement(elem, defaultFont); err != nil {
			return pm.CurrentPage(), fmt.Errorf("doctpl: element %d: %w", i+1, err)
		}
	}
	return pm.CurrentPage(), nil
}

// renderer carries the shared state one document render needs.
type renderer struct {
	target  pageflow.RenderTarget
	metrics pageflow.FontMetrics
	pm      *pageflow.Pager
}

func (r *renderer) renderElement(elem Element, defaultFont Font) error {
	switch elem.Type {
	case "heading":
		return r.renderHeading(elem, defaultFont)
	case "paragraph", "text":
		return r.renderParagraph(elem, defaultFont)
	case "table":
		return r.renderTable(elem, defaultFont)
	case "barcode":
		return r.renderBarcode(elem)
	case "spacer":
		return r.renderSpacer(elem)
	case "hr":
		return r.renderHR(elem)
	case "list":
		return r.renderList(elem, defaultFont)
	default:
		return fmt.Errorf("unknown element type %q", elem.Type)
	}
}

// flow measures block at width, reserves the vertical space through the
// pager, and renders it at the reserved spot.
func (r *renderer) flow(block pageflow.Renderable, width float64) error {
	d := block.Measure(width)
	area, err := r.pm.Reserve(d.Height)
	if err != nil {
		return err
	}
	block.Render(r.target, area.TopLeft, pageflow.Dim{Width: width, Height: d.Height})
	return nil
}

// space advances the cursor without drawing anything.
func (r *renderer) space(h float64) error {
	_, err := r.pm.Reserve(h)
	return err
}

func (r *renderer) renderHeading(elem Element, defaultFont Font) error {
	level := elem.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	// Heading sizes: h1=24, h2=20, h3=16, h4=14, h5=12, h6=11
	sizes := []float64{24, 20, 16, 14, 12, 11}
	font := Font{Family: defaultFont.Family, Style: "B", Size: sizes[level-1]}
	font = mergeFont(font, elem.Font)

	before := font.Size * 0.3
	if level <= 2 {
		before = font.Size * 0.4
	}
	if err := r.space(before); err != nil {
		return err
	}

	cell, err := pageflow.NewTextCell(
		pageflow.CellStyle{Align: parseAlign(elem.Align)},
		r.pm.UsableDim().Width,
		r.textStyle(font, elem.Color),
		elem.Text,
	)
	if err != nil {
		return err
	}
	if err := r.flow(cell, cell.Width()); err != nil {
		return err
	}
	return r.space(font.Size * 0.2)
}

func (r *renderer) renderParagraph(elem Element, defaultFont Font) error {
	font := mergeFont(defaultFont, elem.Font)
	cell, err := pageflow.NewTextCell(
		pageflow.CellStyle{Align: parseAlign(elem.Align)},
		r.pm.UsableDim().Width,
		r.textStyle(font, elem.Color),
		elem.Text,
	)
	if err != nil {
		return err
	}
	if err := r.flow(cell, cell.Width()); err != nil {
		return err
	}
	return r.space(font.Size * 0.3)
}

func (r *renderer) renderTable(elem Element, defaultFont Font) error {
	cols := len(elem.Columns)
	if cols == 0 {
		if len(elem.Rows) == 0 {
			return nil
		}
		cols = len(elem.Rows[0])
	}
	if cols == 0 {
		return nil
	}
	widths := columnWidths(elem.Columns, cols, r.pm.UsableDim().Width)

	padSize := elem.CellPadding
	if padSize == 0 {
		padSize = 2
	}
	pad := pageflow.UniformPadding(padSize)

	tbl := pageflow.NewTable()

	// Header row, filled and bold, repeated on every page the table spills
	// onto.
	if len(elem.Columns) > 0 {
		headerFill := pageflow.RGBColor{R: 63, G: 81, B: 181}
		if elem.HeaderFill != nil {
			headerFill = rgb(*elem.HeaderFill)
		}
		hfont := Font{Family: defaultFont.Family, Style: "B", Size: defaultFont.Size, LineHeight: defaultFont.LineHeight}
		hstyle := r.textStyle(hfont, &Color{R: 255, G: 255, B: 255})

		hr := pageflow.NewRow()
		for i, c := range elem.Columns {
			cell, err := pageflow.NewTextCell(pageflow.CellStyle{
				Padding:   &pad,
				FillColor: &headerFill,
				Align:     parseAlign(c.Align),
			}, widths[i], hstyle, c.Header)
			if err != nil {
				return err
			}
			hr.AddCells(cell)
		}
		tbl.AddHeaderRow(hr)
	}

	bodyStyle := r.textStyle(defaultFont, nil)
	altFill := pageflow.RGBColor{R: 245, G: 245, B: 245}
	for ri, row := range elem.Rows {
		tr := pageflow.NewRow()
		for ci, text := range row {
			if ci >= cols {
				break
			}
			cs := pageflow.CellStyle{Padding: &pad}
			if ri%2 == 1 {
				cs.FillColor = &altFill
			}
			if ci < len(elem.Columns) {
				cs.Align = parseAlign(elem.Columns[ci].Align)
			}
			cell, err := pageflow.NewTextCell(cs, widths[ci], bodyStyle, text)
			if err != nil {
				return err
			}
			tr.AddCells(cell)
		}
		tbl.AddRow(tr)
	}

	if err := r.space(2); err != nil {
		return err
	}
	_, err := tbl.Render(r.target, r.pm)
	return err
}

func (r *renderer) renderBarcode(elem Element) error {
	b := elem.Barcode
	if b == nil {
		return fmt.Errorf("barcode element requires 'barcode' field")
	}
	dim := pageflow.Dim{Width: b.Width, Height: b.Height}

	var img *pageflow.Image
	var err error
	switch strings.ToLower(b.Kind) {
	case "code128":
		img, err = barcode.Code128(b.Content, dim)
	case "qr":
		img, err = barcode.QR(b.Content, dim)
	case "pdf417":
		columns := b.Columns
		if columns == 0 {
			columns = 4
		}
		security := b.SecurityLevel
		if security == 0 {
			security = 2
		}
		img, err = barcode.PDF417(b.Content, columns, security, dim)
	default:
		return fmt.Errorf("unknown barcode kind %q", b.Kind)
	}
	if err != nil {
		return err
	}

	// Wrap in a full-width cell so align can place the symbol.
	cell, err := pageflow.NewCell(
		pageflow.CellStyle{Align: parseAlign(elem.Align)},
		r.pm.UsableDim().Width,
		img,
	)
	if err != nil {
		return err
	}
	return r.flow(cell, cell.Width())
}

func (r *renderer) renderSpacer(elem Element) error {
	h := elem.SpacerHeight
	if h == 0 {
		h = 10
	}
	return r.space(h)
}

func (r *renderer) renderHR(elem Element) error {
	area, err := r.pm.Reserve(6)
	if err != nil {
		return err
	}

	lw := elem.LineWidth
	if lw == 0 {
		lw = 0.3
	}
	col := pageflow.RGBColor{R: 180, G: 180, B: 180}
	if elem.Color != nil {
		col = rgb(*elem.Color)
	}

	y := area.TopLeft.Y - 3
	r.target.DrawLine(area.TopLeft.X, y, area.TopLeft.X+area.Dim.Width, y, pageflow.LineStyle{Width: lw, Color: col})
	return nil
}

func (r *renderer) renderList(elem Element, defaultFont Font) error {
	font := mergeFont(defaultFont, elem.Font)
	style := r.textStyle(font, elem.Color)

	bullet := "• "
	if elem.BulletStr != "" {
		bullet = elem.BulletStr + " "
	}

	indent := pageflow.Padding{Left: 10}
	for i, item := range elem.Items {
		prefix := bullet
		if elem.Ordered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		cell, err := pageflow.NewTextCell(
			pageflow.CellStyle{Padding: &indent},
			r.pm.UsableDim().Width,
			style,
			prefix+item,
		)
		if err != nil {
			return err
		}
		if err := r.flow(cell, cell.Width()); err != nil {
			return err
		}
	}
	return r.space(2)
}

// textStyle converts schema font and color into the engine's text style,
// wiring in the shared metrics source. A zero line height defaults to 1.2x
// the font size.
func (r *renderer) textStyle(f Font, c *Color) pageflow.TextStyle {
	lh := f.LineHeight
	if lh == 0 {
		lh = f.Size * 1.2
	}
	ts := pageflow.TextStyle{
		Font:       pageflow.FontSpec{Family: f.Family, Style: f.Style},
		Size:       f.Size,
		LineHeight: lh,
		Metrics:    r.metrics,
	}
	if c != nil {
		ts.Color = rgb(*c)
	}
	return ts
}

// mergeFont overlays the non-zero fields of over on base.
func mergeFont(base Font, over *Font) Font {
	if over == nil {
		return base
	}
	if over.Family != "" {
		base.Family = over.Family
	}
	if over.Style != "" {
		base.Style = over.Style
	}
	if over.Size > 0 {
		base.Size = over.Size
	}
	if over.LineHeight > 0 {
		base.LineHeight = over.LineHeight
	}
	return base
}

// columnWidths resolves per-column widths against the usable page width.
// Columns with an explicit width keep it; the rest share what is left.
func columnWidths(cols []TableColumn, n int, total float64) []float64 {
	widths := make([]float64, n)
	fixed := 0.0
	flex := 0
	for i := 0; i < n; i++ {
		if i < len(cols) && cols[i].Width > 0 {
			widths[i] = cols[i].Width
			fixed += cols[i].Width
		} else {
			flex++
		}
	}
	if flex > 0 {
		share := (total - fixed) / float64(flex)
		if share < 0 {
			share = 0
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

func rgb(c Color) pageflow.RGBColor {
	return pageflow.RGBColor{R: c.R, G: c.G, B: c.B}
}

func parseAlign(s string) pageflow.Align {
	switch strings.ToLower(s) {
	case "center", "c":
		return pageflow.TopCenter
	case "right", "r":
		return pageflow.TopRight
	}
	return pageflow.TopLeft
}
