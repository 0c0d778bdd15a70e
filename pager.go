package pageflow

// Pager is the built-in PageManager. It tracks a vertical cursor on the
// active page, hands out areas for blocks that fit, and starts a new page
// when one does not. Pages are unbounded unless capped with WithMaxPages;
// hitting the cap is a fatal error surfaced to the caller, never retried.
type Pager struct {
	pageWidth  float64
	pageHeight float64
	margins    Padding
	maxPages   int

	page    int
	cursorY float64
}

// NewPager creates a pager. Defaults are A4 in points with half-inch
// margins and no page cap.
//
// Example:
//
//	pager := pageflow.NewPager(
//	    pageflow.WithPageSize(595.28, 841.89),
//	    pageflow.WithMargins(pageflow.UniformPadding(36)),
//	)
func NewPager(opts ...PagerOption) *Pager {
	cfg := &pagerConfig{
		pageWidth:  595.28,
		pageHeight: 841.89,
		margins:    UniformPadding(36),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	p := &Pager{
		pageWidth:  cfg.pageWidth,
		pageHeight: cfg.pageHeight,
		margins:    cfg.margins,
		maxPages:   cfg.maxPages,
		page:       1,
	}
	p.cursorY = p.top()
	return p
}

func (p *Pager) top() float64    { return p.pageHeight - p.margins.Top }
func (p *Pager) bottom() float64 { return p.margins.Bottom }

func (p *Pager) usableWidth() float64 {
	w := p.pageWidth - p.margins.Horiz()
	if w < 0 {
		w = 0
	}
	return w
}

// PageDim returns the full page dimensions.
func (p *Pager) PageDim() Dim {
	return Dim{Width: p.pageWidth, Height: p.pageHeight}
}

// UsableDim returns the page dimensions shrunk by the margins.
func (p *Pager) UsableDim() Dim {
	return NewDim(p.pageWidth-p.margins.Horiz(), p.pageHeight-p.margins.Vert())
}

// CurrentPage returns the 1-based number of the active page.
func (p *Pager) CurrentPage() int { return p.page }

// Remaining returns the vertical space left between the cursor and the
// bottom margin of the active page.
func (p *Pager) Remaining() float64 { return p.cursorY - p.bottom() }

// Reserve claims height units of vertical space and returns the area the
// caller may draw into, starting a new page first when the current one has
// no room. The returned area always starts at the pre-advance cursor and
// extends to the bottom margin, so a fresh page yields its full usable
// area. A block taller than an entire page is handed the full page rather
// than triggering an endless run of empty pages.
func (p *Pager) Reserve(height float64) (Area, error) {
	if height < 0 {
		return Area{}, newLayoutError("Reserve", ErrInvalidParam)
	}
	if height > p.Remaining() && p.cursorY < p.top() {
		if p.maxPages > 0 && p.page >= p.maxPages {
			return Area{}, newLayoutError("Reserve", ErrPageLimit)
		}
		p.page++
		p.cursorY = p.top()
	}
	area := Area{
		TopLeft: Offset{X: p.margins.Left, Y: p.cursorY},
		Dim:     Dim{Width: p.usableWidth(), Height: p.Remaining()},
	}
	p.cursorY -= height
	if p.cursorY < p.bottom() {
		p.cursorY = p.bottom()
	}
	return area, nil
}
