package pageflow

// PagerOption is a functional option for configuring a new Pager via
// NewPager.
type PagerOption func(*pagerConfig)

type pagerConfig struct {
	pageWidth  float64
	pageHeight float64
	margins    Padding
	maxPages   int
}

// WithPageSize sets the page dimensions in page units.
func WithPageSize(width, height float64) PagerOption {
	return func(c *pagerConfig) {
		c.pageWidth = width
		c.pageHeight = height
	}
}

// WithMargins sets the page margins. The usable area of every page is the
// page size shrunk by these insets.
func WithMargins(m Padding) PagerOption {
	return func(c *pagerConfig) {
		c.margins = m
	}
}

// WithMaxPages caps the number of pages the pager may emit. Reserving space
// past the cap fails with ErrPageLimit. Zero (the default) means unlimited.
func WithMaxPages(n int) PagerOption {
	return func(c *pagerConfig) {
		c.maxPages = n
	}
}
