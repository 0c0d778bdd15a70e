package pageflow

import "image"

// Renderable is the contract every layoutable content unit implements.
//
// Measure reports the dimensions the unit would occupy if constrained to at
// most maxWidth. It is a pure function of maxWidth and may be memoized.
// Degenerate widths (zero or negative) must degrade to a small or empty
// result, never panic: intermediate layout passes legitimately probe
// boundary widths.
//
// Render paints the unit with its top-left corner at topLeft, constrained to
// outer, and returns the bottom-right offset actually consumed. The returned
// y can sit above the requested bottom when the content is shorter than
// outer.Height, and below it when a page break inside nested content forced
// the caller to pass an undersized outer.
type Renderable interface {
	Measure(maxWidth float64) Dim
	Render(t RenderTarget, topLeft Offset, outer Dim) Offset
}

// RenderTarget accepts drawing commands from the layout engine. All
// coordinates are in page units with the package's y-up convention; the
// implementation owns the mapping to its own device space.
type RenderTarget interface {
	// FillRect fills the rectangle extending right and down from topLeft.
	FillRect(topLeft Offset, dim Dim, color RGBColor)
	// DrawLine draws a straight line between two points.
	DrawLine(x1, y1, x2, y2 float64, style LineStyle)
	// DrawText paints one already-wrapped line with its top-left at pos.
	DrawText(pos Offset, style TextStyle, line string)
	// DrawImage paints img scaled into the box extending right and down
	// from topLeft.
	DrawImage(topLeft Offset, dim Dim, img image.Image)
}

// FontMetrics supplies rendered string widths for a font at a size. It is
// consulted only by the text component, for line wrapping.
type FontMetrics interface {
	StringWidth(font FontSpec, size float64, s string) float64
}

// Area is a usable region on a page, handed out by a PageManager.
type Area struct {
	TopLeft Offset
	Dim     Dim
}

// PageManager tracks the vertical cursor on the active page and decides
// whether an upcoming block still fits. It is consulted by top-level drivers
// between blocks; the layout recursion itself stays page-agnostic.
type PageManager interface {
	// Reserve claims height units of vertical space. If the current page
	// has room, it returns the remaining area starting at the cursor and
	// advances the cursor. Otherwise it starts a new page, resets the
	// cursor to the page's top, returns the fresh page's full usable area,
	// and advances the cursor by height (clamped to the page). Inability
	// to produce a new page is a fatal error surfaced to the caller.
	Reserve(height float64) (Area, error)
	// CurrentPage returns the 1-based number of the active page.
	CurrentPage() int
	// Remaining returns the vertical space left on the active page.
	Remaining() float64
}
