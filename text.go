package pageflow

import "strings"

// Text is a styled string wrapped into lines at whitespace boundaries. Line
// breaking consults the style's FontMetrics; a single word wider than the
// available width is not split and overflows.
type Text struct {
	style TextStyle
	text  string
}

// NewText creates a text run with the given style.
func NewText(style TextStyle, s string) *Text {
	return &Text{style: style, text: s}
}

// Style returns the run's text style.
func (t *Text) Style() TextStyle { return t.style }

// String returns the raw, unwrapped text.
func (t *Text) String() string { return t.text }

type textLine struct {
	text  string
	width float64
}

// wrap greedily fills lines up to maxWidth. With maxWidth <= 0 it degrades
// to one word per line instead of erroring, since layout passes may probe
// boundary widths.
func (t *Text) wrap(maxWidth float64) []textLine {
	words := strings.Fields(t.text)
	if len(words) == 0 {
		return nil
	}
	var lines []textLine
	flush := func(s string) {
		lines = append(lines, textLine{text: s, width: t.style.StringWidth(s)})
	}
	if maxWidth <= 0 {
		for _, w := range words {
			flush(w)
		}
		return lines
	}
	cur := words[0]
	for _, w := range words[1:] {
		cand := cur + " " + w
		if t.style.StringWidth(cand) <= maxWidth {
			cur = cand
			continue
		}
		flush(cur)
		cur = w
	}
	flush(cur)
	return lines
}

// Measure returns the block occupied by the wrapped lines: the widest line
// by the line count times the line height. An empty string measures zero.
func (t *Text) Measure(maxWidth float64) Dim {
	lines := t.wrap(maxWidth)
	if len(lines) == 0 {
		return DimZero
	}
	var widest float64
	for _, ln := range lines {
		if ln.width > widest {
			widest = ln.width
		}
	}
	return Dim{Width: widest, Height: float64(len(lines)) * t.style.LineHeight}
}

// Render paints each wrapped line at successive vertical offsets, advancing
// by the line height, and returns the offset just below the last line.
func (t *Text) Render(rt RenderTarget, topLeft Offset, outer Dim) Offset {
	lines := t.wrap(outer.Width)
	pos := topLeft
	var widest float64
	for _, ln := range lines {
		rt.DrawText(pos, t.style, ln.text)
		pos = pos.Below(t.style.LineHeight)
		if ln.width > widest {
			widest = ln.width
		}
	}
	return Offset{X: topLeft.X + widest, Y: pos.Y}
}
