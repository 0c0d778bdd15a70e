package pageflow_test

import (
	"fmt"
	"image"

	"github.com/lvillar/pageflow"
)

// printTarget writes each drawing command to stdout, standing in for a real
// drawing backend.
type printTarget struct{}

func (printTarget) FillRect(topLeft pageflow.Offset, dim pageflow.Dim, color pageflow.RGBColor) {
	fmt.Printf("rect %.0fx%.0f at (%.0f,%.0f)\n", dim.Width, dim.Height, topLeft.X, topLeft.Y)
}

func (printTarget) DrawLine(x1, y1, x2, y2 float64, style pageflow.LineStyle) {
	fmt.Printf("line (%.0f,%.0f)-(%.0f,%.0f)\n", x1, y1, x2, y2)
}

func (printTarget) DrawText(pos pageflow.Offset, style pageflow.TextStyle, line string) {
	fmt.Printf("text %q at (%.0f,%.0f)\n", line, pos.X, pos.Y)
}

func (printTarget) DrawImage(topLeft pageflow.Offset, dim pageflow.Dim, img image.Image) {
	fmt.Printf("image %.0fx%.0f at (%.0f,%.0f)\n", dim.Width, dim.Height, topLeft.X, topLeft.Y)
}

// charMetrics measures every character at a tenth of the font size.
type charMetrics struct{}

func (charMetrics) StringWidth(font pageflow.FontSpec, size float64, s string) float64 {
	return float64(len(s)) * size * 0.1
}

func Example() {
	style := pageflow.TextStyle{
		Font:       pageflow.FontSpec{Family: "Helvetica"},
		Size:       10,
		LineHeight: 12,
		Metrics:    charMetrics{},
	}

	cell, err := pageflow.NewCellBuilder(pageflow.CellStyle{}, 120).
		TextStyle(style).
		AddStrings("hello layout world").
		Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	pager := pageflow.NewPager(
		pageflow.WithPageSize(200, 100),
		pageflow.WithMargins(pageflow.UniformPadding(10)),
	)
	area, err := pager.Reserve(cell.Measure(cell.Width()).Height)
	if err != nil {
		fmt.Println("reserve:", err)
		return
	}
	cell.Render(printTarget{}, area.TopLeft, pageflow.Dim{Width: cell.Width(), Height: area.Dim.Height})

	// Output:
	// text "hello layout world" at (10,90)
}
