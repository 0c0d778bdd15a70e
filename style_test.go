package pageflow

import "testing"

func TestCalcOffsetCenterBoundary(t *testing.T) {
	// A (50,50) block centered in a (100,100) area shifts by (25, 25):
	// +25 to the right, 25 down the page (y decreases by 25).
	got := MiddleCenter.CalcOffset(Dim{100, 100}, Dim{50, 50})
	if got != (Offset{X: 25, Y: 25}) {
		t.Errorf("center offset = %v, want {25 25}", got)
	}
}

func TestCalcOffsetCorners(t *testing.T) {
	inner := Dim{Width: 100, Height: 80}
	blk := Dim{Width: 40, Height: 20}
	tests := []struct {
		name  string
		align Align
		want  Offset
	}{
		{"top-left", TopLeft, Offset{0, 0}},
		{"top-right", TopRight, Offset{60, 0}},
		{"bottom-left", BottomLeft, Offset{0, 60}},
		{"bottom-right", BottomRight, Offset{60, 60}},
		{"middle-center", MiddleCenter, Offset{30, 30}},
	}
	for _, tt := range tests {
		if got := tt.align.CalcOffset(inner, blk); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCalcOffsetOversizedBlockPinsTopLeft(t *testing.T) {
	got := BottomRight.CalcOffset(Dim{50, 50}, Dim{80, 90})
	if got != (Offset{}) {
		t.Errorf("oversized block should pin to top-left, got %v", got)
	}
}

func TestLeftOffset(t *testing.T) {
	if got := (Align{H: Center}).LeftOffset(100, 40); got != 30 {
		t.Errorf("center: got %v, want 30", got)
	}
	if got := (Align{H: Right}).LeftOffset(100, 40); got != 60 {
		t.Errorf("right: got %v, want 60", got)
	}
	if got := (Align{H: Left}).LeftOffset(100, 40); got != 0 {
		t.Errorf("left: got %v, want 0", got)
	}
	if got := (Align{H: Right}).LeftOffset(40, 100); got != 0 {
		t.Errorf("row wider than block: got %v, want 0", got)
	}
}

func TestTextStyleStringWidthWithoutMetrics(t *testing.T) {
	ts := TextStyle{Size: 10}
	if w := ts.StringWidth("anything"); w != 0 {
		t.Errorf("no metrics should measure 0, got %v", w)
	}
}
