package pageflow

import (
	"errors"
	"testing"
)

func textRow(t *testing.T, widths []float64, labels ...string) *TableRow {
	t.Helper()
	row := NewRow()
	for i, label := range labels {
		c, err := NewTextCell(CellStyle{}, widths[i], testStyle(), label)
		if err != nil {
			t.Fatalf("NewTextCell: %v", err)
		}
		row.AddCells(c)
	}
	return row
}

func TestTableRendersRowsInOrder(t *testing.T) {
	tb := NewTable().
		AddRow(textRow(t, []float64{80, 80}, "a1", "a2")).
		AddRow(textRow(t, []float64{80, 80}, "b1", "b2"))

	rec := &recorder{}
	p := testPager()
	if _, err := tb.Render(rec, p); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := []string{"a1", "a2", "b1", "b2"}
	got := rec.texts()
	if len(got) != len(want) {
		t.Fatalf("drew %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("text[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if p.CurrentPage() != 1 {
		t.Errorf("two short rows should fit one page, got %d", p.CurrentPage())
	}
}

func TestTableBreaksBetweenRows(t *testing.T) {
	// 260 usable; each row is 100 high, so the third row spills.
	tb := NewTable()
	for i := 0; i < 3; i++ {
		c, _ := NewCell(CellStyle{}, 100, &block{dim: Dim{Width: 100, Height: 100}})
		tb.AddRow(NewRow(c))
	}
	p := testPager()
	if _, err := tb.Render(&recorder{}, p); err != nil {
		t.Fatalf("render: %v", err)
	}
	if p.CurrentPage() != 2 {
		t.Errorf("page = %d, want 2", p.CurrentPage())
	}
}

func TestTableHeaderRepeatsOnPageBreak(t *testing.T) {
	tb := NewTable()
	tb.AddHeaderRow(textRow(t, []float64{160}, "HEAD"))
	// 15-high header leaves 245; 60-high rows: 4 fit (255 would spill),
	// so enough rows force several pages.
	for i := 0; i < 12; i++ {
		c, _ := NewCell(CellStyle{}, 160, &block{dim: Dim{Width: 160, Height: 60}})
		tb.AddRow(NewRow(c))
	}
	rec := &recorder{}
	p := testPager()
	if _, err := tb.Render(rec, p); err != nil {
		t.Fatalf("render: %v", err)
	}
	if p.CurrentPage() < 2 {
		t.Fatalf("expected at least 2 pages, got %d", p.CurrentPage())
	}
	headers := 0
	for _, line := range rec.texts() {
		if line == "HEAD" {
			headers++
		}
	}
	if headers != p.CurrentPage() {
		t.Errorf("header drawn %d times across %d pages, want once per page", headers, p.CurrentPage())
	}
}

func TestTableHeaderRowsSortBeforeBody(t *testing.T) {
	tb := NewTable()
	tb.AddRow(textRow(t, []float64{160}, "body"))
	tb.AddHeaderRow(textRow(t, []float64{160}, "head"))

	rec := &recorder{}
	if _, err := tb.Render(rec, testPager()); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := rec.texts()
	if len(got) != 2 || got[0] != "head" || got[1] != "body" {
		t.Errorf("texts = %v, want [head body]", got)
	}
}

func TestTablePropagatesPageExhaustion(t *testing.T) {
	tb := NewTable()
	for i := 0; i < 10; i++ {
		c, _ := NewCell(CellStyle{}, 100, &block{dim: Dim{Width: 100, Height: 200}})
		tb.AddRow(NewRow(c))
	}
	p := testPager(WithMaxPages(2))
	_, err := tb.Render(&recorder{}, p)
	if !errors.Is(err, ErrPageLimit) {
		t.Fatalf("error = %v, want ErrPageLimit", err)
	}
}

func TestEmptyTableRendersNothing(t *testing.T) {
	rec := &recorder{}
	if _, err := NewTable().Render(rec, testPager()); err != nil {
		t.Fatalf("render empty table: %v", err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("expected no draws, got %d", len(rec.ops))
	}
}
