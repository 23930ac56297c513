package render

import (
	"bytes"
	"testing"

	"github.com/gostudent/code128"
)

func TestExpandRow(t *testing.T) {
	row, w, err := expandRow("211")
	if err != nil {
		t.Fatalf("expandRow returned error: %v", err)
	}
	if w != 4 {
		t.Fatalf("width = %d, want 4", w)
	}
	want := []bool{true, true, false, true}
	if len(row) != len(want) {
		t.Fatalf("row length = %d, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("row[%d] = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestExpandRowRejectsBadDigit(t *testing.T) {
	if _, _, err := expandRow("2a1"); err == nil {
		t.Fatalf("expected an error for a non-digit pattern character")
	}
}

func TestRenderRejectsEmptySymbol(t *testing.T) {
	if _, err := Render(&code128.EncodedSymbol{}, Options{}); err == nil {
		t.Fatalf("expected an error for a symbol with no rows")
	}
}

func TestRenderSingleRow(t *testing.T) {
	sym := &code128.EncodedSymbol{
		Patterns:   []string{"22"},
		RowHeights: []int{10},
		RowCount:   1,
	}
	bm, err := Render(sym, Options{ModuleWidth: 1, QuietZoneModules: 0})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if bm.Width() != 4 {
		t.Fatalf("Width() = %d, want 4", bm.Width())
	}
	if bm.Height() != 10 {
		t.Fatalf("Height() = %d, want 10", bm.Height())
	}
	for x := 0; x < 4; x++ {
		want := x < 2
		if got := bm.Get(x, 0); got != want {
			t.Fatalf("Get(%d,0) = %v, want %v", x, got, want)
		}
	}
}

func TestRenderQuietZoneAndDefaultRowHeight(t *testing.T) {
	sym := &code128.EncodedSymbol{
		Patterns:   []string{"11"},
		RowHeights: []int{-1},
		RowCount:   1,
	}
	bm, err := Render(sym, Options{ModuleWidth: 2, QuietZoneModules: 3})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if bm.Width() != (2+2*3)*2 {
		t.Fatalf("Width() = %d, want %d", bm.Width(), (2+2*3)*2)
	}
	if bm.Height() != defaultRowHeightModules*2 {
		t.Fatalf("Height() = %d, want %d", bm.Height(), defaultRowHeightModules*2)
	}
	for x := 0; x < 3*2; x++ {
		if bm.Get(x, 0) {
			t.Fatalf("quiet zone column %d should be unset", x)
		}
	}
}

func TestRenderTwoRowsStackVertically(t *testing.T) {
	sym := &code128.EncodedSymbol{
		Patterns:   []string{"01", "11"},
		RowHeights: []int{2, 3},
		RowCount:   2,
	}
	bm, err := Render(sym, Options{ModuleWidth: 1, QuietZoneModules: 0})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if bm.Height() != 5 {
		t.Fatalf("Height() = %d, want 5", bm.Height())
	}
	if bm.Get(0, 0) {
		t.Fatalf("first row's space column should be unset")
	}
	if !bm.Get(0, 2) {
		t.Fatalf("second row's bar column should be set at its top")
	}
}

func TestEncodePBMHeader(t *testing.T) {
	sym := &code128.EncodedSymbol{
		Patterns:   []string{"11"},
		RowHeights: []int{1},
		RowCount:   1,
	}
	bm, err := Render(sym, Options{ModuleWidth: 1, QuietZoneModules: 0})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePBM(&buf, bm); err != nil {
		t.Fatalf("EncodePBM returned error: %v", err)
	}
	want := []byte("P4\n2 1\n")
	if !bytes.HasPrefix(buf.Bytes(), want) {
		t.Fatalf("EncodePBM header = %q, want prefix %q", buf.Bytes(), want)
	}
}

func TestEncodePNGProducesSignature(t *testing.T) {
	sym := &code128.EncodedSymbol{
		Patterns:   []string{"11"},
		RowHeights: []int{1},
		RowCount:   1,
	}
	bm, err := Render(sym, Options{ModuleWidth: 1, QuietZoneModules: 0})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, bm); err != nil {
		t.Fatalf("EncodePNG returned error: %v", err)
	}
	pngSignature := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
		t.Fatalf("EncodePNG did not produce a PNG signature")
	}
}
