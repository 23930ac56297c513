// Package render turns a code128.EncodedSymbol into a rasterized bitmap,
// the role oned/onedwriter.go plays for a single-row 1D symbol,
// generalized to this module's explicit per-row heights and composite
// separator row.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gostudent/code128"
	"github.com/gostudent/code128/bitutil"
)

const (
	defaultQuietZoneModules = 10
	defaultRowHeightModules = 50
)

// Options controls how Render rasterizes a symbol.
type Options struct {
	// ModuleWidth is the pixel width of one module. Values below 1 are
	// treated as 1.
	ModuleWidth int

	// QuietZoneModules is the blank margin painted on the left and right
	// of the symbol, in modules. Negative values fall back to the
	// conventional 10-module quiet zone.
	QuietZoneModules int
}

func (o Options) normalized() (moduleWidth, quietZone int) {
	moduleWidth = o.ModuleWidth
	if moduleWidth < 1 {
		moduleWidth = 1
	}
	quietZone = o.QuietZoneModules
	if quietZone < 0 {
		quietZone = defaultQuietZoneModules
	}
	return moduleWidth, quietZone
}

// Render rasterizes sym's pattern rows into a bitutil.BitMatrix. Rows
// with RowHeights[i] <= 0 (the encoder's "renderer default" marker) are
// painted defaultRowHeightModules tall; the composite separator row
// uses a height of 1, matching the narrow guard bar ISO/IEC 24723 draws
// between a linear symbol and its 2D component.
func Render(sym *code128.EncodedSymbol, opts Options) (*bitutil.BitMatrix, error) {
	if sym == nil || sym.RowCount == 0 {
		return nil, fmt.Errorf("render: symbol has no rows")
	}
	if len(sym.Patterns) != len(sym.RowHeights) {
		return nil, fmt.Errorf("render: %d patterns but %d row heights", len(sym.Patterns), len(sym.RowHeights))
	}

	moduleWidth, quietZone := opts.normalized()

	rows := make([][]bool, len(sym.Patterns))
	widthModules := 0
	for i, p := range sym.Patterns {
		row, w, err := expandRow(p)
		if err != nil {
			return nil, err
		}
		rows[i] = row
		if w > widthModules {
			widthModules = w
		}
	}

	rowHeightModules := make([]int, len(sym.RowHeights))
	totalHeightModules := 0
	for i, h := range sym.RowHeights {
		if h <= 0 {
			h = defaultRowHeightModules
		}
		rowHeightModules[i] = h
		totalHeightModules += h
	}

	outWidth := (widthModules + 2*quietZone) * moduleWidth
	outHeight := totalHeightModules * moduleWidth

	bm := bitutil.NewBitMatrix(outWidth, outHeight)

	rowTopPx := 0
	for i, row := range rows {
		rowHeightPx := rowHeightModules[i] * moduleWidth
		for modX, black := range row {
			if !black {
				continue
			}
			x := (quietZone + modX) * moduleWidth
			bm.SetRegion(x, rowTopPx, moduleWidth, rowHeightPx)
		}
		rowTopPx += rowHeightPx
	}

	return bm, nil
}

// expandRow turns one pattern string of bar/space width digits into a
// []bool with one entry per module, alternating bar (true) and space
// (false) starting with a bar, the way oned/onedwriter.go's
// AppendPattern expands a []int width list into a []bool. A '0' digit is a
// zero-width element, as at the start of the composite separator row.
func expandRow(p string) ([]bool, int, error) {
	widthModules := 0
	for _, d := range p {
		if d < '0' || d > '9' {
			return nil, 0, fmt.Errorf("render: invalid pattern digit %q", d)
		}
		widthModules += int(d - '0')
	}
	row := make([]bool, widthModules)
	pos := 0
	black := true
	for _, d := range p {
		for j := 0; j < int(d-'0'); j++ {
			row[pos] = black
			pos++
		}
		black = !black
	}
	return row, widthModules, nil
}

// EncodePBM writes bm as a binary (P4) portable bitmap to w.
func EncodePBM(w io.Writer, bm *bitutil.BitMatrix) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", bm.Width(), bm.Height()); err != nil {
		return err
	}
	rowBytes := (bm.Width() + 7) / 8
	row := make([]byte, rowBytes)
	for y := 0; y < bm.Height(); y++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < bm.Width(); x++ {
			if bm.Get(x, y) {
				row[x/8] |= 1 << uint(7-x%8)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodePNG writes bm as an 8-bit grayscale PNG to w, set bits black and
// unset bits white.
func EncodePNG(w io.Writer, bm *bitutil.BitMatrix) error {
	img := image.NewGray(image.Rect(0, 0, bm.Width(), bm.Height()))
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return png.Encode(w, img)
}
