// Package code128 encodes Code 128 barcode symbols conforming to
// ISO/IEC 15417:2007, including GS1-128 and composite-symbol linkage.
//
// The package is a pure computation: given a content string and a set
// of Options, Encode returns the codeword-derived module-width pattern
// a downstream renderer paints as bars and spaces. It does no I/O and
// keeps no state between calls.
package code128

// Reserved "function" placeholders. These code points sit outside the
// ISO 8859-1 byte range (0..255) so they can travel through the same
// []rune content as ordinary Latin-1 characters without ambiguity.
const (
	FNC1 = 0x0101
	FNC2 = 0x0113
	FNC3 = 0x012B
	FNC4 = 0x014D
)

func isFNC(cp int) bool {
	return cp == FNC1 || cp == FNC2 || cp == FNC3 || cp == FNC4
}

// DataType selects how content is interpreted before encoding.
type DataType int

const (
	// Generic treats content as plain ISO 8859-1 text plus FNC placeholders.
	Generic DataType = iota
	// GS1 translates '[' into FNC1 and injects a leading FNC1 after the start code.
	GS1
	// HIBC wraps the human-readable text in '*' delimiters.
	HIBC
)

func (d DataType) String() string {
	switch d {
	case Generic:
		return "GENERIC"
	case GS1:
		return "GS1"
	case HIBC:
		return "HIBC"
	default:
		return "UNKNOWN"
	}
}

// CompositeMode selects the 2D composite-symbol linkage flag, if any.
type CompositeMode int

const (
	// CompositeOff emits no linkage flag and a single output row.
	CompositeOff CompositeMode = iota
	// CompositeCCA links to a CC-A 2D component.
	CompositeCCA
	// CompositeCCB links to a CC-B 2D component.
	CompositeCCB
	// CompositeCCC links to a CC-C 2D component.
	CompositeCCC
)

func (c CompositeMode) String() string {
	switch c {
	case CompositeOff:
		return "OFF"
	case CompositeCCA:
		return "CCA"
	case CompositeCCB:
		return "CCB"
	case CompositeCCC:
		return "CCC"
	default:
		return "UNKNOWN"
	}
}

// Options configures a single Encode call.
type Options struct {
	// DataType selects GS1/HIBC/generic interpretation of content.
	DataType DataType

	// ReaderInit requests reader-programming mode: an FNC3 immediately
	// after the start code.
	ReaderInit bool

	// Composite selects the 2D composite linkage flag to append, if any.
	Composite CompositeMode

	// ModeCSuppression disables subset C; all digits are encoded via B.
	ModeCSuppression bool
}
