package code128

import "fmt"

// ErrorKind distinguishes the three ways Encode can fail.
type ErrorKind int

const (
	// InvalidCharacter: a character in content is neither ISO 8859-1 nor
	// a reserved FNC placeholder.
	InvalidCharacter ErrorKind = iota
	// TooLong: content exceeds 170 characters, or the projected codeword
	// count after planning exceeds 80.
	TooLong
	// InternalInvariantViolation: an unreachable planner/emitter state
	// was reached. Indicates an encoder bug, not a bad input.
	InternalInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case TooLong:
		return "TooLong"
	case InternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return "Unknown"
	}
}

// EncodeError is returned by Encode instead of a panic; the caller
// switches on Kind to decide how to react. No partial EncodedSymbol is
// ever returned alongside an error.
type EncodeError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("code128: %s: %s", e.Kind, e.Msg)
}

// EncodedSymbol is the encoder's output contract: the module-width
// pattern row(s) a downstream renderer paints as bars, the parallel row
// heights, and the human-readable text line.
type EncodedSymbol struct {
	// Patterns holds one string per row. Each string concatenates
	// digits '1'..'9'; digit d at position k means "draw a bar (k even)
	// or a space (k odd) of width d modules." The composite separator
	// row is the main row prefixed with '0' (a zero-width bar), so its
	// bars and spaces are those of the main row swapped.
	Patterns []string

	// RowHeights is parallel to Patterns. -1 means "renderer default
	// height"; a positive value is a height in module units.
	RowHeights []int

	// RowCount equals len(Patterns).
	RowCount int

	// Readable is the human-readable text line, or empty for GS1.
	Readable string

	// EncodeInfo is an opaque debugging trace of the codewords emitted,
	// in order. Do not depend on its formatting.
	EncodeInfo string

	// Codewords is the full emitted codeword sequence: start, latches,
	// shifts, data, linkage flag, check, stop. Exposed for tests and
	// for callers that need the raw values rather than the rendered
	// pattern (e.g. to cross-check against a reference decoder).
	Codewords []int
}

// Encode runs the five-stage Code 128 pipeline (normalization, extended-
// set planning, subset planning, emission, checksum and framing) over
// content and returns the resulting symbol, or an *EncodeError.
func Encode(content string, opts Options) (*EncodedSymbol, error) {
	runes := []rune(content)

	cps, nerr := normalize(runes, opts.DataType)
	if nerr != nil {
		return nil, nerr
	}

	fset := planExtended(cps)

	subset, perr := planSubsets(cps, fset, opts.ModeCSuppression)
	if perr != nil {
		return nil, perr
	}

	dataCodewords, info, eerr := emitSymbol(cps, fset, subset, opts)
	if eerr != nil {
		return nil, eerr
	}

	full, patterns, rowHeights := frame(dataCodewords, opts.Composite)

	for _, v := range full {
		if v < 0 || v > 106 {
			return nil, &EncodeError{
				Kind: InternalInvariantViolation,
				Msg:  "codeword out of range",
			}
		}
	}

	return &EncodedSymbol{
		Patterns:   patterns,
		RowHeights: rowHeights,
		RowCount:   len(patterns),
		Readable:   readableText(content, opts.DataType),
		EncodeInfo: info,
		Codewords:  full,
	}, nil
}
