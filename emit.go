package code128

import (
	"strconv"
	"strings"
)

// Codeword values shared by the latch/shift/function instructions across
// subsets A, B and C, plus the start/stop symbols. Note that 100 and 101
// each carry two unrelated meanings depending on context: "latch to set
// B"/"latch to set A" in one position, "FNC4" in another. That dual
// meaning is why emitLatchChange and emitFNC4* below are separate call
// sites rather than one shared emit(100)/emit(101) helper.
const (
	cwShift  = 98
	cwCodeC  = 99
	cwCodeB  = 100
	cwCodeA  = 101
	cwFNC1   = 102
	cwFNC2   = 97
	cwFNC3   = 96
	cwStartA = 103
	cwStartB = 104
	cwStartC = 105
	cwStop   = 106
)

type emitter struct {
	codewords  []int
	info       strings.Builder
	currentSet finalSubset
	extended   bool // true once an FNC4 latch-in has occurred without a matching latch-out
}

func (e *emitter) emit(v int, label string) {
	e.codewords = append(e.codewords, v)
	e.info.WriteString(label)
	e.info.WriteByte(' ')
}

func (e *emitter) emitValue(v int) {
	e.codewords = append(e.codewords, v)
	e.info.WriteString(strconv.Itoa(v))
	e.info.WriteByte(' ')
}

// emitFNC4Pair emits the double-FNC4 latch transition appropriate to the
// current subset (101 twice under A, 100 twice under B).
func (e *emitter) emitFNC4Pair() {
	switch e.currentSet {
	case subLatchA:
		e.emit(cwCodeA, "FNC4")
		e.emit(cwCodeA, "FNC4")
	case subLatchB:
		e.emit(cwCodeB, "FNC4")
		e.emit(cwCodeB, "FNC4")
	}
}

// emitFNC4Shift emits a single FNC4 shift into/out of the extended
// regime for exactly the next character.
func (e *emitter) emitFNC4Shift() {
	switch e.currentSet {
	case subLatchA:
		e.emit(cwCodeA, "FNC4")
	case subLatchB:
		e.emit(cwCodeB, "FNC4")
	}
}

// emitLatchChange emits the code-set-change codeword for a transition
// between A, B and C latches (not to be confused with an FNC4 latch).
func (e *emitter) emitLatchChange(to finalSubset) {
	switch to {
	case subLatchA:
		e.emit(cwCodeA, "CODEA")
	case subLatchB:
		e.emit(cwCodeB, "CODEB")
	case subLatchC:
		e.emit(cwCodeC, "CODEC")
	}
	e.currentSet = to
}

// emitSymbol runs the emitter pass: start code, GS1 preamble, per-position
// latch/shift/data codewords, and the composite linkage flag. It does not
// compute the check codeword or the stop codeword; see checksum.go.
func emitSymbol(cps []int, fset []fState, subset []finalSubset, opts Options) ([]int, string, *EncodeError) {
	n := len(cps)
	e := &emitter{}

	startSubset := subLatchB
	if n > 0 {
		startSubset = subset[0]
	}

	switch startSubset {
	case subLatchA, subShiftA:
		e.currentSet = subLatchA
		e.emit(cwStartA, "STARTA")
		if opts.ReaderInit {
			e.emit(cwFNC3, "FNC3")
		}
	case subLatchC:
		if opts.ReaderInit {
			// Reader-init with a Code-C first run: emit the Start-B
			// pattern/value, then FNC3, then an explicit Code-C latch.
			// See DESIGN.md for why Start-B rather than Start-C carries
			// the reader-init flag here.
			e.currentSet = subLatchB
			e.emit(cwStartB, "STARTB")
			e.emit(cwFNC3, "FNC3")
			e.emit(cwCodeC, "CODEC")
			e.currentSet = subLatchC
		} else {
			e.currentSet = subLatchC
			e.emit(cwStartC, "STARTC")
		}
	default: // subLatchB, subShiftB
		e.currentSet = subLatchB
		e.emit(cwStartB, "STARTB")
		if opts.ReaderInit {
			e.emit(cwFNC3, "FNC3")
		}
	}

	if opts.DataType == GS1 {
		e.emit(cwFNC1, "FNC1")
	}

	if n > 0 && fset[0] == fLatchExt {
		e.emitFNC4Pair()
		e.extended = true
	}

	for i := 0; i < n; {
		if i > 0 {
			switch subset[i] {
			case subLatchA:
				if e.currentSet != subLatchA {
					e.emitLatchChange(subLatchA)
				}
			case subLatchB:
				if e.currentSet != subLatchB {
					e.emitLatchChange(subLatchB)
				}
			case subLatchC:
				if e.currentSet != subLatchC {
					e.emitLatchChange(subLatchC)
				}
			}

			if fset[i] == fLatchExt && !e.extended {
				e.emitFNC4Pair()
				e.extended = true
			}
			if fset[i] == fLatchNormal && e.extended {
				e.emitFNC4Pair()
				e.extended = false
			}
		}

		if fset[i] == fShiftExt || fset[i] == fShiftNormal {
			e.emitFNC4Shift()
		}

		if subset[i] == subShiftA || subset[i] == subShiftB {
			e.emit(cwShift, "SHFT")
		}

		var err *EncodeError
		i, err = emitData(e, cps, subset, i)
		if err != nil {
			return nil, "", err
		}
	}

	if opts.Composite != CompositeOff && n > 0 {
		e.emit(linkageFlag(opts.Composite, subset[n-1]), "LINKAGE")
	}

	return e.codewords, e.info.String(), nil
}

// emitData emits the data codeword(s) for the character(s) at i and
// returns the next index to process.
func emitData(e *emitter, cps []int, subset []finalSubset, i int) (int, *EncodeError) {
	c := cps[i]
	switch subset[i] {
	case subShiftA, subLatchA:
		switch {
		case c == FNC1:
			e.emit(cwFNC1, "FNC1")
		case c == FNC2:
			e.emit(cwFNC2, "FNC2")
		case c == FNC3:
			e.emit(cwFNC3, "FNC3")
		case c == FNC4:
			e.emit(cwCodeA, "FNC4")
		case c >= 128 && c <= 159:
			e.emitValue((c - 128) + 64)
		case c < 32:
			e.emitValue(c + 64)
		case c >= 32 && c <= 95:
			e.emitValue(c - 32)
		case c >= 160:
			e.emitValue(c - 160)
		default:
			return 0, &EncodeError{Kind: InternalInvariantViolation, Msg: "unreachable subset A code point"}
		}
		return i + 1, nil

	case subShiftB, subLatchB:
		switch {
		case c == FNC1:
			e.emit(cwFNC1, "FNC1")
		case c == FNC2:
			e.emit(cwFNC2, "FNC2")
		case c == FNC3:
			e.emit(cwFNC3, "FNC3")
		case c == FNC4:
			e.emit(cwCodeB, "FNC4")
		case c >= 32 && c <= 127:
			e.emitValue(c - 32)
		case c >= 160 && c <= 255:
			e.emitValue(c - 32 - 128)
		default:
			return 0, &EncodeError{Kind: InternalInvariantViolation, Msg: "unreachable subset B code point"}
		}
		return i + 1, nil

	case subLatchC:
		if c == FNC1 {
			e.emit(cwFNC1, "FNC1")
			return i + 1, nil
		}
		if i+1 >= len(cps) {
			return 0, &EncodeError{Kind: InternalInvariantViolation, Msg: "odd digit run reached the emitter"}
		}
		d := cps[i+1]
		e.emitValue(10*(c-'0') + (d - '0'))
		return i + 2, nil
	}

	return 0, &EncodeError{Kind: InternalInvariantViolation, Msg: "unresolved subset reached the emitter"}
}

// linkageFlag chooses the composite-symbol linkage codeword based on the
// symbol's composite type and the subset the last data position ended in,
// per ISO/IEC 24723's linkage flag tables.
func linkageFlag(mode CompositeMode, lastSubset finalSubset) int {
	family := subLatchB
	switch lastSubset {
	case subShiftA, subLatchA:
		family = subLatchA
	case subShiftB, subLatchB:
		family = subLatchB
	case subLatchC:
		family = subLatchC
	}

	switch mode {
	case CompositeCCA, CompositeCCB:
		switch family {
		case subLatchA:
			return cwCodeB
		case subLatchB:
			return cwCodeC
		default: // subLatchC
			return cwCodeA
		}
	case CompositeCCC:
		switch family {
		case subLatchA:
			return cwCodeC
		case subLatchB:
			return cwCodeA
		default: // subLatchC
			return cwCodeB
		}
	}
	return 0
}
