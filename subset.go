package code128

// candidate is a planner-stage subset tag: it may still be ambiguous
// (AORB, ABORC) pending the Annex E reduction rules. Kept distinct from
// finalSubset so the ambiguous planner vocabulary and the resolved
// emitter vocabulary can't be confused for one another.
type candidate int

const (
	candNull candidate = iota
	candShiftA
	candLatchA
	candShiftB
	candLatchB
	candShiftC
	candLatchC
	candAorB
	candABorC
)

// finalSubset is a fully-resolved, emitter-ready subset tag: no ambiguity
// remains.
type finalSubset int

const (
	subShiftA finalSubset = iota
	subLatchA
	subShiftB
	subLatchB
	subLatchC
)

func (s finalSubset) String() string {
	switch s {
	case subShiftA:
		return "SHIFTA"
	case subLatchA:
		return "LATCHA"
	case subShiftB:
		return "SHIFTB"
	case subLatchB:
		return "LATCHB"
	case subLatchC:
		return "LATCHC"
	default:
		return "UNKNOWN"
	}
}

func toFinalSubset(c candidate) (finalSubset, bool) {
	switch c {
	case candShiftA:
		return subShiftA, true
	case candLatchA:
		return subLatchA, true
	case candShiftB:
		return subShiftB, true
	case candLatchB:
		return subLatchB, true
	case candLatchC:
		return subLatchC, true
	default:
		return 0, false
	}
}

// findSubset classifies a single code point's intrinsic subset
// candidacy, per ISO/IEC 15417 Annex E.
func findSubset(cp int, modeCSuppression bool) candidate {
	var m candidate
	switch {
	case cp <= 31:
		m = candShiftA
	case cp >= 48 && cp <= 57:
		m = candABorC
	case cp <= 95:
		m = candAorB
	case cp <= 127:
		m = candShiftB
	case cp <= 159:
		m = candShiftA
	case cp <= 223:
		m = candAorB
	case cp == FNC1:
		m = candABorC
	case cp == FNC2 || cp == FNC3 || cp == FNC4:
		m = candAorB
	default:
		m = candShiftB
	}
	if modeCSuppression && m == candABorC {
		m = candAorB
	}
	return m
}

// run is one entry of a compressed subset RunList: a candidate tag and
// the number of consecutive positions it covers.
type run struct {
	cand   candidate
	length int
}

// compressRuns collapses a per-position candidate sequence into a
// RunList of (candidate, length) pairs.
func compressRuns(cands []candidate) []run {
	if len(cands) == 0 {
		return nil
	}
	runs := []run{{cand: cands[0], length: 1}}
	for _, c := range cands[1:] {
		last := &runs[len(runs)-1]
		if c == last.cand {
			last.length++
		} else {
			runs = append(runs, run{cand: c, length: 1})
		}
	}
	return runs
}

// reduceSubsetChanges resolves the ambiguous AORB/ABORC/SHIFT candidates
// into LATCH/SHIFT decisions using the ISO/IEC 15417 Annex E heuristics.
// The rule order matters: later checks in the same run re-read the value
// earlier checks in the same run just wrote.
func reduceSubsetChanges(runs []run) []run {
	for i := range runs {
		current := runs[i].cand
		length := runs[i].length

		var last, next candidate = candNull, candNull
		if i != 0 {
			last = runs[i-1].cand
		}
		if i != len(runs)-1 {
			next = runs[i+1].cand
		}

		if i == 0 {
			if len(runs) == 1 && length == 2 && current == candABorC { // Rule 1a
				current = candLatchC
			}
			if current == candABorC {
				if length >= 4 { // Rule 1b
					current = candLatchC
				} else {
					current = candAorB
				}
			}
			if current == candShiftA { // Rule 1c
				current = candLatchA
			}
			if current == candAorB && next == candShiftA { // Rule 1c
				current = candLatchA
			}
			if current == candAorB { // Rule 1d
				current = candLatchB
			}
		} else {
			if current == candABorC && length >= 4 { // Rule 3
				current = candLatchC
			}
			if current == candABorC {
				current = candAorB
			}
			if current == candAorB && last == candLatchA {
				current = candLatchA
			}
			if current == candAorB && last == candLatchB {
				current = candLatchB
			}
			if current == candAorB && next == candShiftA {
				current = candLatchA
			}
			if current == candAorB && next == candShiftB {
				current = candLatchB
			}
			if current == candAorB {
				current = candLatchB
			}
			if current == candShiftA && length > 1 { // Rule 4
				current = candLatchA
			}
			if current == candShiftB && length > 1 { // Rule 5
				current = candLatchB
			}
			if current == candShiftA && last == candLatchA {
				current = candLatchA
			}
			if current == candShiftB && last == candLatchB {
				current = candLatchB
			}
			if current == candShiftA && next == candAorB {
				current = candLatchA
			}
			if current == candShiftB && next == candAorB {
				current = candLatchB
			}
			if current == candShiftA && last == candLatchC {
				current = candLatchA
			}
			if current == candShiftB && last == candLatchC {
				current = candLatchB
			}
			// Rule 2 is implemented in resolveOddDigitRuns; Rule 6 is implied.
		}

		runs[i].cand = current
	}

	return combineRuns(runs)
}

// combineRuns merges adjacent runs that reduced to the same candidate.
func combineRuns(runs []run) []run {
	out := runs[:0:0]
	for _, r := range runs {
		if len(out) > 0 && out[len(out)-1].cand == r.cand {
			out[len(out)-1].length += r.length
		} else {
			out = append(out, r)
		}
	}
	return out
}

// expandRuns turns a RunList back into a per-position candidate slice.
func expandRuns(runs []run, n int) []candidate {
	out := make([]candidate, 0, n)
	for _, r := range runs {
		for k := 0; k < r.length; k++ {
			out = append(out, r.cand)
		}
	}
	return out
}

// resolveOddDigitRuns fixes up LATCHC blocks with an odd digit count, per
// ISO/IEC 15417 Annex E. The relocation index is computed by subtracting
// a digit count, not a position count, from the end of the run, which
// only coincides with "first/last digit position" when no FNC1 is
// interleaved inside the run.
func resolveOddDigitRuns(subset []candidate, cps []int) {
	n := len(subset)
	cs, nums := 0, 0

	resolve := func(i int) {
		if nums%2 == 0 {
			return
		}
		var idx int
		var m candidate
		if i-cs == 0 {
			// First block: move the last digit out of C.
			idx = i - 1
			if idx+1 < n && subset[idx+1] != candLatchC {
				m = subset[idx+1]
			} else {
				m = candLatchB
			}
		} else {
			// Non-first block: move the first digit out of C.
			idx = i - nums
			if idx-1 >= 0 && subset[idx-1] != candLatchC {
				m = subset[idx-1]
			} else {
				m = candLatchB
			}
		}
		subset[idx] = m
	}

	for i := 0; i < n; i++ {
		if subset[i] == candLatchC {
			cs++
			if cps[i] >= '0' && cps[i] <= '9' {
				nums++
			}
		} else {
			resolve(i)
			cs, nums = 0, 0
		}
	}
	resolve(n)
}

// canonicalizeStart promotes a leading run of SHIFTA/SHIFTB to the
// corresponding LATCH, since the first codeword must be a valid start
// symbol.
func canonicalizeStart(subset []candidate) {
	if len(subset) == 0 {
		return
	}
	switch subset[0] {
	case candShiftA:
		for i := 0; i < len(subset) && subset[i] == candShiftA; i++ {
			subset[i] = candLatchA
		}
	case candShiftB:
		for i := 0; i < len(subset) && subset[i] == candShiftB; i++ {
			subset[i] = candLatchB
		}
	}
}

// projectedLength computes the codeword-count estimate used to enforce
// the 80-codeword bound before emission.
func projectedLength(subset []candidate, fset []fState, cps []int) float64 {
	var glyphCount float64
	lastSet := candNull

	for i := range subset {
		if subset[i] == candShiftA || subset[i] == candShiftB {
			glyphCount += 1.0
		}
		if fset[i] == fShiftExt || fset[i] == fShiftNormal {
			glyphCount += 1.0
		}
		if subset[i] == candLatchA || subset[i] == candLatchB || subset[i] == candLatchC {
			if subset[i] != lastSet {
				lastSet = subset[i]
				glyphCount += 1.0
			}
		}
		if i == 0 {
			if fset[i] == fLatchExt {
				glyphCount += 2.0
			}
		} else {
			if fset[i] == fLatchExt && fset[i-1] != fLatchExt {
				glyphCount += 2.0
			}
			if fset[i] != fLatchExt && fset[i-1] == fLatchExt {
				glyphCount += 2.0
			}
		}
		if subset[i] == candLatchC {
			if cps[i] == FNC1 {
				glyphCount += 1.0
			} else {
				glyphCount += 0.5
			}
		} else {
			glyphCount += 1.0
		}
	}

	return glyphCount
}

// planSubsets runs the full subset planner (classification, run
// compression, Annex E reduction, odd-digit resolution, start-code
// canonicalization, length projection) and returns the final,
// emitter-ready per-position subset tags.
func planSubsets(cps []int, fset []fState, modeCSuppression bool) ([]finalSubset, *EncodeError) {
	n := len(cps)
	if n == 0 {
		// An empty symbol still needs a start code; the caller falls
		// back to Start-B.
		return nil, nil
	}

	cands := make([]candidate, n)
	for i, cp := range cps {
		cands[i] = findSubset(cp, modeCSuppression)
	}

	runs := compressRuns(cands)
	runs = reduceSubsetChanges(runs)
	resolved := expandRuns(runs, n)

	resolveOddDigitRuns(resolved, cps)
	canonicalizeStart(resolved)

	if projectedLength(resolved, fset, cps) > 80.0 {
		return nil, &EncodeError{Kind: TooLong, Msg: "input data too long"}
	}

	final := make([]finalSubset, n)
	for i, c := range resolved {
		f, ok := toFinalSubset(c)
		if !ok {
			return nil, &EncodeError{
				Kind: InternalInvariantViolation,
				Msg:  "unresolved subset candidate reached the emitter",
			}
		}
		final[i] = f
	}
	return final, nil
}
