package code128

// fState tags the FNC4 "extended" regime for one input position.
type fState int

const (
	fLatchNormal fState = iota // ordinary A/B interpretation
	fShiftNormal                // one character reverts to A/B inside an extended latch
	fLatchExt                   // extended (+128) interpretation, latched
	fShiftExt                   // one character is extended inside a normal latch
)

// planExtended decides, per position, whether that character is encoded
// under the FNC4 extended regime, latching or shifting as required, per
// ISO/IEC 15417 Annex E note 3 / 4.3.4.2(d). Runs three passes: mark
// extended-ASCII positions, promote long runs to a latch, then demote
// short trailing returns to normal back to a shift.
func planExtended(cps []int) []fState {
	n := len(cps)
	fset := make([]fState, n)

	// Pass 1: mark extended-ASCII characters.
	for i, cp := range cps {
		if cp >= 128 && !isFNC(cp) {
			fset[i] = fShiftExt
		} else {
			fset[i] = fLatchNormal
		}
	}

	// Pass 2: runs of >=5 shift-extended, or a run of >=3 touching
	// end-of-input, latch to extended instead.
	run := 0
	for i := 0; i < n; i++ {
		if fset[i] == fShiftExt {
			run++
		} else {
			run = 0
		}
		if run >= 5 {
			for k := i; k > i-5; k-- {
				fset[k] = fLatchExt
			}
		}
		if run >= 3 && i == n-1 {
			for k := i; k > i-3; k-- {
				fset[k] = fLatchExt
			}
		}
	}

	// Pass 3: a short return to normal inside an extended latch is
	// cheaper to shift out of than to latch out and back into.
	for i := 1; i < n; i++ {
		if fset[i-1] == fLatchExt && fset[i] == fLatchNormal {
			j := 0
			for i+j < n && fset[i+j] == fLatchNormal {
				j++
			}
			if j < 5 || (j < 3 && i+j == n) {
				for k := 0; k < j; k++ {
					fset[i+k] = fShiftNormal
				}
			}
		}
	}

	return fset
}
