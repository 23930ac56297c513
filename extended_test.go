package code128

import "testing"

func repeatCP(cp, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = cp
	}
	return out
}

func TestPlanExtendedAllNormal(t *testing.T) {
	fset := planExtended([]int{'A', 'B', 'C'})
	for i, f := range fset {
		if f != fLatchNormal {
			t.Fatalf("fset[%d] = %v, want fLatchNormal", i, f)
		}
	}
}

func TestPlanExtendedShortRunStaysShift(t *testing.T) {
	cps := []int{'A', 0xC1, 0xC2, 'B'}
	fset := planExtended(cps)
	want := []fState{fLatchNormal, fShiftExt, fShiftExt, fLatchNormal}
	for i, w := range want {
		if fset[i] != w {
			t.Fatalf("fset[%d] = %v, want %v", i, fset[i], w)
		}
	}
}

func TestPlanExtendedRunOfFiveLatches(t *testing.T) {
	cps := append([]int{'A'}, repeatCP(0xC1, 5)...)
	cps = append(cps, 'B')
	fset := planExtended(cps)
	if fset[0] != fLatchNormal {
		t.Fatalf("fset[0] = %v, want fLatchNormal", fset[0])
	}
	for i := 1; i <= 5; i++ {
		if fset[i] != fLatchExt {
			t.Fatalf("fset[%d] = %v, want fLatchExt", i, fset[i])
		}
	}
	// A single-position drop back to normal after the latch is too short
	// to be worth a full latch-out/latch-in, so it is demoted to a shift.
	if fset[6] != fShiftNormal {
		t.Fatalf("fset[6] = %v, want fShiftNormal", fset[6])
	}
}

func TestPlanExtendedTailRunOfThreeLatches(t *testing.T) {
	cps := append([]int{'A'}, repeatCP(0xC1, 3)...)
	fset := planExtended(cps)
	if fset[0] != fLatchNormal {
		t.Fatalf("fset[0] = %v, want fLatchNormal", fset[0])
	}
	for i := 1; i <= 3; i++ {
		if fset[i] != fLatchExt {
			t.Fatalf("fset[%d] = %v, want fLatchExt", i, fset[i])
		}
	}
}

func TestPlanExtendedShortDropBackBecomesShift(t *testing.T) {
	cps := append(repeatCP(0xC1, 5), 'A', 'B', 0xC1)
	fset := planExtended(cps)
	for i := 0; i < 5; i++ {
		if fset[i] != fLatchExt {
			t.Fatalf("fset[%d] = %v, want fLatchExt", i, fset[i])
		}
	}
	// The two-position drop back to normal (positions 5, 6) is shorter
	// than 5, so it is demoted to a per-character shift rather than a
	// full latch-out/latch-in.
	if fset[5] != fShiftNormal || fset[6] != fShiftNormal {
		t.Fatalf("fset[5:7] = %v, want [fShiftNormal fShiftNormal]", fset[5:7])
	}
}

func TestPlanExtendedIgnoresFNCPlaceholdersAboveOneTwentyEight(t *testing.T) {
	// FNC placeholders sit above 128 numerically but must never be
	// treated as extended-ASCII data.
	fset := planExtended([]int{FNC1, FNC2, FNC3, FNC4})
	for i, f := range fset {
		if f != fLatchNormal {
			t.Fatalf("fset[%d] = %v, want fLatchNormal for FNC placeholder", i, f)
		}
	}
}
