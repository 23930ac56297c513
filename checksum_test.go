package code128

import "testing"

func TestChecksumSimpleB(t *testing.T) {
	if got := checksum([]int{104, 33, 41, 45}); got != 45 {
		t.Fatalf("checksum = %d, want 45", got)
	}
}

func TestChecksumSubsetCPair(t *testing.T) {
	if got := checksum([]int{105, 12, 34}); got != 82 {
		t.Fatalf("checksum = %d, want 82", got)
	}
}

func TestChecksumEmpty(t *testing.T) {
	if got := checksum(nil); got != 0 {
		t.Fatalf("checksum(nil) = %d, want 0", got)
	}
}

func TestChecksumOnlyStartCode(t *testing.T) {
	if got := checksum([]int{cwStartB}); got != cwStartB%103 {
		t.Fatalf("checksum = %d, want %d", got, cwStartB%103)
	}
}

func TestPatternLooksUpWidthsTable(t *testing.T) {
	got := pattern([]int{0, 106})
	want := widths[0] + widths[106]
	if got != want {
		t.Fatalf("pattern = %q, want %q", got, want)
	}
}

func TestPatternStopWidthIsSevenDigits(t *testing.T) {
	if len(widths[cwStop]) != 7 {
		t.Fatalf("len(widths[cwStop]) = %d, want 7", len(widths[cwStop]))
	}
	for _, r := range widths[cwStop] {
		if r < '1' || r > '9' {
			t.Fatalf("stop pattern %q has a non-digit rune %q", widths[cwStop], r)
		}
	}
}

func TestReadableTextStripsFNCPlaceholders(t *testing.T) {
	content := string([]rune{'A', FNC1, 'B', FNC4, 'C'})
	if got := readableText(content, Generic); got != "ABC" {
		t.Fatalf("readableText = %q, want %q", got, "ABC")
	}
}

func TestReadableTextEmptyForGS1(t *testing.T) {
	if got := readableText("12345", GS1); got != "" {
		t.Fatalf("readableText = %q, want empty for GS1", got)
	}
}

func TestReadableTextWrapsHIBC(t *testing.T) {
	if got := readableText("A123", HIBC); got != "*A123*" {
		t.Fatalf("readableText = %q, want %q", got, "*A123*")
	}
}

func TestFrameAppendsCheckAndStop(t *testing.T) {
	full, patterns, heights := frame([]int{104, 33, 41, 45}, CompositeOff)
	want := []int{104, 33, 41, 45, 45, cwStop}
	for i, w := range want {
		if full[i] != w {
			t.Fatalf("full[%d] = %d, want %d", i, full[i], w)
		}
	}
	if len(patterns) != 1 || len(heights) != 1 || heights[0] != -1 {
		t.Fatalf("expected a single default-height row, got patterns=%v heights=%v", patterns, heights)
	}
}

func TestFrameCompositeProducesSeparatorRow(t *testing.T) {
	full, patterns, heights := frame([]int{104, 33, 41, 45}, CompositeCCA)
	mainPattern := pattern(full)
	if len(patterns) != 2 {
		t.Fatalf("len(patterns) = %d, want 2", len(patterns))
	}
	if patterns[0] != "0"+mainPattern {
		t.Fatalf("patterns[0] = %q, want %q", patterns[0], "0"+mainPattern)
	}
	if patterns[1] != mainPattern {
		t.Fatalf("patterns[1] = %q, want %q", patterns[1], mainPattern)
	}
	if heights[0] != 1 || heights[1] != -1 {
		t.Fatalf("heights = %v, want [1 -1]", heights)
	}
}
