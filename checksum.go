package code128

import "strings"

// widths is the Code 128 module-width table (ISO/IEC 15417 Table 1),
// indexed by codeword value 0..106. Indices 0..105 are six-digit bar/
// space widths; index 106 (stop) is the seven-digit stop pattern. This
// table is symbology data fixed by the standard, identical across
// independent Code 128 implementations.
var widths = [107]string{
	"212222", "222122", "222221", "121223", "121322", "131222", "122213",
	"122312", "132212", "221213", "221312", "231212", "112232", "122132",
	"122231", "113222", "123122", "123221", "223211", "221132", "221231",
	"213212", "223112", "312131", "311222", "321122", "321221", "312212",
	"322112", "322211", "212123", "212321", "232121", "111323", "131123",
	"131321", "112313", "132113", "132311", "211313", "231113", "231311",
	"112133", "112331", "132131", "113123", "113321", "133121", "313121",
	"211331", "231131", "213113", "213311", "213131", "311123", "311321",
	"331121", "312113", "312311", "332111", "314111", "221411", "431111",
	"111224", "111422", "121124", "121421", "141122", "141221", "112214",
	"112412", "122114", "122411", "142112", "142211", "241211", "221114",
	"413111", "241112", "134111", "111242", "121142", "121241", "114212",
	"124112", "124211", "411212", "421112", "421211", "212141", "214121",
	"412121", "111143", "111341", "131141", "114113", "114311", "411113",
	"411311", "113141", "114131", "311141", "411131", "211412", "211214",
	"211232", "2331112",
}

// checksum computes the weighted mod-103 check codeword over the given
// codeword sequence (start .. linkage flag, excluding check and stop).
func checksum(codewords []int) int {
	if len(codewords) == 0 {
		return 0
	}
	sum := codewords[0]
	for i := 1; i < len(codewords); i++ {
		sum += i * codewords[i]
	}
	return sum % 103
}

// pattern concatenates the module-width digits for a full codeword
// sequence (including check and stop) into one row string.
func pattern(codewords []int) string {
	var b strings.Builder
	for _, v := range codewords {
		b.WriteString(widths[v])
	}
	return b.String()
}

// readableText derives the human-readable line from the original
// content: FNC placeholders stripped, wrapped in '*' for HIBC, empty
// for GS1.
func readableText(content string, dataType DataType) string {
	if dataType == GS1 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		if isFNC(int(r)) {
			continue
		}
		b.WriteRune(r)
	}
	readable := b.String()
	if dataType == HIBC {
		readable = "*" + readable + "*"
	}
	return readable
}

// frame computes the check codeword, appends the stop codeword, and
// materializes the module-width pattern row(s) and row heights,
// including the composite separator row.
func frame(dataCodewords []int, composite CompositeMode) (fullCodewords []int, patterns []string, rowHeights []int) {
	check := checksum(dataCodewords)
	full := make([]int, 0, len(dataCodewords)+2)
	full = append(full, dataCodewords...)
	full = append(full, check, cwStop)

	row := pattern(full)

	if composite == CompositeOff {
		return full, []string{row}, []int{-1}
	}
	return full, []string{"0" + row, row}, []int{1, -1}
}
