package code128

import "golang.org/x/text/encoding/charmap"

// maxContentLength is the ISO/IEC 15417 input length ceiling.
const maxContentLength = 170

// normalize maps the input rune sequence to Code 128's internal code-point
// sequence: ISO 8859-1 byte values 0..255, or one of the four reserved FNC
// placeholders. GS1 '[' is translated to FNC1 here; GS1 does not otherwise
// validate AI syntax.
func normalize(content []rune, dataType DataType) ([]int, *EncodeError) {
	if len(content) > maxContentLength {
		return nil, &EncodeError{Kind: TooLong, Msg: "input data too long"}
	}

	enc := charmap.ISO8859_1.NewEncoder()
	out := make([]int, len(content))
	for i, r := range content {
		switch {
		case dataType == GS1 && r == '[':
			out[i] = FNC1
		case isFNC(int(r)):
			out[i] = int(r)
		default:
			b, err := enc.Bytes([]byte(string(r)))
			if err != nil || len(b) != 1 {
				return nil, &EncodeError{
					Kind: InvalidCharacter,
					Msg:  "bad character in input",
				}
			}
			out[i] = int(b[0])
		}
	}
	return out, nil
}
