// Package encoding provides text helpers for the fixed-size and
// ASCII-only text fields of STL files.
package encoding

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold strips combining marks after canonical decomposition so
// "Café" becomes "Cafe", then replaces whatever is still outside
// printable ASCII.
func asciiFold() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r < 0x20 || r > 0x7e {
				return '_'
			}
			return r
		}),
	)
}

// ToASCII folds s to printable ASCII.
// Returns s with every non-ASCII rune replaced if folding fails.
func ToASCII(s string) string {
	result, _, err := transform.String(asciiFold(), s)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if r < 0x20 || r > 0x7e {
				return '_'
			}
			return r
		}, s)
	}
	return result
}

// SolidName returns a name usable after "solid" in an ASCII STL: folded to
// ASCII with whitespace runs collapsed to a single underscore.
func SolidName(s string) string {
	return strings.Join(strings.Fields(ToASCII(s)), "_")
}

// TrimNullBytes removes trailing null bytes from a byte slice.
func TrimNullBytes(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

// TrimNullString removes trailing null bytes and converts to string.
func TrimNullString(data []byte) string {
	return string(TrimNullBytes(data))
}

// FixedStringToString extracts the text of a fixed-size header field.
// Stops at the first null byte and drops trailing space padding.
func FixedStringToString(data []byte) string {
	if nullIdx := bytes.IndexByte(data, 0); nullIdx >= 0 {
		data = data[:nullIdx]
	}
	return strings.TrimRight(string(data), " ")
}

// StringToFixed converts s to a fixed-size ASCII byte array.
// Pads with null bytes or truncates to fill the specified size.
func StringToFixed(s string, size int) []byte {
	result := make([]byte, size)
	copy(result, ToASCII(s))
	return result
}
