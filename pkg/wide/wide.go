// Package wide converts host UTF-8 text to the UTF-16 code-unit form
// native toolkits expect for titles and filter descriptions.
package wide

import "unicode/utf16"

// String is a UTF-16 code-unit sequence in toolkit byte order.
type String []uint16

// FromUTF8 converts a UTF-8 Go string to its wide form.
// Invalid byte sequences are replaced with U+FFFD, matching the
// lenient conversion native shells apply at this boundary.
func FromUTF8(s string) String {
	return utf16.Encode([]rune(s))
}

// ToUTF8 converts a wide string back to UTF-8. Used by simulated
// toolkits and tests; real toolkits consume the wide form directly.
func (w String) ToUTF8() string {
	return string(utf16.Decode(w))
}

// Len returns the number of UTF-16 code units.
func (w String) Len() int {
	return len(w)
}
