package vgatext

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width of r: 2 for wide characters (CJK,
// emoji), 1 for normal, 0 for zero-width (combining marks, control runes).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the display width of s in character cells.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
