package vgatext

// Color is one of the 16 colors of the VGA text-mode palette.
type Color uint8

// The standard VGA text-mode palette. Colors 0-7 can be used for both
// foreground and background; 8-15 are the bright variants.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan",
	"red", "magenta", "brown", "lightgrey",
	"darkgrey", "lightblue", "lightgreen", "lightcyan",
	"lightred", "lightmagenta", "yellow", "white",
}

// String returns the lowercase color name, or "invalid" for values outside the palette.
func (c Color) String() string {
	if c > White {
		return "invalid"
	}
	return colorNames[c]
}

// Attr is a packed VGA attribute byte: background color in the high nibble,
// foreground color in the low nibble.
type Attr uint8

// NewAttr packs a foreground and background color into an attribute byte.
func NewAttr(fg, bg Color) Attr {
	return Attr(bg)<<4 | Attr(fg&0x0f)
}

// Foreground returns the foreground color stored in the low nibble.
func (a Attr) Foreground() Color {
	return Color(a & 0x0f)
}

// Background returns the background color stored in the high nibble.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

// DefaultAttr is the attribute a new console starts with: light green text on black.
const DefaultAttr = Attr(uint8(Black)<<4 | uint8(LightGreen))

// Replacement is the glyph substituted for bytes outside the printable range
// (CP437 0xFE, a filled square). It keeps control bytes and other garbage from
// corrupting the display.
const Replacement byte = 0xFE

// Cell is one character position on a surface: a display byte and its
// attribute. A blank cell still carries an attribute so cleared regions render
// with a consistent background.
type Cell struct {
	Char byte
	Attr Attr
}

// Pack encodes the cell in VGA text memory layout: attribute in the high byte,
// character in the low byte.
func (c Cell) Pack() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

// UnpackCell decodes a cell from its VGA memory representation.
func UnpackCell(v uint16) Cell {
	return Cell{Char: byte(v), Attr: Attr(v >> 8)}
}

// Rune returns the Unicode rune that displays this cell's byte, using the
// CP437 glyph table for values outside plain ASCII.
func (c Cell) Rune() rune {
	return cp437[c.Char]
}

// printable reports whether b passes through the writer unchanged.
// The printable set is the visible ASCII range 0x20..0x7E.
func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
