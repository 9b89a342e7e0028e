package vgatext

// cp437 maps every VGA display byte to the Unicode rune conventionally used to
// render it. The visible ASCII range maps to itself; the control slots and the
// high half follow the IBM PC code page 437 glyph set. Byte 0x00 and the
// non-breaking space at 0xFF both render as a blank.
var cp437 = [256]rune{
	// 0x00-0x1F
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•',
	'◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨',
	'↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
	// 0x20-0x3F
	' ', '!', '"', '#', '$', '%', '&', '\'',
	'(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', ':', ';', '<', '=', '>', '?',
	// 0x40-0x5F
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	// 0x60-0x7F
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',
	'x', 'y', 'z', '{', '|', '}', '~', '⌂',
	// 0x80-0x9F
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç',
	'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å',
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù',
	'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ',
	// 0xA0-0xBF
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º',
	'¿', '⌐', '¬', '½', '¼', '¡', '«', '»',
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖',
	'╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	// 0xC0-0xDF
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟',
	'╚', '╔', '╩', '╦', '╠', '═', '╬', '╧',
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫',
	'╪', '┘', '┌', '█', '▄', '▌', '▐', '▀',
	// 0xE0-0xFF
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ',
	'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩',
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈',
	'°', '∙', '·', '√', 'ⁿ', '²', '■', ' ',
}
