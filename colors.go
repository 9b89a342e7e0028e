package vgatext

import "image/color"

// Palette maps the 16 VGA colors to the RGB values of the standard EGA/VGA
// text-mode palette. Frontends that render to pixels or modern terminals use
// this table; the attribute bytes on a surface only ever store the 4-bit
// indices.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, // Black
	{0x00, 0x00, 0xaa, 0xff}, // Blue
	{0x00, 0xaa, 0x00, 0xff}, // Green
	{0x00, 0xaa, 0xaa, 0xff}, // Cyan
	{0xaa, 0x00, 0x00, 0xff}, // Red
	{0xaa, 0x00, 0xaa, 0xff}, // Magenta
	{0xaa, 0x55, 0x00, 0xff}, // Brown
	{0xaa, 0xaa, 0xaa, 0xff}, // LightGrey
	{0x55, 0x55, 0x55, 0xff}, // DarkGrey
	{0x55, 0x55, 0xff, 0xff}, // LightBlue
	{0x55, 0xff, 0x55, 0xff}, // LightGreen
	{0x55, 0xff, 0xff, 0xff}, // LightCyan
	{0xff, 0x55, 0x55, 0xff}, // LightRed
	{0xff, 0x55, 0xff, 0xff}, // LightMagenta
	{0xff, 0xff, 0x55, 0xff}, // Yellow
	{0xff, 0xff, 0xff, 0xff}, // White
}

// RGB returns the palette entry for the color. Values outside the palette
// resolve to black.
func (c Color) RGB() color.RGBA {
	if c > White {
		return Palette[Black]
	}
	return Palette[c]
}
