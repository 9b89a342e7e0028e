package vgatext

import (
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how a console is rendered to an image.
type ScreenshotConfig struct {
	// Font face used for glyphs. If nil, basicfont.Face7x13 is used.
	Font font.Face

	// CellWidth and CellHeight override the cell pixel dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Palette overrides the 16-color VGA palette. If nil, Palette is used.
	Palette *[16]color.RGBA

	// ShowCursor renders the cursor cell with inverted colors. Default false:
	// the VGA cursor is a hardware overlay, not part of the cell contents.
	ShowCursor bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Screenshot renders the console to an RGBA image with default settings.
// It requires a surface with readback and returns ErrNoReadback otherwise.
func (c *Console) Screenshot() (*image.RGBA, error) {
	return c.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the console to an RGBA image.
func (c *Console) ScreenshotWithConfig(cfg *ScreenshotConfig) (*image.RGBA, error) {
	reader, ok := c.surface.(CellReader)
	if !ok {
		return nil, ErrNoReadback
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &Palette
	}

	imgWidth := c.cols * cellWidth
	imgHeight := c.rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	baselineOffset := face.Metrics().Ascent.Ceil()

	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cell := reader.Cell(row, col)
			fg := palette[cell.Attr.Foreground()&0x0f]
			bg := palette[cell.Attr.Background()&0x0f]

			x := col * cellWidth
			y := row * cellHeight

			for py := 0; py < cellHeight; py++ {
				for px := 0; px < cellWidth; px++ {
					img.SetRGBA(x+px, y+py, bg)
				}
			}

			glyph := cell.Rune()
			if glyph == ' ' {
				continue
			}

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, y+baselineOffset),
			}
			d.DrawString(string(glyph))
		}
	}

	if cfg.ShowCursor && c.cursor.Row < c.rows && c.cursor.Col < c.cols {
		x := c.cursor.Col * cellWidth
		y := c.cursor.Row * cellHeight
		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				existing := img.RGBAAt(x+px, y+py)
				img.SetRGBA(x+px, y+py, color.RGBA{
					R: 255 - existing.R,
					G: 255 - existing.G,
					B: 255 - existing.B,
					A: 255,
				})
			}
		}
	}

	return img, nil
}
