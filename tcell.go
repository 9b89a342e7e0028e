package vgatext

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellSurface renders console cells onto a live terminal through tcell.
// Attribute nibbles are resolved through the VGA palette to RGB styles and
// display bytes through the CP437 glyph table, so box drawing and shade
// characters come out looking the way the hardware would draw them.
//
// tcell batches updates internally; call Show after a burst of writes to
// flush them to the terminal.
type TcellSurface struct {
	mu     sync.Mutex
	screen tcell.Screen
	rows   int
	cols   int
}

var _ Surface = (*TcellSurface)(nil)

// NewTcellSurface wraps an initialized tcell screen. The surface occupies
// the top-left rows x cols region of the screen; values <= 0 are replaced
// with the VGA defaults.
func NewTcellSurface(screen tcell.Screen, rows, cols int) *TcellSurface {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}

	return &TcellSurface{
		screen: screen,
		rows:   rows,
		cols:   cols,
	}
}

// Size returns the surface dimensions in character cells.
func (s *TcellSurface) Size() (rows, cols int) {
	return s.rows, s.cols
}

// SetCell writes one cell at (row, col).
// Does nothing if the position is out of bounds.
func (s *TcellSurface) SetCell(row, col int, cell Cell) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.SetContent(col, row, cell.Rune(), nil, styleFor(cell.Attr))
}

// Fill overwrites every cell on the surface.
func (s *TcellSurface) Fill(cell Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()

	glyph := cell.Rune()
	style := styleFor(cell.Attr)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			s.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

// Show flushes pending updates to the terminal.
func (s *TcellSurface) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Show()
}

// styleFor resolves a VGA attribute byte to a tcell style.
func styleFor(a Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(a.Foreground())).
		Background(tcellColor(a.Background()))
}

// tcellColor resolves a palette index to an exact RGB tcell color.
func tcellColor(c Color) tcell.Color {
	rgb := c.RGB()
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
