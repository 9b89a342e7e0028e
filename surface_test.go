package vgatext

import "testing"

func TestNewMemorySurface(t *testing.T) {
	s := NewMemorySurface(25, 80)

	rows, cols := s.Size()
	if rows != 25 || cols != 80 {
		t.Errorf("expected 25x80, got %dx%d", rows, cols)
	}
}

func TestNewMemorySurfaceDefaults(t *testing.T) {
	s := NewMemorySurface(0, -1)

	rows, cols := s.Size()
	if rows != DefaultRows || cols != DefaultCols {
		t.Errorf("expected %dx%d, got %dx%d", DefaultRows, DefaultCols, rows, cols)
	}
}

func TestMemorySurfaceSetCell(t *testing.T) {
	s := NewMemorySurface(25, 80)
	cell := Cell{Char: 'A', Attr: NewAttr(White, Blue)}

	// Every corner, per the edge positions that matter.
	positions := [][2]int{{0, 0}, {0, 79}, {24, 0}, {24, 79}}
	for _, pos := range positions {
		s.SetCell(pos[0], pos[1], cell)
		if got := s.Cell(pos[0], pos[1]); got != cell {
			t.Errorf("(%d,%d): expected %+v, got %+v", pos[0], pos[1], cell, got)
		}
	}
}

func TestMemorySurfaceOutOfBounds(t *testing.T) {
	s := NewMemorySurface(25, 80)
	cell := Cell{Char: 'A', Attr: DefaultAttr}

	// Writes outside the grid are dropped, reads yield the zero cell.
	s.SetCell(-1, 0, cell)
	s.SetCell(0, -1, cell)
	s.SetCell(25, 0, cell)
	s.SetCell(0, 80, cell)

	if got := s.Cell(25, 0); got != (Cell{}) {
		t.Errorf("expected zero cell, got %+v", got)
	}
	if got := s.Cell(0, -1); got != (Cell{}) {
		t.Errorf("expected zero cell, got %+v", got)
	}
}

func TestMemorySurfaceFill(t *testing.T) {
	s := NewMemorySurface(5, 10)
	fill := Cell{Char: ' ', Attr: NewAttr(White, Blue)}

	s.SetCell(2, 3, Cell{Char: 'x', Attr: DefaultAttr})
	s.Fill(fill)

	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if got := s.Cell(row, col); got != fill {
				t.Fatalf("(%d,%d): expected %+v, got %+v", row, col, fill, got)
			}
		}
	}
}
