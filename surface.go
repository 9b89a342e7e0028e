package vgatext

const (
	// DefaultRows is the height of the historical VGA text mode.
	DefaultRows = 25
	// DefaultCols is the width of the historical VGA text mode.
	DefaultCols = 80
)

// Surface is the write path to a text-mode display. It is deliberately
// write-only: the console never needs to read the screen back, and some
// backends (real frame buffers in particular) make reads expensive or
// meaningless.
//
// Implementations in this package: MemorySurface (in-memory grid),
// MMIOSurface (hardware-mapped frame buffer), TcellSurface (live terminal).
type Surface interface {
	// Size returns the surface dimensions in character cells.
	Size() (rows, cols int)

	// SetCell writes one cell at (row, col). Callers are responsible for
	// keeping row and col inside the surface bounds.
	SetCell(row, col int, cell Cell)

	// Fill overwrites every cell on the surface.
	Fill(cell Cell)
}

// CellReader is implemented by surfaces that support reading cells back.
// Snapshots and screenshots require it.
type CellReader interface {
	// Cell returns the cell at (row, col), or the zero cell when the
	// position is out of bounds.
	Cell(row, col int) Cell
}

// MemorySurface is an in-memory cell grid. It is the default backing for a
// console and doubles as the injectable store used by tests: unlike the MMIO
// path it bounds-checks writes and supports readback.
type MemorySurface struct {
	rows  int
	cols  int
	cells [][]Cell
}

var (
	_ Surface    = (*MemorySurface)(nil)
	_ CellReader = (*MemorySurface)(nil)
)

// NewMemorySurface creates a surface with the given dimensions.
// Values <= 0 are replaced with the VGA defaults (25x80).
func NewMemorySurface(rows, cols int) *MemorySurface {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}

	s := &MemorySurface{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}
	for i := range s.cells {
		s.cells[i] = make([]Cell, cols)
	}
	return s
}

// Size returns the surface dimensions in character cells.
func (s *MemorySurface) Size() (rows, cols int) {
	return s.rows, s.cols
}

// SetCell writes one cell at (row, col).
// Does nothing if the position is out of bounds.
func (s *MemorySurface) SetCell(row, col int, cell Cell) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.cells[row][col] = cell
}

// Cell returns the cell at (row, col), or the zero cell when out of bounds.
func (s *MemorySurface) Cell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Cell{}
	}
	return s.cells[row][col]
}

// Fill overwrites every cell on the surface.
func (s *MemorySurface) Fill(cell Cell) {
	for row := range s.cells {
		for col := range s.cells[row] {
			s.cells[row][col] = cell
		}
	}
}
