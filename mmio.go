package vgatext

import (
	"sync/atomic"
	"unsafe"
)

// VGABase is the physical address of the VGA text-mode frame buffer on PC
// hardware.
const VGABase uintptr = 0xb8000

// MMIOSurface drives a hardware-mapped text-mode frame buffer. All raw
// address arithmetic in this package is confined to this type; everything
// else talks to it through the Surface interface.
//
// Each cell occupies one 16-bit word (attribute in the high byte, character
// in the low byte) and every store and load goes through sync/atomic, so a
// cell is never observable half-written and the compiler cannot elide or
// reorder accesses to the region. That is as close to volatile semantics as
// Go offers, and it is what memory-mapped hardware needs: the device may
// react to each individual store.
//
// Unlike MemorySurface there is no bounds checking beyond the slice's own;
// an out-of-range position is a caller bug and panics.
type MMIOSurface struct {
	rows int
	cols int
	fb   []uint16
}

var (
	_ Surface    = (*MMIOSurface)(nil)
	_ CellReader = (*MMIOSurface)(nil)
)

// NewMMIOSurface maps rows x cols cells starting at base.
//
// The region must already be mapped and writable (an environment
// precondition, not something this package can verify) and must stay mapped
// for the life of the process. Nothing else may write to it. Values <= 0 for
// rows or cols are replaced with the VGA defaults.
func NewMMIOSurface(base uintptr, rows, cols int) *MMIOSurface {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}

	return &MMIOSurface{
		rows: rows,
		cols: cols,
		fb:   unsafe.Slice((*uint16)(unsafe.Pointer(base)), rows*cols),
	}
}

// NewVGASurface maps the standard 80x25 text buffer at VGABase.
func NewVGASurface() *MMIOSurface {
	return NewMMIOSurface(VGABase, DefaultRows, DefaultCols)
}

// Size returns the surface dimensions in character cells.
func (s *MMIOSurface) Size() (rows, cols int) {
	return s.rows, s.cols
}

// SetCell stores one cell at (row, col) with a single atomic 16-bit write.
// Row and col must be within the surface bounds.
func (s *MMIOSurface) SetCell(row, col int, cell Cell) {
	atomic.StoreUint16(&s.fb[row*s.cols+col], cell.Pack())
}

// Cell loads the cell at (row, col). The load is atomic for the same reason
// the stores are: a stale or torn read of device memory is never acceptable.
func (s *MMIOSurface) Cell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Cell{}
	}
	return UnpackCell(atomic.LoadUint16(&s.fb[row*s.cols+col]))
}

// Fill overwrites every cell in the mapped region.
func (s *MMIOSurface) Fill(cell Cell) {
	packed := cell.Pack()
	for i := range s.fb {
		atomic.StoreUint16(&s.fb[i], packed)
	}
}
