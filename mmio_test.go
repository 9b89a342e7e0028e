package vgatext

import (
	"runtime"
	"sync"
	"testing"
	"unsafe"
)

// heapSurface maps an MMIOSurface over a heap-allocated word slice so the
// volatile write path can be exercised without real hardware.
func heapSurface(rows, cols int) (*MMIOSurface, []uint16) {
	backing := make([]uint16, rows*cols)
	s := NewMMIOSurface(uintptr(unsafe.Pointer(&backing[0])), rows, cols)
	return s, backing
}

func TestMMIOSurfaceSetCell(t *testing.T) {
	s, backing := heapSurface(25, 80)
	cell := Cell{Char: 'A', Attr: NewAttr(White, Blue)}

	s.SetCell(0, 0, cell)
	if backing[0] != cell.Pack() {
		t.Errorf("expected 0x%04x at word 0, got 0x%04x", cell.Pack(), backing[0])
	}

	s.SetCell(24, 79, cell)
	if backing[24*80+79] != cell.Pack() {
		t.Errorf("expected 0x%04x at last word, got 0x%04x", cell.Pack(), backing[24*80+79])
	}

	if got := s.Cell(24, 79); got != cell {
		t.Errorf("expected %+v read back, got %+v", cell, got)
	}

	runtime.KeepAlive(backing)
}

func TestMMIOSurfaceFill(t *testing.T) {
	s, backing := heapSurface(25, 80)
	fill := Cell{Char: ' ', Attr: NewAttr(LightGreen, Black)}

	s.Fill(fill)

	for i, word := range backing {
		if word != fill.Pack() {
			t.Fatalf("word %d: expected 0x%04x, got 0x%04x", i, fill.Pack(), word)
		}
	}

	runtime.KeepAlive(backing)
}

func TestMMIOSurfaceDefaults(t *testing.T) {
	backing := make([]uint16, DefaultRows*DefaultCols)
	s := NewMMIOSurface(uintptr(unsafe.Pointer(&backing[0])), 0, 0)

	rows, cols := s.Size()
	if rows != DefaultRows || cols != DefaultCols {
		t.Errorf("expected %dx%d, got %dx%d", DefaultRows, DefaultCols, rows, cols)
	}

	runtime.KeepAlive(backing)
}

// TestMMIOSurfaceNoTornCells drives two consoles over one shared surface
// from separate goroutines. Every cell must come out as one writer's full
// byte+attribute pair; a byte from one writer with the other's color would
// mean a torn 16-bit store.
func TestMMIOSurfaceNoTornCells(t *testing.T) {
	s, backing := heapSurface(25, 80)

	attrA := NewAttr(White, Blue)
	attrB := NewAttr(Yellow, Red)
	cellA := Cell{Char: 'A', Attr: attrA}.Pack()
	cellB := Cell{Char: 'B', Attr: attrB}.Pack()

	consoleA := NewConsole(WithSurface(s), WithColor(White, Blue))
	consoleB := NewConsole(WithSurface(s), WithColor(Yellow, Red))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			consoleA.WriteByte('A')
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			consoleB.WriteByte('B')
		}
	}()
	wg.Wait()

	for i, word := range backing {
		if word != 0 && word != cellA && word != cellB {
			t.Fatalf("word %d: torn cell 0x%04x", i, word)
		}
	}

	runtime.KeepAlive(backing)
}
