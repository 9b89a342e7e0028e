package vgatext

import (
	"errors"
	"strings"
)

// ErrNoReadback is returned when an operation needs to read cells back but
// the console's surface is write-only (does not implement CellReader).
var ErrNoReadback = errors.New("vgatext: surface does not support readback")

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText captures plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailFull captures per-cell characters and colors.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a complete capture of the console's visible state, suitable
// for JSON serialization.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds the console dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds the cursor position at capture time.
type SnapshotCursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SnapshotLine is one row of the capture. Cells is populated only at
// SnapshotDetailFull.
type SnapshotLine struct {
	Text  string         `json:"text"`
	Cells []SnapshotCell `json:"cells,omitempty"`
}

// SnapshotCell is one cell of a full-detail capture. Colors are palette
// names ("black", "lightgreen", ...).
type SnapshotCell struct {
	Char string `json:"char"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
}

// Snapshot captures the console's visible state. It requires a surface with
// readback and returns ErrNoReadback otherwise.
func (c *Console) Snapshot(detail SnapshotDetail) (*Snapshot, error) {
	reader, ok := c.surface.(CellReader)
	if !ok {
		return nil, ErrNoReadback
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	snap := &Snapshot{
		Size:   SnapshotSize{Rows: c.rows, Cols: c.cols},
		Cursor: SnapshotCursor{Row: c.cursor.Row, Col: c.cursor.Col},
		Lines:  make([]SnapshotLine, c.rows),
	}

	for row := 0; row < c.rows; row++ {
		line := SnapshotLine{Text: lineContent(reader, row, c.cols)}

		if detail == SnapshotDetailFull {
			line.Cells = make([]SnapshotCell, c.cols)
			for col := 0; col < c.cols; col++ {
				cell := reader.Cell(row, col)
				line.Cells[col] = SnapshotCell{
					Char: string(cell.Rune()),
					Fg:   cell.Attr.Foreground().String(),
					Bg:   cell.Attr.Background().String(),
				}
			}
		}

		snap.Lines[row] = line
	}

	return snap, nil
}

// LineContent returns the text of one row with trailing blanks trimmed.
// Returns the empty string for out-of-range rows or write-only surfaces.
func (c *Console) LineContent(row int) string {
	reader, ok := c.surface.(CellReader)
	if !ok || row < 0 || row >= c.rows {
		return ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return lineContent(reader, row, c.cols)
}

// String returns the visible text of the whole console, rows joined with
// newlines and trailing empty rows trimmed. Write-only surfaces yield the
// empty string.
func (c *Console) String() string {
	reader, ok := c.surface.(CellReader)
	if !ok {
		return ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]string, c.rows)
	last := -1
	for row := 0; row < c.rows; row++ {
		lines[row] = lineContent(reader, row, c.cols)
		if lines[row] != "" {
			last = row
		}
	}

	return strings.Join(lines[:last+1], "\n")
}

// lineContent renders one row to text, trimming trailing spaces and blanks.
func lineContent(reader CellReader, row, cols int) string {
	lastVisible := -1
	for col := cols - 1; col >= 0; col-- {
		cell := reader.Cell(row, col)
		if cell.Char != 0 && cell.Char != ' ' {
			lastVisible = col
			break
		}
	}

	if lastVisible < 0 {
		return ""
	}

	runes := make([]rune, 0, lastVisible+1)
	for col := 0; col <= lastVisible; col++ {
		runes = append(runes, reader.Cell(row, col).Rune())
	}
	return string(runes)
}
