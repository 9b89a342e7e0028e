package vgatext

import (
	"io"
	"sync"
)

// FaultHeader is the banner line Fault writes before the diagnostic message.
const FaultHeader = "!!! KERNEL PANIC !!!"

// Console turns a byte stream into surface writes with typewriter semantics:
// the cursor advances cell by cell, newlines and column overflow move it to
// the start of the next row, and output past the bottom row is silently
// dropped (there is no scrolling). Bytes outside the printable ASCII range
// are rendered as the Replacement glyph.
//
// A console owns its cursor and active attribute and guards them with a
// mutex, so writers on different goroutines never interleave inside a single
// cell or read-modify-write of the cursor.
type Console struct {
	mu      sync.Mutex
	surface Surface
	rows    int
	cols    int
	cursor  Cursor
	attr    Attr
}

var (
	_ io.Writer       = (*Console)(nil)
	_ io.StringWriter = (*Console)(nil)
	_ io.ByteWriter   = (*Console)(nil)
)

// Option configures a Console during construction.
type Option func(*Console)

// WithSurface sets the surface the console writes to. The console adopts the
// surface's dimensions. Defaults to an in-memory surface if not set.
func WithSurface(s Surface) Option {
	return func(c *Console) {
		c.surface = s
	}
}

// WithSize sets the dimensions of the default in-memory surface.
// Ignored when WithSurface is also given; values <= 0 are replaced with the
// VGA defaults (25x80).
func WithSize(rows, cols int) Option {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}

	return func(c *Console) {
		c.rows = rows
		c.cols = cols
	}
}

// WithColor sets the initial foreground and background color.
// Defaults to light green on black.
func WithColor(fg, bg Color) Option {
	return func(c *Console) {
		c.attr = NewAttr(fg, bg)
	}
}

// NewConsole creates a console with the given options.
// Defaults to 25x80 on an in-memory surface, light green on black, cursor at
// the origin.
func NewConsole(opts ...Option) *Console {
	c := &Console{
		rows: DefaultRows,
		cols: DefaultCols,
		attr: DefaultAttr,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.surface == nil {
		c.surface = NewMemorySurface(c.rows, c.cols)
	}
	c.rows, c.cols = c.surface.Size()

	return c
}

// Rows returns the console height in character rows.
func (c *Console) Rows() int {
	return c.rows
}

// Cols returns the console width in character columns.
func (c *Console) Cols() int {
	return c.cols
}

// Surface returns the surface the console writes to.
func (c *Console) Surface() Surface {
	return c.surface
}

// CursorPos returns the current cursor position.
func (c *Console) CursorPos() (row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor.Row, c.cursor.Col
}

// Attr returns the active attribute.
func (c *Console) Attr() Attr {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.attr
}

// SetAttr replaces the active attribute. It affects subsequent writes only;
// cells already on the surface keep the attribute they were written with.
func (c *Console) SetAttr(a Attr) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.attr = a
}

// SetColor sets the active foreground and background color for subsequent
// writes.
func (c *Console) SetColor(fg, bg Color) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.attr = NewAttr(fg, bg)
}

// Clear fills the whole surface with blank cells in the active attribute and
// moves the cursor to the origin.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.surface.Fill(Cell{Char: ' ', Attr: c.attr})
	c.cursor = Cursor{}
}

// WriteByte writes a single byte. A newline moves the cursor to the start of
// the next row without touching any cell; any other byte lands at the cursor
// and advances it, wrapping at the right edge. The returned error is always
// nil; the signature exists to satisfy io.ByteWriter.
func (c *Console) WriteByte(b byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writeByte(b)
	return nil
}

// Write writes every byte of p in order. It never fails: unmappable bytes
// degrade to the Replacement glyph and output past the bottom row is dropped.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, b := range p {
		c.writeByte(b)
	}
	return len(p), nil
}

// WriteString writes every byte of s in order. Like Write, it never fails.
func (c *Console) WriteString(s string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i < len(s); i++ {
		c.writeByte(s[i])
	}
	return len(s), nil
}

// WriteRune writes a single rune. ASCII goes through the byte path
// unchanged. Runes the VGA byte set cannot represent degrade to the
// Replacement glyph, occupying two cells when the rune is wide (CJK, emoji)
// so follow-up text keeps its alignment; zero-width runes are dropped.
func (c *Console) WriteRune(r rune) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r < 0x80 {
		c.writeByte(byte(r))
		return
	}

	switch runeWidth(r) {
	case 0:
		// combining marks and other zero-width input
	case 2:
		c.writeByte(Replacement)
		c.writeByte(Replacement)
	default:
		c.writeByte(Replacement)
	}
}

// writeByte applies the typewriter semantics with the lock held.
func (c *Console) writeByte(b byte) {
	if b == '\n' {
		c.cursor.Col = 0
		c.cursor.Row++
		return
	}

	if !printable(b) {
		b = Replacement
	}

	// Resolve a pending wrap before the visible write.
	if c.cursor.Col >= c.cols {
		c.cursor.Col = 0
		c.cursor.Row++
	}

	// Past the bottom row output is dropped: no scrolling, no error — there
	// is no caller in a position to observe or recover from one.
	if c.cursor.Row >= c.rows {
		return
	}

	c.surface.SetCell(c.cursor.Row, c.cursor.Col, Cell{Char: b, Attr: c.attr})
	c.cursor.Col++
}

// Fault renders a terminal diagnostic: it forces white-on-black, writes the
// fault header and the message on fresh lines, and leaves the console as it
// stands. It is meant to be called from a panic or trap path after which the
// process parks forever.
//
// Lock acquisition is best-effort. The fault path may run while a writer on
// the main sequence holds the lock and will never resume; blocking on it
// would trade a visible diagnostic for a silent deadlock.
func (c *Console) Fault(msg string) {
	if c.mu.TryLock() {
		defer c.mu.Unlock()
	}

	c.attr = NewAttr(White, Black)
	c.writeByte('\n')
	for i := 0; i < len(FaultHeader); i++ {
		c.writeByte(FaultHeader[i])
	}
	c.writeByte('\n')
	for i := 0; i < len(msg); i++ {
		c.writeByte(msg[i])
	}
	c.writeByte('\n')
}
