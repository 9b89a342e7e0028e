// Package vgatext emulates the classic VGA text mode: an 80x25 grid of
// byte+attribute cells and a cursor-tracking console writer with typewriter
// semantics.
//
// It exists for the places that still look like 1987: boot banners, kernel
// consoles, retro UIs, and emulators that need the exact silent-overflow,
// no-scrollback behavior of the hardware text buffer — plus modern frontends
// to actually see the result.
//
// # Quick Start
//
// Create a console and write to it:
//
//	console := vgatext.NewConsole()
//	console.WriteString("hello, world\n")
//	fmt.Println(console) // "hello, world"
//
// Console implements io.Writer, so fmt works against it directly:
//
//	fmt.Fprintf(console, "[OK] %s\n", "VGA text mode: 80x25")
//
// # Semantics
//
// The console behaves like the hardware text buffer, not like a terminal:
//
//   - Newline moves the cursor to the start of the next row; no cell is
//     written for it.
//   - Writing past the right edge wraps to the next row.
//   - Writing past the bottom row is silently dropped. There is no
//     scrolling and no error: nothing in a boot path can recover from one.
//   - Bytes outside printable ASCII render as the Replacement glyph (0xFE,
//     a filled square), so control bytes never corrupt the display.
//   - Colors are the 16-entry VGA palette, packed two nibbles to an
//     attribute byte. SetColor affects subsequent writes only.
//
// # Surfaces
//
// The console writes through the Surface interface. Three implementations
// ship with the package:
//
//   - [MemorySurface]: in-memory grid with readback. The default, and the
//     test double for everything else.
//   - [MMIOSurface]: a hardware-mapped frame buffer at a fixed base address
//     (VGABase = 0xB8000 on PC hardware). Every cell store is a single
//     atomic 16-bit write, so the device never sees a torn cell and the
//     compiler cannot elide or reorder the accesses. This type is the
//     package's only unsafe boundary.
//   - [TcellSurface]: renders onto a live terminal via tcell, mapping the
//     VGA palette to RGB and CP437 bytes to their Unicode glyphs.
//
//	screen, _ := tcell.NewScreen()
//	screen.Init()
//	surface := vgatext.NewTcellSurface(screen, 25, 80)
//	console := vgatext.NewConsole(vgatext.WithSurface(surface))
//	vgatext.Splash(console)
//	surface.Show()
//
// # Fault Path
//
// Fault is the terminal-error entry point: it forces white-on-black, prints
// a panic header and a message, and returns so the caller can park forever.
// Its lock acquisition is best-effort so a fault raised mid-write cannot
// deadlock against the writer it interrupted:
//
//	defer func() {
//		if r := recover(); r != nil {
//			console.Fault(fmt.Sprint(r))
//		}
//	}()
//
// # Capturing Output
//
// Consoles backed by a readable surface can be captured as text, JSON, or
// pixels:
//
//	text := console.LineContent(3)
//	snap, _ := console.Snapshot(vgatext.SnapshotDetailFull)
//	img, _ := console.Screenshot() // *image.RGBA, ready for png.Encode
//
// # Thread Safety
//
// All console methods are safe for concurrent use; cursor and attribute
// updates happen under an internal mutex, and MMIOSurface stores are atomic,
// so two writers never produce a cell mixing one writer's byte with the
// other's color.
package vgatext
