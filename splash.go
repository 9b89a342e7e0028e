package vgatext

import "strings"

// The boot banner. Static text, eighty columns, nothing clever.
var splashBanner = []string{
	"==========================================================================",
	"   _   _      _ _        __        __         _     _ _ ",
	"  | | | | ___| | | ___   \\ \\      / /__  _ __| | __| | |",
	"  | |_| |/ _ \\ | |/ _ \\   \\ \\ /\\ / / _ \\| '__| |/ _` | |",
	"  |  _  |  __/ | | (_) |   \\ V  V / (_) | |  | | (_| |_|",
	"  |_| |_|\\___|_|_|\\___/     \\_/\\_/ \\___/|_|  |_|\\__,_(_)",
	"",
	"  Eighty columns, twenty-five rows, and not a pixel more.",
	"==========================================================================",
	"",
}

var splashStatus = []string{
	"  [OK] Booted into 32-bit protected mode",
	"  [OK] VGA text mode: 80x25",
	"",
}

var splashOutro = []string{
	"  This OS does exactly one thing, and it does it well.",
	"",
	"  Now entering infinite loop. As one does.",
}

// Splash clears the console and renders the boot banner: the headline art in
// light green, the status lines in white, the sign-off in green. The console
// is left with green-on-black as its active color, cursor below the last
// line.
func Splash(c *Console) {
	c.SetColor(LightGreen, Black)
	c.Clear()
	for _, line := range splashBanner {
		c.WriteString(line + "\n")
	}

	c.SetColor(White, Black)
	for _, line := range splashStatus {
		c.WriteString(line + "\n")
	}

	c.SetColor(Green, Black)
	for _, line := range splashOutro {
		c.WriteString(line + "\n")
	}
}

// CenterText writes s horizontally centered on the current row, followed by a
// newline. Text wider than the console is written as-is and wraps.
func CenterText(c *Console, s string) {
	pad := (c.Cols() - StringWidth(s)) / 2
	if pad > 0 {
		c.WriteString(strings.Repeat(" ", pad))
	}
	c.WriteString(s + "\n")
}
