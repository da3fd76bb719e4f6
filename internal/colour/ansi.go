package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBold     = "\033[1m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bgEscape(c) + strings.Repeat(" ", width) + ansiReset
}

// SamplePreview renders text in fg on a bg block, centred within width.
// Text longer than width is truncated.
func SamplePreview(fg, bg RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bgEscape(bg) + fgEscape(fg) + displayText + ansiReset
}

// LargeSamplePreview is SamplePreview in bold, the closest a terminal gets
// to WCAG large text.
func LargeSamplePreview(fg, bg RGB, text string, width int) string {
	return ansiBold + SamplePreview(fg, bg, text, width)
}

// ButtonPreview renders a filled button (bg-coloured label on an fg fill)
// followed by an outlined one (fg label and brackets on bg).
func ButtonPreview(fg, bg RGB, label string) string {
	filled := fgEscape(bg) + bgEscape(fg) + " " + label + " " + ansiReset
	outlined := bgEscape(bg) + fgEscape(fg) + "[" + label + "]" + ansiReset
	return filled + " " + outlined
}

// HexUpper returns the hex code in uppercase (e.g., "#1A2B3C").
func (rgb RGB) HexUpper() string {
	return strings.ToUpper(rgb.Hex())
}

// FormatColourWithPreview formats a colour with its preview, hex code and RGB triple.
func FormatColourWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s  %s", ColourPreview(rgb, width), rgb.Hex(), rgb.String())
}

// SupportsANSIColours reports whether f is a terminal that should receive
// colour escapes. NO_COLOR and TERM=dumb disable colour.
func SupportsANSIColours(f *os.File) bool {
	if f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func bgEscape(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fgEscape(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
