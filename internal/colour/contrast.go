package colour

import "fmt"

// NoContrast is returned by ContrastRatio when either colour cannot be parsed.
// It fails every compliance level.
const NoContrast = 1.0

// ContrastRatio calculates the WCAG contrast ratio between two hex colours.
// Returns a value between 1 and 21, where 21 is black against white. If
// either colour is invalid the result is NoContrast.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
func ContrastRatio(c1, c2 string) float64 {
	rgb1, ok := ParseHex(c1)
	if !ok {
		return NoContrast
	}
	rgb2, ok := ParseHex(c2)
	if !ok {
		return NoContrast
	}
	return ContrastRatioRGB(rgb1, rgb2)
}

// ContrastRatioRGB calculates the contrast ratio between two decoded colours.
func ContrastRatioRGB(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// FormatRatio renders a ratio the way it is shown to users, e.g. "4.48:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
