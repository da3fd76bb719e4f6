// Package colour provides the WCAG colour maths used by contrast: hex parsing,
// relative luminance, contrast ratios, compliance levels and suggestions.
package colour

import (
	"fmt"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex decodes a "#rrggbb" or "rrggbb" string (case-insensitive).
// The 3-digit shorthand is not accepted. The second return value is false
// when hex is not a valid colour.
func ParseHex(hex string) (RGB, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := range channels {
		hi, ok := hexNibble(hex[i*2])
		if !ok {
			return RGB{}, false
		}
		lo, ok := hexNibble(hex[i*2+1])
		if !ok {
			return RGB{}, false
		}
		channels[i] = hi<<4 | lo
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// Encode formats the components as "#rrggbb". Components outside 0-255 are
// clamped rather than wrapped.
func Encode(r, g, b int) string {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}.Hex()
}

// hexNibble converts a single hex digit to its value.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
