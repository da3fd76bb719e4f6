package colour

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{name: "black", rgb: RGB{}, want: 0},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: 1},
		{name: "red", rgb: RGB{R: 255}, want: 0.2126},
		{name: "green", rgb: RGB{G: 255}, want: 0.7152},
		{name: "blue", rgb: RGB{B: 255}, want: 0.0722},
		// 10/255 is below the 0.03928 knee so it stays linear.
		{name: "linear segment", rgb: RGB{R: 10, G: 10, B: 10}, want: 10.0 / 255.0 / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.rgb)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance(%+v) = %f, want %f", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 string
		want   float64
	}{
		{name: "black on white", c1: "#000000", c2: "#ffffff", want: 21.0},
		{name: "same colour", c1: "#000000", c2: "#000000", want: 1.0},
		{name: "grey on white", c1: "#777777", c2: "#ffffff", want: 4.48},
		{name: "no hash", c1: "000000", c2: "FFFFFF", want: 21.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContrastRatio(tt.c1, tt.c2)
			if math.Abs(got-tt.want) > 0.005 {
				t.Errorf("ContrastRatio(%s, %s) = %.4f, want %.2f", tt.c1, tt.c2, got, tt.want)
			}
		})
	}
}

func TestContrastRatioBelowAAThreshold(t *testing.T) {
	// #777777 on white is the classic near-miss for AA normal text.
	if got := ContrastRatio("#777777", "#ffffff"); got >= 4.5 {
		t.Errorf("ContrastRatio(#777777, #ffffff) = %f, want < 4.5", got)
	}
}

func TestContrastRatioInvalid(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 string
	}{
		{name: "bad foreground", c1: "bad", c2: "#ffffff"},
		{name: "bad background", c1: "#000000", c2: "#fff"},
		{name: "both bad", c1: "", c2: "zzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastRatio(tt.c1, tt.c2); got != NoContrast {
				t.Errorf("ContrastRatio(%q, %q) = %f, want %f", tt.c1, tt.c2, got, NoContrast)
			}
		})
	}
}

func TestContrastRatioSymmetryAndRange(t *testing.T) {
	colours := []string{
		"#000000", "#ffffff", "#777777", "#ff0000", "#00ff00", "#0000ff",
		"#123456", "#abcdef", "#fefefe", "#010101", "#808080", "#c0ffee",
	}

	for _, a := range colours {
		for _, b := range colours {
			ab := ContrastRatio(a, b)
			ba := ContrastRatio(b, a)
			if ab != ba {
				t.Errorf("ContrastRatio(%s, %s) = %f but reversed = %f", a, b, ab, ba)
			}
			if ab < 1 || ab > 21+1e-9 {
				t.Errorf("ContrastRatio(%s, %s) = %f, outside [1, 21]", a, b, ab)
			}
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(ContrastRatio("#777777", "#ffffff")); got != "4.48:1" {
		t.Errorf("FormatRatio() = %s, want 4.48:1", got)
	}
	if got := FormatRatio(1); got != "1.00:1" {
		t.Errorf("FormatRatio(1) = %s, want 1.00:1", got)
	}
}
