package colour

import (
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	got := ColourPreview(RGB{R: 255, G: 128, B: 0}, 4)
	want := "\033[48;2;255;128;0m    \033[0m"
	if got != want {
		t.Errorf("ColourPreview() = %q, want %q", got, want)
	}

	if got := ColourPreview(RGB{}, 0); !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("ColourPreview() with width 0 should use default width, got %q", got)
	}
}

func TestSamplePreview(t *testing.T) {
	fg := RGB{R: 0, G: 0, B: 0}
	bg := RGB{R: 255, G: 255, B: 255}

	got := SamplePreview(fg, bg, "Aa", 6)
	if !strings.HasPrefix(got, "\033[48;2;255;255;255m\033[38;2;0;0;0m") {
		t.Errorf("SamplePreview() has wrong escapes: %q", got)
	}
	if !strings.Contains(got, "  Aa  ") {
		t.Errorf("SamplePreview() should centre text, got %q", got)
	}

	got = SamplePreview(fg, bg, "Sample text", 6)
	if !strings.Contains(got, "Sample") || strings.Contains(got, "text") {
		t.Errorf("SamplePreview() should truncate to width, got %q", got)
	}
}

func TestSupportsANSIColoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if SupportsANSIColours(nil) {
		t.Error("SupportsANSIColours(nil) should be false")
	}
}

func TestLargeSamplePreview(t *testing.T) {
	got := LargeSamplePreview(RGB{}, RGB{R: 255, G: 255, B: 255}, "Large", 5)
	if !strings.HasPrefix(got, ansiBold) || !strings.HasSuffix(got, "Large"+ansiReset) {
		t.Errorf("LargeSamplePreview() = %q", got)
	}
}

func TestButtonPreview(t *testing.T) {
	fg := RGB{R: 17, G: 34, B: 51}
	bg := RGB{R: 238, G: 238, B: 238}

	got := ButtonPreview(fg, bg, "Button")
	filled := "\033[38;2;238;238;238m\033[48;2;17;34;51m Button \033[0m"
	outlined := "\033[48;2;238;238;238m\033[38;2;17;34;51m[Button]\033[0m"
	if got != filled+" "+outlined {
		t.Errorf("ButtonPreview() = %q, want %q", got, filled+" "+outlined)
	}
}

func TestHexUpper(t *testing.T) {
	if got := (RGB{R: 171, G: 205, B: 239}).HexUpper(); got != "#ABCDEF" {
		t.Errorf("HexUpper() = %s, want #ABCDEF", got)
	}
}
