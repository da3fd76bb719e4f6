package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Report is the result of checking a foreground/background pair.
type Report struct {
	Foreground    string     `json:"foreground"`
	Background    string     `json:"background"`
	ForegroundRGB *RGB       `json:"foreground_rgb,omitempty"`
	BackgroundRGB *RGB       `json:"background_rgb,omitempty"`
	Ratio         float64    `json:"ratio"`
	Compliance    Compliance `json:"compliance"`
}

// NewReport checks fg against bg. Colours that fail to parse leave their RGB
// field nil and produce the NoContrast ratio.
func NewReport(fg, bg string) Report {
	r := Report{
		Foreground: fg,
		Background: bg,
		Ratio:      ContrastRatio(fg, bg),
	}
	if rgb, ok := ParseHex(fg); ok {
		r.ForegroundRGB = &rgb
	}
	if rgb, ok := ParseHex(bg); ok {
		r.BackgroundRGB = &rgb
	}
	r.Compliance = Evaluate(r.Ratio)
	return r
}

// Valid reports whether both colours parsed.
func (r Report) Valid() bool {
	return r.ForegroundRGB != nil && r.BackgroundRGB != nil
}

// Swap returns the report with foreground and background exchanged.
func (r Report) Swap() Report {
	r.Foreground, r.Background = r.Background, r.Foreground
	r.ForegroundRGB, r.BackgroundRGB = r.BackgroundRGB, r.ForegroundRGB
	return r
}

// Text renders the plain-text summary of the report.
func (r Report) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Foreground: %s\n", r.Foreground)
	fmt.Fprintf(&sb, "Background: %s\n", r.Background)
	fmt.Fprintf(&sb, "Contrast Ratio: %s\n", FormatRatio(r.Ratio))
	for _, l := range Levels {
		fmt.Fprintf(&sb, "WCAG 2.1 %s: %s\n", l.Label(), passFail(r.Compliance.Passes(l)))
	}
	return sb.String()
}

// ToJSON converts the report to indented JSON.
func (r Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func passFail(ok bool) string {
	if ok {
		return "Pass"
	}
	return "Fail"
}
