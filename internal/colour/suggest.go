package colour

// Suggestion search parameters.
const (
	DefaultTargetRatio   = 4.5
	SuggestStep          = 5
	SuggestMaxIterations = 100
)

// Suggest searches for a variant of fg with at least the target contrast
// against bg. The foreground is darkened when the background is light
// (luminance above 0.5) and lightened otherwise; the direction never changes
// during the search. Each step moves all three channels by SuggestStep,
// clamped to 0-255, for at most SuggestMaxIterations steps.
//
// The best candidate is returned even if the target was not reached, so
// callers should check the ratio of the result. If either colour is invalid
// fg is returned unchanged.
func Suggest(fg, bg string, target float64) string {
	fgRGB, ok := ParseHex(fg)
	if !ok {
		return fg
	}
	bgRGB, ok := ParseHex(bg)
	if !ok {
		return fg
	}

	step := SuggestStep
	if Luminance(bgRGB) > 0.5 {
		step = -SuggestStep
	}

	r, g, b := int(fgRGB.R), int(fgRGB.G), int(fgRGB.B)
	contrast := ContrastRatioRGB(fgRGB, bgRGB)

	for i := 0; contrast < target && i < SuggestMaxIterations; i++ {
		r = int(clampChannel(r + step))
		g = int(clampChannel(g + step))
		b = int(clampChannel(b + step))
		contrast = ContrastRatioRGB(RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, bgRGB)
	}

	return Encode(r, g, b)
}

// SuggestDefault is Suggest with DefaultTargetRatio (WCAG AA normal text).
func SuggestDefault(fg, bg string) string {
	return Suggest(fg, bg, DefaultTargetRatio)
}
