package colour

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{name: "black", hex: "#000000", want: RGB{R: 0, G: 0, B: 0}},
		{name: "white", hex: "#ffffff", want: RGB{R: 255, G: 255, B: 255}},
		{name: "uppercase", hex: "#ABCDEF", want: RGB{R: 171, G: 205, B: 239}},
		{name: "mixed case", hex: "#aBcDeF", want: RGB{R: 171, G: 205, B: 239}},
		{name: "no hash", hex: "1a2b3c", want: RGB{R: 26, G: 43, B: 60}},
		{name: "grey", hex: "#777777", want: RGB{R: 119, G: 119, B: 119}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHex(tt.hex)
			if !ok {
				t.Fatalf("ParseHex(%q) failed, want %+v", tt.hex, tt.want)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []string{
		"",
		"#",
		"bad",
		"#fff",
		"fff",
		"#fffffff",
		"#12345",
		"#gggggg",
		"#12 456",
		" #123456",
		"#123456 ",
		"##123456",
		"#ffffff80",
	}

	for _, hex := range tests {
		t.Run(hex, func(t *testing.T) {
			if got, ok := ParseHex(hex); ok {
				t.Errorf("ParseHex(%q) = %+v, want failure", hex, got)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "green", rgb: RGB{R: 0, G: 255, B: 0}, want: "#00ff00"},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, want: "#0000ff"},
		{name: "single digit channels", rgb: RGB{R: 1, G: 2, B: 3}, want: "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 119, G: 119, B: 119}
	if got := rgb.String(); got != "rgb(119, 119, 119)" {
		t.Errorf("String() = %s, want rgb(119, 119, 119)", got)
	}
}

func TestEncodeClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    string
	}{
		{name: "in range", r: 18, g: 52, b: 86, want: "#123456"},
		{name: "negative", r: -5, g: -1, b: -300, want: "#000000"},
		{name: "too large", r: 256, g: 1000, b: 255, want: "#ffffff"},
		{name: "mixed", r: -5, g: 300, b: 128, want: "#00ff80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Encode(%d, %d, %d) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 51 {
				hex := Encode(r, g, b)
				got, ok := ParseHex(hex)
				if !ok {
					t.Fatalf("ParseHex(%q) failed", hex)
				}
				want := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				if got != want {
					t.Errorf("round trip of %+v gave %+v", want, got)
				}
			}
		}
	}
}
