package sht

import (
	"math/big"
	"testing"

	"github.com/jmylchreest/shtc/internal/rgb"
)

func mustPrecision(t *testing.T, digits int) Precision {
	t.Helper()
	p, err := NewPrecision(digits)
	if err != nil {
		t.Fatalf("NewPrecision(%d): %v", digits, err)
	}
	return p
}

func parseModel(t *testing.T, code string) Model {
	t.Helper()
	m, err := Parse(code)
	if err != nil {
		t.Fatalf("Parse(%q): %v", code, err)
	}
	return m
}

func TestForwardKnownValues(t *testing.T) {
	tests := []struct {
		code    string
		digits  int
		wantHex string
	}{
		{"r", 1, "#f00"},
		{"g", 1, "#0f0"},
		{"b", 1, "#00f"},
		{"y", 1, "#ff0"},
		{"c", 1, "#0ff"},
		{"m", 1, "#f0f"},
		// Orange and violet carry a half channel: 1/2*15 = 7.5 ties to 8.
		{"o", 1, "#f80"},
		{"v", 1, "#80f"},
		{"a", 1, "#888"},
		{"a", 2, "#808080"},
		{"a", 4, "#800080008000"},
		// Tint halves the distance to white: (1, 1/2, 1/2).
		{"rt", 1, "#f88"},
		{"rt", 2, "#ff8080"},
		// Shade halves the distance to black: (1/2, 0, 0).
		{"rs", 1, "#800"},
		// Tone halves the distance to grey: (3/4, 1/4, 1/4), and
		// 3/4*255 = 191.25 rounds down to 0xbf.
		{"rn", 2, "#bf4040"},
		// Two tints: (1, 3/4, 3/4).
		{"rtt", 2, "#ffbfbf"},
		// Two shades: (1/4, 0, 0).
		{"rss", 2, "#400000"},
		// Tone then shade: (3/8, 1/8, 1/8) -> 95.625, 31.875 of 255.
		{"rns", 2, "#602020"},
		// Tint at grey: (3/4, 3/4, 3/4).
		{"at", 2, "#bfbfbf"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			p := mustPrecision(t, tt.digits)
			got := rgb.FormatHex(parseModel(t, tt.code).RGB(p), p.Digits())
			if got != tt.wantHex {
				t.Errorf("%q at %d digits = %s, want %s", tt.code, tt.digits, got, tt.wantHex)
			}
		})
	}
}

func TestForwardExactValues(t *testing.T) {
	// At four digits the grid is fine enough that small dyadic values
	// quantize checkably; verify the interpolation itself on a case
	// where rounding is a no-op at every precision.
	p := mustPrecision(t, 4)
	got := parseModel(t, "r").RGB(p)
	want := rgb.New(big.NewRat(1, 1), big.NewRat(0, 1), big.NewRat(0, 1))
	if !got.Equal(want) {
		t.Errorf("r = %s, want %s", got, want)
	}
}

func TestForwardIdempotent(t *testing.T) {
	// Converting the same model twice yields identical triples.
	m := parseModel(t, "onnss")
	p := mustPrecision(t, 3)
	first := m.RGB(p)
	second := m.RGB(p)
	if !first.Equal(second) {
		t.Errorf("conversion not reproducible: %s then %s", first, second)
	}
	// The model is unchanged by conversion.
	if m.String() != "onnss" {
		t.Errorf("model mutated by conversion: %q", m.String())
	}
}

func TestForwardRangeInvariant(t *testing.T) {
	// Every producible triple stays inside the unit cube.
	one := big.NewRat(1, 1)
	for a := Red; a < anchorCount; a++ {
		for tone := 0; tone <= MaxDepth; tone += 4 {
			for depth := 0; depth <= MaxDepth; depth += 4 {
				for digits := 1; digits <= MaxPrecision; digits++ {
					p := mustPrecision(t, digits)
					for _, m := range []Model{
						{anchor: a, tone: uint8(tone), shade: uint8(depth)},
						{anchor: a, tone: uint8(tone), tint: uint8(depth)},
					} {
						r, g, b := m.RGB(p).Components()
						for _, v := range []*big.Rat{r, g, b} {
							if v.Sign() < 0 || v.Cmp(one) > 0 {
								t.Fatalf("%q at %d digits has channel %s outside [0,1]",
									m.String(), digits, v.RatString())
							}
						}
					}
				}
			}
		}
	}
}

func TestForwardDeepModifiersConverge(t *testing.T) {
	// At MaxDepth tint and shade have effectively reached their poles
	// on the one-digit grid.
	p := mustPrecision(t, 1)
	tests := []struct {
		code string
		want string
	}{
		{"r" + repeatLetter(Tint, MaxDepth), "#fff"},
		{"r" + repeatLetter(Shade, MaxDepth), "#000"},
	}
	for _, tt := range tests {
		got := rgb.FormatHex(parseModel(t, tt.code).RGB(p), 1)
		if got != tt.want {
			t.Errorf("%q = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func repeatLetter(m Modifier, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = m.Letter()
	}
	return string(b)
}
