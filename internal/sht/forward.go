package sht

import (
	"math/big"

	"github.com/jmylchreest/shtc/internal/rgb"
)

// Modifier poles as {num, den} channel fractions.
var modifierPole = [...][3][2]int64{
	Tone:  {{1, 2}, {1, 2}, {1, 2}},
	Shade: {{0, 1}, {0, 1}, {0, 1}},
	Tint:  {{1, 1}, {1, 1}, {1, 1}},
}

// RGB converts the model to its RGB triple at the given precision. The
// conversion is total and purely functional: starting from the
// anchor's base triple, the tone count is applied, then the shade or
// tint count, each application moving every channel half the remaining
// distance toward the modifier's pole. Finally each channel is rounded
// to the nearest value representable with precision hex digits, ties
// to even.
func (m Model) RGB(p Precision) rgb.Triple {
	channels := m.anchor.baseTriple()
	applyModifier(&channels, Tone, int(m.tone))
	applyModifier(&channels, Shade, int(m.shade))
	applyModifier(&channels, Tint, int(m.tint))
	return rgb.Quantize(rgb.New(channels[0], channels[1], channels[2]), p.Digits())
}

// applyModifier moves the channels toward the modifier's pole count
// times. n halvings leave pole + (v-pole)/2^n, computed in closed form
// so denominators stay power-of-two scaled.
func applyModifier(channels *[3]*big.Rat, mod Modifier, count int) {
	if count == 0 {
		return
	}
	scale := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(count)))
	for i, v := range channels {
		pole := big.NewRat(modifierPole[mod][i][0], modifierPole[mod][i][1])
		diff := new(big.Rat).Sub(v, pole)
		channels[i] = pole.Add(pole, diff.Mul(diff, scale))
	}
}
