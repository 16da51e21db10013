package sht

import (
	"math/big"

	"github.com/jmylchreest/shtc/internal/rgb"
)

// FromRGB finds the SHT model whose RGB expansion at the given
// precision is nearest the target, measured by Chebyshev distance
// (maximum absolute per-channel difference) on the precision's
// quantization grid. It fails only when a channel lies outside [0, 1].
//
// The search enumerates every candidate: anchor x tone count x shade
// or tint count, all bounded by MaxDepth. Ties break deterministically
// by fewest total modifier applications, then lowest anchor index,
// then lexically smallest canonical modifier sequence; callers may
// rely on that order.
func FromRGB(t rgb.Triple, p Precision) (Model, error) {
	if err := t.Validate(); err != nil {
		return Model{}, err
	}
	target := rgb.Quantize(t, p.Digits())

	var (
		best     Model
		bestDist *big.Rat
	)
	consider := func(m Model) {
		d := chebyshev(m.RGB(p), target)
		if bestDist == nil || closerThan(d, m, bestDist, best) {
			best, bestDist = m, d
		}
	}
	for a := Red; a < anchorCount; a++ {
		for tone := 0; tone <= MaxDepth; tone++ {
			consider(Model{anchor: a, tone: uint8(tone)})
			for depth := 1; depth <= MaxDepth; depth++ {
				consider(Model{anchor: a, tone: uint8(tone), shade: uint8(depth)})
				consider(Model{anchor: a, tone: uint8(tone), tint: uint8(depth)})
			}
		}
	}
	return best, nil
}

// chebyshev returns the maximum absolute per-channel difference.
func chebyshev(a, b rgb.Triple) *big.Rat {
	ar, ag, ab := a.Components()
	br, bg, bb := b.Components()
	max := new(big.Rat)
	for _, pair := range [][2]*big.Rat{{ar, br}, {ag, bg}, {ab, bb}} {
		d := new(big.Rat).Sub(pair[0], pair[1])
		d.Abs(d)
		if d.Cmp(max) > 0 {
			max = d
		}
	}
	return max
}

// closerThan reports whether candidate (d, m) beats the incumbent
// (bestDist, best) under the distance metric and the deterministic
// tie-break chain.
func closerThan(d *big.Rat, m Model, bestDist *big.Rat, best Model) bool {
	switch d.Cmp(bestDist) {
	case -1:
		return true
	case 1:
		return false
	}
	if m.TotalModifiers() != best.TotalModifiers() {
		return m.TotalModifiers() < best.TotalModifiers()
	}
	if m.anchor != best.anchor {
		return m.anchor < best.anchor
	}
	return m.modifierSuffix() < best.modifierSuffix()
}
