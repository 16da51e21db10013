package rgb

import "math/big"

// MaxDigitsPerChannel is the largest supported hex-digit width per
// channel (16 bits of resolution, matching image/color's convention).
const MaxDigitsPerChannel = 4

// gridDenominator returns 16^digits - 1, the denominator of the
// quantization grid at the given digit width. This matches the hex
// scaling: a channel occupying d digits ranges over 0..16^d-1, so the
// representable values are k/(16^d-1).
func gridDenominator(digits int) *big.Int {
	n := new(big.Int).Lsh(big.NewInt(1), uint(4*digits))
	return n.Sub(n, big.NewInt(1))
}

// roundHalfEven returns the integer nearest to x, with exact halves
// rounded to the even neighbour.
func roundHalfEven(x *big.Rat) *big.Int {
	num, den := x.Num(), x.Denom() // den > 0 by big.Rat invariant
	floor, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() < 0 {
		floor.Sub(floor, big.NewInt(1))
		rem.Add(rem, den)
	}
	twice := new(big.Int).Lsh(rem, 1)
	switch twice.Cmp(den) {
	case -1:
		return floor
	case 1:
		return floor.Add(floor, big.NewInt(1))
	}
	// Exact half: pick the even of floor, floor+1.
	if floor.Bit(0) == 0 {
		return floor
	}
	return floor.Add(floor, big.NewInt(1))
}

// quantizeRat rounds a unit-interval value to the nearest multiple of
// 1/(16^digits - 1), ties to the even numerator.
func quantizeRat(v *big.Rat, digits int) *big.Rat {
	den := gridDenominator(digits)
	scaled := new(big.Rat).Mul(v, new(big.Rat).SetInt(den))
	return new(big.Rat).SetFrac(roundHalfEven(scaled), den)
}

// Quantize rounds every channel of t to the precision grid for the
// given digit width. Quantize is idempotent: grid values map to
// themselves.
func Quantize(t Triple, digits int) Triple {
	return Triple{
		r: quantizeRat(t.r, digits),
		g: quantizeRat(t.g, digits),
		b: quantizeRat(t.b, digits),
	}
}
