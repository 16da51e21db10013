// Package rgb provides the exact-rational RGB triple shared by the SHT
// conversion engine and the hex codec.
//
// Channel values are *big.Rat fractions on the closed unit interval.
// Rational arithmetic is a hard requirement: the halving interpolation
// used by SHT modifiers and the round-half-to-even quantization policy
// are defined in terms of exact midpoints, which floating point cannot
// represent reliably.
package rgb

import (
	"fmt"
	"math/big"
)

// Triple is an RGB colour with exact rational channels in [0, 1].
// It has value semantics: constructors and accessors copy, so a Triple
// is safe to share between goroutines.
type Triple struct {
	r, g, b *big.Rat
}

// New creates a Triple from the given channel values. The inputs are
// copied; later mutation of the arguments does not affect the Triple.
// New does not range-check its inputs; use Validate for that.
func New(r, g, b *big.Rat) Triple {
	return Triple{
		r: new(big.Rat).Set(r),
		g: new(big.Rat).Set(g),
		b: new(big.Rat).Set(b),
	}
}

// Components returns copies of the three channel values in R, G, B order.
func (t Triple) Components() (r, g, b *big.Rat) {
	return new(big.Rat).Set(t.r), new(big.Rat).Set(t.g), new(big.Rat).Set(t.b)
}

// Equal reports whether two triples have identical channel values.
func (t Triple) Equal(o Triple) bool {
	return t.r.Cmp(o.r) == 0 && t.g.Cmp(o.g) == 0 && t.b.Cmp(o.b) == 0
}

// String returns the triple as "rgb(r, g, b)" with rational channels.
func (t Triple) String() string {
	return fmt.Sprintf("rgb(%s, %s, %s)", t.r.RatString(), t.g.RatString(), t.b.RatString())
}

// OutOfRangeChannelError reports a channel value outside [0, 1].
type OutOfRangeChannelError struct {
	Channel string // "red", "green" or "blue"
	Value   *big.Rat
}

func (e *OutOfRangeChannelError) Error() string {
	return fmt.Sprintf("%s channel value %s outside [0, 1]", e.Channel, e.Value.RatString())
}

// Validate checks that every channel lies in [0, 1]. It returns an
// *OutOfRangeChannelError naming the first offending channel, or nil.
func (t Triple) Validate() error {
	channels := []struct {
		name  string
		value *big.Rat
	}{
		{"red", t.r},
		{"green", t.g},
		{"blue", t.b},
	}
	one := big.NewRat(1, 1)
	for _, c := range channels {
		if c.value.Sign() < 0 || c.value.Cmp(one) > 0 {
			return &OutOfRangeChannelError{Channel: c.name, Value: new(big.Rat).Set(c.value)}
		}
	}
	return nil
}
