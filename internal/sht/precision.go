package sht

import (
	"fmt"

	"github.com/jmylchreest/shtc/internal/rgb"
)

// MaxPrecision is the largest supported per-channel hex digit width.
const MaxPrecision = rgb.MaxDigitsPerChannel

// Precision is a validated per-channel hex digit count. It determines
// the quantization grid (multiples of 1/(16^p - 1)) used by both
// conversion directions. There is no default: every conversion entry
// point takes an explicit Precision.
type Precision int

// NewPrecision validates a digit count. Valid values are 1 through
// MaxPrecision.
func NewPrecision(digits int) (Precision, error) {
	if digits < 1 || digits > MaxPrecision {
		return 0, fmt.Errorf("precision must be between 1 and %d, got %d", MaxPrecision, digits)
	}
	return Precision(digits), nil
}

// Digits returns the per-channel hex digit count.
func (p Precision) Digits() int { return int(p) }
