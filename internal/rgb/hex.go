package rgb

import (
	"fmt"
	"math/big"
	"strings"
)

// HexErrorKind classifies hex colour string failures.
type HexErrorKind int

const (
	// HexEmpty means the input string was empty.
	HexEmpty HexErrorKind = iota
	// HexMissingHash means the input did not start with '#'.
	HexMissingHash
	// HexLength means the digit count was not 3x a supported width.
	HexLength
	// HexDigit means a character was not a hexadecimal digit.
	HexDigit
)

// HexError reports a malformed hex colour string.
type HexError struct {
	Kind  HexErrorKind
	Input string
}

func (e *HexError) Error() string {
	switch e.Kind {
	case HexEmpty:
		return "empty hex colour"
	case HexMissingHash:
		return fmt.Sprintf("hex colour %q missing leading '#'", e.Input)
	case HexLength:
		return fmt.Sprintf("hex colour %q must have 3, 6, 9 or 12 digits", e.Input)
	case HexDigit:
		return fmt.Sprintf("hex colour %q contains a non-hex digit", e.Input)
	}
	return fmt.Sprintf("invalid hex colour %q", e.Input)
}

// FormatHex renders t as "#" followed by 3xdigits lowercase hex digits,
// one channel per digits-wide group in R, G, B order. Each channel is
// scaled by 16^digits - 1 and rounded half to even. The caller is
// responsible for passing a validated digit width (1..MaxDigitsPerChannel)
// and in-range channels.
func FormatHex(t Triple, digits int) string {
	var b strings.Builder
	b.WriteByte('#')
	den := new(big.Rat).SetInt(gridDenominator(digits))
	for _, v := range []*big.Rat{t.r, t.g, t.b} {
		scaled := new(big.Rat).Mul(v, den)
		fmt.Fprintf(&b, "%0*x", digits, roundHalfEven(scaled))
	}
	return b.String()
}

// ParseHex parses a "#"-prefixed hex colour string into a Triple. The
// per-channel digit width is inferred from the digit count and
// returned alongside the triple; digits are case-insensitive. A
// channel with value k at width d decodes to k/(16^d - 1), so full
// digits decode to exactly 1.
func ParseHex(s string) (Triple, int, error) {
	if s == "" {
		return Triple{}, 0, &HexError{Kind: HexEmpty, Input: s}
	}
	if s[0] != '#' {
		return Triple{}, 0, &HexError{Kind: HexMissingHash, Input: s}
	}
	hexDigits := s[1:]
	if len(hexDigits) == 0 || len(hexDigits)%3 != 0 || len(hexDigits)/3 > MaxDigitsPerChannel {
		return Triple{}, 0, &HexError{Kind: HexLength, Input: s}
	}
	width := len(hexDigits) / 3
	den := gridDenominator(width)
	channels := make([]*big.Rat, 3)
	for i := range channels {
		group := hexDigits[i*width : (i+1)*width]
		value, ok := parseHexGroup(group)
		if !ok {
			return Triple{}, 0, &HexError{Kind: HexDigit, Input: s}
		}
		channels[i] = new(big.Rat).SetFrac(value, den)
	}
	return Triple{r: channels[0], g: channels[1], b: channels[2]}, width, nil
}

// parseHexGroup decodes a fixed-width group of hex digits.
func parseHexGroup(group string) (*big.Int, bool) {
	value := big.NewInt(0)
	for i := 0; i < len(group); i++ {
		var d int64
		switch c := group[i]; {
		case c >= '0' && c <= '9':
			d = int64(c - '0')
		case c >= 'a' && c <= 'f':
			d = int64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int64(c-'A') + 10
		default:
			return nil, false
		}
		value.Lsh(value, 4)
		value.Add(value, big.NewInt(d))
	}
	return value, true
}
