package cli

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/jmylchreest/shtc/internal/rgb"
	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 4
)

// swatch returns an ANSI truecolor block for a colour.
// Width specifies how many characters wide the colour block should be.
func swatch(t rgb.Triple, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	r, g, b := channelBytes(t)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// channelBytes scales rational channels to 8-bit values for terminal
// output. Display-only; conversions never pass through this.
func channelBytes(t rgb.Triple) (uint8, uint8, uint8) {
	r, g, b := t.Components()
	return channelByte(r), channelByte(g), channelByte(b)
}

func channelByte(v *big.Rat) uint8 {
	scaled := new(big.Rat).Mul(v, big.NewRat(255, 1))
	f, _ := scaled.Float64()
	if f < 0 {
		f = 0
	}
	if f > 255 {
		f = 255
	}
	return uint8(f + 0.5)
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
// Swatches are suppressed when output is piped or redirected.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
