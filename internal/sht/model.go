// Package sht implements parsing, canonical serialization and RGB
// conversion for SHT colour codes.
//
// An SHT code is one hue-anchor letter followed by zero or more
// modifier letters. Modifiers are counted: each occurrence moves the
// colour half the remaining distance toward its pole (white for tint,
// black for shade, mid grey for tone), so repeated letters compound
// geometrically and every intermediate value stays an exact rational.
package sht

import (
	"math/big"
	"strings"

	"github.com/jmylchreest/shtc/internal/rgb"
)

// Anchor identifies a fixed hue anchor. The declaration order is the
// canonical anchor ordering used for inverse-conversion tie-breaks.
type Anchor uint8

const (
	Red Anchor = iota
	Orange
	Yellow
	Green
	Cyan
	Blue
	Violet
	Magenta
	Grey

	anchorCount
)

// anchorLetters maps anchors to their code letters.
var anchorLetters = [anchorCount]byte{'r', 'o', 'y', 'g', 'c', 'b', 'v', 'm', 'a'}

// anchorNames maps anchors to human-readable names.
var anchorNames = [anchorCount]string{
	"red", "orange", "yellow", "green", "cyan", "blue", "violet", "magenta", "grey",
}

// anchorBase holds each anchor's base RGB triple as {num, den} pairs in
// R, G, B order. Chromatic anchors sit on the hue wheel with at least
// one channel at each extreme; the achromatic anchor is the cube
// diagonal midpoint.
var anchorBase = [anchorCount][3][2]int64{
	Red:     {{1, 1}, {0, 1}, {0, 1}},
	Orange:  {{1, 1}, {1, 2}, {0, 1}},
	Yellow:  {{1, 1}, {1, 1}, {0, 1}},
	Green:   {{0, 1}, {1, 1}, {0, 1}},
	Cyan:    {{0, 1}, {1, 1}, {1, 1}},
	Blue:    {{0, 1}, {0, 1}, {1, 1}},
	Violet:  {{1, 2}, {0, 1}, {1, 1}},
	Magenta: {{1, 1}, {0, 1}, {1, 1}},
	Grey:    {{1, 2}, {1, 2}, {1, 2}},
}

// Letter returns the anchor's code letter.
func (a Anchor) Letter() byte { return anchorLetters[a] }

// String returns the anchor's name.
func (a Anchor) String() string { return anchorNames[a] }

// anchorFromLetter resolves a code letter to its anchor.
func anchorFromLetter(c byte) (Anchor, bool) {
	for a, letter := range anchorLetters {
		if letter == c {
			return Anchor(a), true
		}
	}
	return 0, false
}

// Modifier identifies a modifier kind. The declaration order is the
// canonical application and serialization order: tone first, then
// shade or tint.
type Modifier uint8

const (
	Tone Modifier = iota
	Shade
	Tint
)

// modifierLetters maps modifiers to their code letters.
var modifierLetters = [...]byte{'n', 's', 't'}

// Letter returns the modifier's code letter.
func (m Modifier) Letter() byte { return modifierLetters[m] }

// String returns the modifier's name.
func (m Modifier) String() string {
	return [...]string{"tone", "shade", "tint"}[m]
}

// MaxDepth bounds each modifier's repetition count. Past sixteen
// halvings a further application moves a channel by less than
// 1/65536, under one quantum at the highest supported precision.
const MaxDepth = 16

// Model is the canonical in-memory form of an SHT code: a hue anchor
// plus per-modifier repetition counts. Models are immutable values;
// the zero Model is the bare red anchor. At most one of shade and tint
// may be nonzero.
type Model struct {
	anchor Anchor
	tone   uint8
	shade  uint8
	tint   uint8
}

// New constructs a validated Model. It rejects out-of-range anchors,
// counts above MaxDepth, and models carrying both shade and tint.
func New(anchor Anchor, tone, shade, tint int) (Model, error) {
	if anchor >= anchorCount {
		return Model{}, &ParseError{Kind: UnknownHueLetter}
	}
	for _, count := range []int{tone, shade, tint} {
		if count < 0 || count > MaxDepth {
			return Model{}, &ParseError{Kind: ModifierDepthExceeded}
		}
	}
	if shade > 0 && tint > 0 {
		return Model{}, &ParseError{Kind: ConflictingModifiers}
	}
	return Model{anchor: anchor, tone: uint8(tone), shade: uint8(shade), tint: uint8(tint)}, nil
}

// Anchor returns the model's hue anchor.
func (m Model) Anchor() Anchor { return m.anchor }

// Count returns the repetition count for a modifier kind.
func (m Model) Count(mod Modifier) int {
	switch mod {
	case Tone:
		return int(m.tone)
	case Shade:
		return int(m.shade)
	default:
		return int(m.tint)
	}
}

// TotalModifiers returns the total number of modifier applications.
func (m Model) TotalModifiers() int {
	return int(m.tone) + int(m.shade) + int(m.tint)
}

// String returns the canonical serialization: the hue letter, then the
// modifier letters grouped in canonical order (tone, then shade or
// tint), each repeated per its count. Parsing the result reproduces an
// equal Model.
func (m Model) String() string {
	var b strings.Builder
	b.WriteByte(m.anchor.Letter())
	b.WriteString(strings.Repeat(string(Tone.Letter()), int(m.tone)))
	b.WriteString(strings.Repeat(string(Shade.Letter()), int(m.shade)))
	b.WriteString(strings.Repeat(string(Tint.Letter()), int(m.tint)))
	return b.String()
}

// modifierSuffix returns the canonical serialization without the hue
// letter, used for lexical tie-breaking in inverse conversion.
func (m Model) modifierSuffix() string {
	return m.String()[1:]
}

// baseTriple returns a fresh copy of the anchor's base RGB channels.
func (a Anchor) baseTriple() [3]*big.Rat {
	var channels [3]*big.Rat
	for i, frac := range anchorBase[a] {
		channels[i] = big.NewRat(frac[0], frac[1])
	}
	return channels
}

// BaseRGB returns the anchor's exact base RGB triple.
func (a Anchor) BaseRGB() rgb.Triple {
	c := a.baseTriple()
	return rgb.New(c[0], c[1], c[2])
}
