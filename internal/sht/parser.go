package sht

import "fmt"

// ParseErrorKind classifies SHT parse failures.
type ParseErrorKind int

const (
	// EmptyInput means the input string was empty.
	EmptyInput ParseErrorKind = iota
	// UnknownHueLetter means the first character is not a hue-anchor letter.
	UnknownHueLetter
	// UnknownModifierLetter means a letter in modifier position is not a
	// modifier letter.
	UnknownModifierLetter
	// TrailingGarbage means a non-letter character followed a valid prefix.
	TrailingGarbage
	// ConflictingModifiers means both tint and shade letters are present.
	ConflictingModifiers
	// ModifierDepthExceeded means a modifier count exceeds MaxDepth.
	ModifierDepthExceeded
)

// String returns the kind's name.
func (k ParseErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case UnknownHueLetter:
		return "UnknownHueLetter"
	case UnknownModifierLetter:
		return "UnknownModifierLetter"
	case TrailingGarbage:
		return "TrailingGarbage"
	case ConflictingModifiers:
		return "ConflictingModifiers"
	case ModifierDepthExceeded:
		return "ModifierDepthExceeded"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError reports a malformed SHT code. Offset is the byte offset of
// the offending rune where one exists.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
	Rune   rune
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "empty SHT code"
	case UnknownHueLetter:
		return fmt.Sprintf("unknown hue letter %q", e.Rune)
	case UnknownModifierLetter:
		return fmt.Sprintf("unknown modifier letter %q at offset %d", e.Rune, e.Offset)
	case TrailingGarbage:
		return fmt.Sprintf("unexpected character %q at offset %d", e.Rune, e.Offset)
	case ConflictingModifiers:
		return "tint and shade are mutually exclusive"
	case ModifierDepthExceeded:
		return fmt.Sprintf("modifier repeated more than %d times", MaxDepth)
	}
	return "invalid SHT code"
}

// Parse scans a textual SHT code into a Model. The grammar is one
// mandatory hue letter followed by zero or more modifier letters in
// any order, each occurrence incrementing that modifier's count. The
// scan is a single left-to-right pass, case-sensitive, with no
// whitespace or separators; any leftover input is an error.
func Parse(s string) (Model, error) {
	if s == "" {
		return Model{}, &ParseError{Kind: EmptyInput}
	}
	var (
		anchor            Anchor
		tone, shade, tint int
	)
	for i, r := range s {
		if i == 0 {
			a, ok := anchorFromLetter(byte(r))
			if r >= 0x80 || !ok {
				return Model{}, &ParseError{Kind: UnknownHueLetter, Offset: i, Rune: r}
			}
			anchor = a
			continue
		}
		var count *int
		switch r {
		case rune(Tone.Letter()):
			count = &tone
		case rune(Shade.Letter()):
			if tint > 0 {
				return Model{}, &ParseError{Kind: ConflictingModifiers, Offset: i, Rune: r}
			}
			count = &shade
		case rune(Tint.Letter()):
			if shade > 0 {
				return Model{}, &ParseError{Kind: ConflictingModifiers, Offset: i, Rune: r}
			}
			count = &tint
		default:
			kind := TrailingGarbage
			if isASCIILetter(r) {
				kind = UnknownModifierLetter
			}
			return Model{}, &ParseError{Kind: kind, Offset: i, Rune: r}
		}
		*count++
		if *count > MaxDepth {
			return Model{}, &ParseError{Kind: ModifierDepthExceeded, Offset: i, Rune: r}
		}
	}
	return Model{anchor: anchor, tone: uint8(tone), shade: uint8(shade), tint: uint8(tint)}, nil
}

// isASCIILetter distinguishes a wrong letter (unknown modifier) from
// arbitrary garbage such as whitespace, digits or punctuation.
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
