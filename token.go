package tilespec

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenKind classifies one extra annotation following a tile code.
type TokenKind uint8

const (
	// TokenOther is any annotation without a flag of its own, such as "A"
	TokenOther TokenKind = iota
	// TokenDirection ("D") marks a trailing direction byte
	TokenDirection
	// TokenLower ("+") marks a lower layer tile
	TokenLower
	// TokenModifierCount ("m", "mm", "mmmm") marks a modifier record
	TokenModifierCount
)

func (k TokenKind) String() string {
	switch k {
	case TokenOther:
		return "other"
	case TokenDirection:
		return "direction"
	case TokenLower:
		return "lower"
	case TokenModifierCount:
		return "modifier"
	default:
		return "unknown"
	}
}

// Token is a classified extra annotation.
type Token struct {
	Kind  TokenKind
	Text  string
	Width int // modifier bytes, TokenModifierCount only
}

func (t Token) String() string {
	return t.Text
}

func classifyToken(s string) Token {
	switch s {
	case "D":
		return Token{Kind: TokenDirection, Text: s}
	case "+":
		return Token{Kind: TokenLower, Text: s}
	case "m", "mm", "mmmm":
		return Token{Kind: TokenModifierCount, Text: s, Width: len(s)}
	default:
		return Token{Kind: TokenOther, Text: s}
	}
}

type fieldKind uint8

const (
	fieldCode fieldKind = iota
	fieldExtra
	fieldMarker
	fieldName
	fieldTag
)

type field struct {
	kind  fieldKind
	value string
}

const (
	commentPrefix = "#"
	legacyTag     = "CC1"
)

func nextWord(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

func cut(s, sep string) (string, string, bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

func isMarker(s string) bool {
	return len(s) == 1 && (s[0] >= 'a' && s[0] <= 'z' || s[0] >= 'A' && s[0] <= 'Z')
}

// lexLine splits one line of the table into its fields, in order: the code,
// zero or more extras, an optional marker, the name and an optional legacy
// tag. The tag ends the line wherever it appears. It only checks the shape of
// the line, not the values.
func lexLine(text string) ([]field, error) {
	word, rest := nextWord(text)
	if word == commentPrefix {
		word, rest = nextWord(rest)
	}
	if word == "" || rest == "" {
		return nil, fmt.Errorf("%w: want code and name", ErrMalformedLine)
	}

	spec, marker, _ := cut(word, ":")
	if marker != "" && !isMarker(marker) {
		return nil, fmt.Errorf("%w: bad marker %q", ErrMalformedLine, marker)
	}

	parts := strings.Split(spec, ",")
	fields := make([]field, 0, len(parts)+3)
	fields = append(fields, field{fieldCode, parts[0]})
	for _, p := range parts[1:] {
		if p == "" {
			return nil, fmt.Errorf("%w: empty extra in %q", ErrMalformedLine, spec)
		}
		fields = append(fields, field{fieldExtra, p})
	}
	if marker != "" {
		fields = append(fields, field{fieldMarker, marker})
	}

	name, _, tagged := cut(rest, legacyTag)
	fields = append(fields, field{fieldName, strings.TrimSpace(name)})
	if tagged {
		fields = append(fields, field{fieldTag, legacyTag})
	}
	return fields, nil
}
