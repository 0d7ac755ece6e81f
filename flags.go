package tilespec

import (
	"fmt"
	"math/bits"
	"strings"
)

// Flags describes the bytes that follow a tile code in a level.
type Flags uint8

// The values match those used by the level reader and writer.
const (
	HasDirection Flags = 1 << iota
	HasExtra
	HasLower
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{HasDirection, "hasDir"},
	{HasExtra, "hasExtra"},
	{HasLower, "hasLower"},
}

// Count returns the number of flags set.
func (f Flags) Count() int {
	return bits.OnesCount8(uint8(f))
}

// Names returns the symbolic names of the flags set, lowest bit first.
func (f Flags) Names() []string {
	var names []string
	for _, n := range flagNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return names
}

// String returns the flags OR'd together by name, or "0" if none are set.
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	return strings.Join(f.Names(), "|")
}

// Derive computes the flags for r. It returns false for a modifier record,
// which carries no flags.
func Derive(r Record) (Flags, bool, error) {
	for i, t := range r.Extras {
		if i == 0 {
			continue
		}
		switch t.Kind {
		case TokenDirection:
			return 0, false, recordError(r, fmt.Errorf("%w: D not first in %v", ErrOrderingViolation, r.extraTexts()))
		case TokenModifierCount:
			return 0, false, recordError(r, fmt.Errorf("%w: %s not first in %v", ErrOrderingViolation, t.Text, r.extraTexts()))
		}
	}

	if _, ok := r.ModifierWidth(); ok {
		return 0, false, nil
	}

	var f Flags
	for _, t := range r.Extras {
		switch t.Kind {
		case TokenDirection:
			f |= HasDirection
		case TokenLower:
			f |= HasLower
		case TokenOther:
			f |= HasExtra
		default:
			panic(fmt.Sprintf("tilespec: unhandled token kind %v", t.Kind))
		}
	}

	if f.Count() != len(r.Extras) {
		return 0, false, recordError(r, fmt.Errorf("%w: %v gives %v", ErrUnaccountedExtra, r.extraTexts(), f))
	}
	return f, true, nil
}
