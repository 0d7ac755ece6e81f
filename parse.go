package tilespec

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one line of the tile table as written, before any flags have
// been derived.
type Record struct {
	Code    byte
	Name    string
	Edition byte // 0 if the code field carries no marker
	Extras  []Token
	Legacy  bool

	// Line and Text locate the record in the source for error messages
	Line int
	Text string
}

// ModifierWidth returns the number of modifier bytes and true if r is a
// modifier record.
func (r Record) ModifierWidth() (int, bool) {
	if len(r.Extras) > 0 && r.Extras[0].Kind == TokenModifierCount {
		return r.Extras[0].Width, true
	}
	return 0, false
}

func (r Record) extraTexts() []string {
	s := make([]string, len(r.Extras))
	for i, t := range r.Extras {
		s[i] = t.Text
	}
	return s
}

func parseRecord(line int, text string) (Record, error) {
	fields, err := lexLine(text)
	if err != nil {
		return Record{}, lineError(line, text, err)
	}

	r := Record{Line: line, Text: text}
	for _, f := range fields {
		switch f.kind {
		case fieldCode:
			code, err := strconv.ParseUint(f.value, 16, 8)
			if err != nil {
				return Record{}, lineError(line, text, fmt.Errorf("%w: %q", ErrInvalidCode, f.value))
			}
			r.Code = byte(code)
		case fieldExtra:
			r.Extras = append(r.Extras, classifyToken(f.value))
		case fieldMarker:
			r.Edition = f.value[0]
		case fieldName:
			if f.value == "" {
				return Record{}, recordError(r, ErrEmptyName)
			}
			r.Name = f.value
		case fieldTag:
			r.Legacy = true
		}
	}
	return r, nil
}

// ParseTable parses the tile table in text and returns its records in the
// order they were declared. Blank lines are skipped; every other line must
// be a record. A tile code may only be declared once.
func ParseTable(text string) ([]Record, error) {
	var records []Record
	seen := make(map[byte]int)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, err := parseRecord(i+1, line)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[r.Code]; ok {
			return nil, recordError(r, fmt.Errorf("%w: first declared on line %d", ErrDuplicateCode, prev))
		}
		seen[r.Code] = r.Line
		records = append(records, r)
	}
	return records, nil
}
