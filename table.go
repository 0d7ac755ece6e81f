package tilespec

import (
	"fmt"
	"sort"
)

// Entry is a tile record together with its derived flags.
type Entry struct {
	Record
	Flags Flags
}

// Table is a compiled tile table. Tiles holds every record that carries
// flags and Modifiers every modifier record, both in ascending code order.
type Table struct {
	Tiles     []Entry
	Modifiers []Record
}

// Build derives the flags for records and assembles them into a Table.
func Build(records []Record) (*Table, error) {
	return build(records, 1)
}

func build(records []Record, workers int) (*Table, error) {
	seen := make(map[byte]int)
	for _, r := range records {
		if prev, ok := seen[r.Code]; ok {
			return nil, recordError(r, fmt.Errorf("%w: first declared on line %d", ErrDuplicateCode, prev))
		}
		seen[r.Code] = r.Line
	}

	results, err := deriveAll(records, workers)
	if err != nil {
		return nil, err
	}

	t := new(Table)
	for i, res := range results {
		if res.tile {
			t.Tiles = append(t.Tiles, Entry{Record: records[i], Flags: res.flags})
		} else {
			t.Modifiers = append(t.Modifiers, records[i])
		}
	}
	sort.Slice(t.Tiles, func(i, j int) bool { return t.Tiles[i].Code < t.Tiles[j].Code })
	sort.Slice(t.Modifiers, func(i, j int) bool { return t.Modifiers[i].Code < t.Modifiers[j].Code })

	return t, nil
}

// Lookup returns the tile entry for code. Modifier records are not found.
func (t *Table) Lookup(code byte) (Entry, bool) {
	i := sort.Search(len(t.Tiles), func(i int) bool { return t.Tiles[i].Code >= code })
	if i < len(t.Tiles) && t.Tiles[i].Code == code {
		return t.Tiles[i], true
	}
	return Entry{}, false
}
