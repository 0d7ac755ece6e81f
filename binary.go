package tilespec

import (
	"io"

	"github.com/bodgit/tilespec/metadata"
)

// Metadata converts the tiles in t to a binary metadata table. Modifier
// records are left out, as they are from the literal table.
func (t *Table) Metadata() (*metadata.Table, error) {
	m := metadata.New()
	for _, tile := range t.Tiles {
		if err := m.Set(tile.Code, metadata.Entry{
			Flags: uint8(tile.Flags),
			Mod:   tile.Edition,
			Name:  tile.Name,
		}); err != nil {
			return nil, recordError(tile.Record, err)
		}
	}
	return m, nil
}

// EncodeBinary writes t to w in the binary metadata format.
func EncodeBinary(w io.Writer, t *Table) error {
	m, err := t.Metadata()
	if err != nil {
		return err
	}
	b, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
