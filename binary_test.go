package tilespec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bodgit/tilespec/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBinary(t *testing.T) {
	table := compileString(t, shortTable)

	b := new(bytes.Buffer)
	require.Nil(t, EncodeBinary(b, table))

	m := metadata.New()
	require.Nil(t, m.UnmarshalBinary(b.Bytes()))
	assert.Equal(t, len(table.Tiles), m.Length())

	for _, tile := range table.Tiles {
		e, ok := m.Get(tile.Code)
		require.True(t, ok)
		assert.Equal(t, metadata.Entry{Flags: uint8(tile.Flags), Mod: tile.Edition, Name: tile.Name}, e)
	}

	_, ok := m.Get(0x76)
	assert.False(t, ok)
}

func TestEncodeBinaryLongName(t *testing.T) {
	table := compileString(t, "01 "+strings.Repeat("x", metadata.MaxNameLength+1))

	err := EncodeBinary(new(bytes.Buffer), table)
	require.NotNil(t, err)

	var rerr *RecordError
	assert.True(t, errors.As(err, &rerr))
}
