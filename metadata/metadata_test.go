package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	table := New()
	require.Nil(t, table.Set(0x16, Entry{Flags: 5, Name: "chip"}))
	require.Nil(t, table.Set(0x01, Entry{Mod: 'w', Name: "floor"}))
	require.Nil(t, table.Set(0xf3, Entry{Mod: 'c', Name: "sokoban wall"}))
	assert.Equal(t, 3, table.Length())

	b, err := table.MarshalBinary()
	require.Nil(t, err)
	assert.Equal(t, headerSize+len("chip")+len("floor")+len("sokoban wall")+3+trailerSize, len(b))

	// Names follow the header in code order
	assert.Equal(t, []byte("\x05floor\x04chip\x0csokoban wall"), b[headerSize:len(b)-trailerSize])
	assert.Equal(t, []byte{0x05 | Present, 0}, b[0x16*slotSize:0x16*slotSize+2])
	assert.Equal(t, []byte{0, 0}, b[0x02*slotSize:0x02*slotSize+2])

	other := New()
	require.Nil(t, other.UnmarshalBinary(b))
	assert.Equal(t, table, other)

	again, err := other.MarshalBinary()
	require.Nil(t, err)
	assert.Equal(t, b, again)
}

func TestTableEmpty(t *testing.T) {
	b, err := New().MarshalBinary()
	require.Nil(t, err)
	assert.Len(t, b, headerSize+trailerSize)

	table := New()
	require.Nil(t, table.UnmarshalBinary(b))
	assert.Equal(t, 0, table.Length())
}

func TestTableSet(t *testing.T) {
	table := New()
	assert.NotNil(t, table.Set(0x01, Entry{Flags: Present, Name: "floor"}))
	assert.NotNil(t, table.Set(0x01, Entry{Name: string(make([]byte, MaxNameLength+1))}))
	assert.Nil(t, table.Set(0x01, Entry{Name: string(make([]byte, MaxNameLength))}))
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	table := New()
	require.Nil(t, table.Set(0x01, Entry{Name: "floor"}))
	b, err := table.MarshalBinary()
	require.Nil(t, err)

	assert.Equal(t, errTooShort, New().UnmarshalBinary(b[:headerSize]))

	corrupt := append([]byte(nil), b...)
	corrupt[headerSize+1] ^= 0xff
	assert.Equal(t, errBadChecksum, New().UnmarshalBinary(corrupt))
}
