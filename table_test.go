package tilespec

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortTable = `
16,D,+        chip    CC1
01:w    floor   CC1
76,m,+  modifier
1C,+          thin wall e     CC1
81,D,A,+    direction block
02    wall    CC1
`

func TestBuildOrder(t *testing.T) {
	records, err := ParseTable(shortTable)
	require.Nil(t, err)

	table, err := Build(records)
	require.Nil(t, err)

	var codes []byte
	for _, tile := range table.Tiles {
		codes = append(codes, tile.Code)
	}
	assert.Equal(t, []byte{0x01, 0x02, 0x16, 0x1c, 0x81}, codes)

	require.Len(t, table.Modifiers, 1)
	assert.Equal(t, byte(0x76), table.Modifiers[0].Code)
}

func TestBuildShuffled(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(shortTable), "\n")

	want := new(bytes.Buffer)
	records, err := ParseTable(shortTable)
	require.Nil(t, err)
	table, err := Build(records)
	require.Nil(t, err)
	require.Nil(t, EncodeLines(want, table))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		rng.Shuffle(len(lines), func(a, b int) { lines[a], lines[b] = lines[b], lines[a] })

		records, err := ParseTable(strings.Join(lines, "\n"))
		require.Nil(t, err)
		table, err := build(records, 1+i%5)
		require.Nil(t, err)

		got := new(bytes.Buffer)
		require.Nil(t, EncodeLines(got, table))
		assert.Equal(t, want.String(), got.String())
	}
}

func TestBuildDuplicate(t *testing.T) {
	records := []Record{
		{Code: 0x01, Name: "floor", Line: 1},
		{Code: 0x01, Name: "floor", Line: 2},
	}

	_, err := Build(records)
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateCode))
}

func TestBuildEarliestError(t *testing.T) {
	var records []Record
	for i := 0; i < 64; i++ {
		r := Record{Code: byte(i), Name: "tile", Line: i + 1}
		switch i {
		case 20:
			r.Extras = extras("+", "D")
		case 40:
			r.Extras = extras("A", "P")
		}
		records = append(records, r)
	}

	for _, workers := range []int{1, 2, 8, 64} {
		_, err := build(records, workers)
		require.NotNil(t, err)
		assert.True(t, errors.Is(err, ErrOrderingViolation), "workers %d: got %v", workers, err)

		var rerr *RecordError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, 21, rerr.Line)
	}
}

func TestLookup(t *testing.T) {
	records, err := ParseTable(shortTable)
	require.Nil(t, err)
	table, err := Build(records)
	require.Nil(t, err)

	tile, ok := table.Lookup(0x81)
	require.True(t, ok)
	assert.Equal(t, "direction block", tile.Name)
	assert.Equal(t, HasDirection|HasExtra|HasLower, tile.Flags)

	_, ok = table.Lookup(0x76)
	assert.False(t, ok)

	_, ok = table.Lookup(0xff)
	assert.False(t, ok)
}
