/*
Package metadata implements a compact binary form of a compiled tile table,
for tools that want the flags without linking the generated Go source.

The table is written as 256 two byte slots, one per tile code, holding the
flags (with the top bit set if the code is in use) and the modifier kind.
These are followed by the name of each code in use in ascending order, each
prefixed with its length in one byte, and finally a little endian CRC-32
(IEEE) of everything before it.
*/
package metadata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"sort"
)

const (
	numCodes    = 256
	slotSize    = 2
	headerSize  = numCodes * slotSize
	trailerSize = crc32.Size

	// Present is set in the flags slot of every code in use
	Present = 0x80

	// MaxNameLength is the longest name that can be stored
	MaxNameLength = 255
)

var (
	errTooShort    = errors.New("metadata: not enough data")
	errTooLong     = errors.New("metadata: too much data")
	errBadChecksum = errors.New("metadata: checksum mismatch")
)

// Entry is the metadata stored for one tile code.
type Entry struct {
	Flags uint8
	Mod   byte
	Name  string
}

// Table is the metadata table object. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Table struct {
	entries map[uint8]Entry
}

// New returns an empty metadata table
func New() *Table {
	return &Table{
		entries: make(map[uint8]Entry),
	}
}

// Length returns the number of codes in the table
func (t *Table) Length() int {
	return len(t.entries)
}

// Set stores the entry for the given code
func (t *Table) Set(code uint8, e Entry) error {
	if e.Flags&Present != 0 {
		return fmt.Errorf("metadata: flags %#x overlap present bit", e.Flags)
	}
	if len(e.Name) > MaxNameLength {
		return fmt.Errorf("metadata: name longer than %d bytes", MaxNameLength)
	}
	t.entries[code] = e
	return nil
}

// Get returns the entry for code and whether it is in use
func (t *Table) Get(code uint8) (Entry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

func (t *Table) codes() []uint8 {
	keys := make([]uint8, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// MarshalBinary encodes the table into binary form and returns the result
func (t *Table) MarshalBinary() ([]byte, error) {
	var header [headerSize]byte
	keys := t.codes()
	for _, k := range keys {
		e := t.entries[k]
		header[int(k)*slotSize] = e.Flags | Present
		header[int(k)*slotSize+1] = e.Mod
	}

	b := new(bytes.Buffer)
	b.Write(header[:])

	// Write out names in code order
	for _, k := range keys {
		name := t.entries[k].Name
		b.WriteByte(uint8(len(name)))
		b.WriteString(name)
	}

	if err := binary.Write(b, binary.LittleEndian, crc32.ChecksumIEEE(b.Bytes())); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the table from binary form
func (t *Table) UnmarshalBinary(b []byte) error {
	if len(b) < headerSize+trailerSize {
		return errTooShort
	}
	body := b[:len(b)-trailerSize]
	if binary.LittleEndian.Uint32(b[len(body):]) != crc32.ChecksumIEEE(body) {
		return errBadChecksum
	}

	t.entries = make(map[uint8]Entry)

	r := bytes.NewReader(body[headerSize:])
	for code := 0; code < numCodes; code++ {
		flags, mod := body[code*slotSize], body[code*slotSize+1]
		if flags&Present == 0 {
			continue
		}

		n, err := r.ReadByte()
		if err != nil {
			return errTooShort
		}
		name := make([]byte, n)
		if _, err := io.ReadFull(r, name); err != nil {
			return errTooShort
		}

		t.entries[uint8(code)] = Entry{
			Flags: flags &^ Present,
			Mod:   mod,
			Name:  string(name),
		}
	}

	if r.Len() != 0 {
		return errTooLong
	}

	return nil
}
