/*
Package tilespec compiles the textual tile table of the CC2 level format into
tile metadata and encodes it as a Go literal table.

Each line of the table declares one tile code:

	16,D,+        chip    CC1
	43:d          clone machine

The first word is the code in hexadecimal, followed by comma separated
extras ("D" direction byte, "+" lower layer, "m", "mm" or "mmmm" for a
modifier, anything else an extra byte) and an optional ":" and single letter
modifier kind. The rest of the line is the name, up to an optional CC1 tag.
*/
package tilespec

import (
	"io"
	"io/ioutil"
	"log"
)

// DefaultWorkers is the number of goroutines used to derive flags.
const DefaultWorkers = 4

// Compiler runs the whole parse, validate, derive pipeline.
type Compiler struct {
	logger  *log.Logger
	workers int
}

// New returns a Compiler logging to logger, which may be nil, and deriving
// flags with the given number of workers.
func New(logger *log.Logger, workers int) *Compiler {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Compiler{
		logger:  logger,
		workers: workers,
	}
}

// Compile reads the whole table from r and compiles it.
func (c *Compiler) Compile(r io.Reader) (*Table, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return c.CompileString(string(b))
}

// CompileString compiles the table in text.
func (c *Compiler) CompileString(text string) (*Table, error) {
	records, err := ParseTable(text)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("Parsed %d records\n", len(records))

	t, err := build(records, c.workers)
	if err != nil {
		return nil, err
	}

	for _, m := range t.Modifiers {
		width, _ := m.ModifierWidth()
		c.logger.Printf("Skipping modifier record 0x%02x \"%s\", %d byte(s)\n", m.Code, m.Name, width)
	}
	c.logger.Printf("Compiled %d tiles and %d modifiers\n", len(t.Tiles), len(t.Modifiers))

	return t, nil
}
