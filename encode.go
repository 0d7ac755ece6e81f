package tilespec

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"text/tabwriter"
)

type encoder struct {
	w io.Writer
}

func modLiteral(edition byte) string {
	if edition == 0 {
		return "0"
	}
	return strconv.QuoteRune(rune(edition))
}

func (e *encoder) encodeEntry(t Entry) error {
	_, err := fmt.Fprintf(e.w, "\t%d: {ID: %#x, Mod: %s, Flags: %s, Name: %s},\n",
		t.Code, t.Code, modLiteral(t.Edition), t.Flags, strconv.Quote(t.Name))
	return err
}

func (e *encoder) encode(t *Table) error {
	for _, tile := range t.Tiles {
		if err := e.encodeEntry(tile); err != nil {
			return err
		}
	}
	return nil
}

// EncodeLines writes one Go composite literal element per tile in t to w,
// in ascending code order. Modifier records are not written.
func EncodeLines(w io.Writer, t *Table) error {
	e := encoder{w: w}

	return e.encode(t)
}

// SourceOptions controls the Go file written by WriteSource.
type SourceOptions struct {
	Package string
	Var     string
	Type    string
}

// DefaultSourceOptions returns the names the c2m package expects.
func DefaultSourceOptions() SourceOptions {
	return SourceOptions{
		Package: "c2m",
		Var:     "tilespec",
		Type:    "meta",
	}
}

// WriteSource writes a complete, gofmt'd Go file declaring t as an array
// indexed by tile code.
func WriteSource(w io.Writer, t *Table, opts SourceOptions) error {
	def := DefaultSourceOptions()
	if opts.Package == "" {
		opts.Package = def.Package
	}
	if opts.Var == "" {
		opts.Var = def.Var
	}
	if opts.Type == "" {
		opts.Type = def.Type
	}

	b := new(bytes.Buffer)
	fmt.Fprintf(b, "// Code generated by tilespec. DO NOT EDIT.\n\npackage %s\n\n", opts.Package)
	fmt.Fprintf(b, "var %s = [...]%s{\n", opts.Var, opts.Type)
	if err := EncodeLines(b, t); err != nil {
		return err
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("tilespec: formatting source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// WriteListing writes a human readable listing of every record in t.
func WriteListing(w io.Writer, t *Table) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tMOD\tFLAGS\tCC1\tNAME")
	for _, tile := range t.Tiles {
		fmt.Fprintf(tw, "0x%02x\t%s\t%s\t%t\t%s\n", tile.Code, modLiteral(tile.Edition), tile.Flags, tile.Legacy, tile.Name)
	}
	for _, m := range t.Modifiers {
		width, _ := m.ModifierWidth()
		fmt.Fprintf(tw, "0x%02x\t%s\tmodifier(%d)\t%t\t%s\n", m.Code, modLiteral(m.Edition), width, m.Legacy, m.Name)
	}
	return tw.Flush()
}
