package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Encoder implements an encoder for a Huffman tree's code.  It flattens the
// tree's code table once at Init time, so repeated Encode calls over the
// same tree skip the per-call table rebuild that the package-level Encode
// function performs.
type Encoder struct {
	table CodeTable
}

// Init initializes this Encoder with the code table of the given tree.
func (e *Encoder) Init(t Tree) {
	*e = Encoder{table: NewCodeTable(t)}
}

// EncodeSymbol encodes a single Symbol into its code.  A symbol outside the
// tree's alphabet fails with ErrUnknownSymbol.
func (e *Encoder) EncodeSymbol(s Symbol) (Code, error) {
	return e.table.Lookup(s)
}

// Encode encodes a sequence of symbols into the concatenation of their
// codes, in input order.  Any symbol outside the tree's alphabet fails the
// whole call with ErrUnknownSymbol; no partial output is returned.
func (e *Encoder) Encode(symbols []Symbol) ([]Bit, error) {
	var out []Bit
	for i, s := range symbols {
		code, err := e.table.Lookup(s)
		if err != nil {
			return nil, fmt.Errorf("symbol at index %d: %w", i, err)
		}
		out = append(out, code...)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	symbols := make([]Symbol, 0, len(e.table))
	for s := range e.table {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})

	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	for _, s := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", s, e.table[s])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (e *Encoder) DebugString() string {
	var sb strings.Builder
	_, _ = e.Dump(&sb)
	return sb.String()
}

// Encode builds the code table for the given tree and encodes a sequence of
// symbols into the concatenation of their codes.  Callers that encode many
// messages against one tree should build an Encoder once instead.
func Encode(t Tree, symbols []Symbol) ([]Bit, error) {
	var e Encoder
	e.Init(t)
	return e.Encode(symbols)
}
