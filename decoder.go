package hufftree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrTruncatedCode is returned by decoding when the bit sequence does not
// end on a leaf boundary.  It indicates corrupted or incomplete input; the
// missing bits are never padded or guessed.
var ErrTruncatedCode = errors.New("hufftree: truncated code")

// Decoder implements a decoder for a Huffman tree's code.
type Decoder struct {
	root Tree
}

// Init initializes this Decoder to decode against the given tree.
func (d *Decoder) Init(t Tree) {
	*d = Decoder{root: t}
}

// Decode decodes a bit sequence into the sequence of symbols it encodes.
//
// Decoding walks the tree from the root: a 0 bit moves to the left child, a
// non-zero bit to the right child.  Reaching a leaf emits its symbol and
// restarts the walk at the root.  The input must end exactly on a leaf
// boundary; bits running out partway down the tree fail with
// ErrTruncatedCode.
//
// A lone-leaf tree is degenerate: its only code is empty, so no bit is ever
// consumed and repetition counts are unrecoverable from the bit stream.  The
// policy here is that the empty bit sequence decodes to the leaf's symbol
// exactly once, and any non-empty bit sequence fails with ErrTruncatedCode.
func (d *Decoder) Decode(bits []Bit) ([]Symbol, error) {
	if leaf, ok := d.root.(*Leaf); ok {
		if len(bits) != 0 {
			return nil, fmt.Errorf("%d bits against a single-symbol alphabet: %w", len(bits), ErrTruncatedCode)
		}
		return []Symbol{leaf.Sym}, nil
	}

	var out []Symbol
	cur := d.root
	i := 0
	for {
		switch n := cur.(type) {
		case *Leaf:
			out = append(out, n.Sym)
			if i == len(bits) {
				return out, nil
			}
			cur = d.root
		case *Fork:
			if i == len(bits) {
				if cur == d.root {
					// Clean boundary: nothing is mid-symbol.
					return out, nil
				}
				return nil, fmt.Errorf("bit sequence ends mid-symbol at bit %d: %w", i, ErrTruncatedCode)
			}
			if bits[i] == 0 {
				cur = n.Left
			} else {
				cur = n.Right
			}
			i++
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", Weight(d.root))
	for _, s := range Alphabet(d.root) {
		fmt.Fprintf(&buf, "\tSymbol %q\n", s)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decode decodes a bit sequence against the given tree.  See Decoder.Decode
// for the walk semantics and the lone-leaf policy.
func Decode(t Tree, bits []Bit) ([]Symbol, error) {
	var d Decoder
	d.Init(t)
	return d.Decode(bits)
}
