package hufftree

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned when a symbol has no leaf in the tree being
// used to encode it.
var ErrUnknownSymbol = errors.New("hufftree: unknown symbol")

// CodeTable maps each symbol of a tree's alphabet to its code.  A table is a
// derived view of a tree: it is built by NewCodeTable and never mutated.
type CodeTable map[Symbol]Code

// NewCodeTable flattens a tree into its code table.  The table holds exactly
// one entry per leaf, and the length of a symbol's code equals the depth of
// its leaf.  A lone leaf maps its symbol to the empty code.
func NewCodeTable(t Tree) CodeTable {
	table := make(CodeTable)
	switch n := t.(type) {
	case *Leaf:
		table[n.Sym] = Code{}
	case *Fork:
		for sym, code := range NewCodeTable(n.Left) {
			table[sym] = code.prepend(0)
		}
		for sym, code := range NewCodeTable(n.Right) {
			table[sym] = code.prepend(1)
		}
	}
	return table
}

// Lookup returns the code for the given symbol, folding case first.  A
// symbol with no entry in the table fails with ErrUnknownSymbol.
func (table CodeTable) Lookup(s Symbol) (Code, error) {
	s = Normalize(s)
	code, found := table[s]
	if !found {
		return nil, fmt.Errorf("no code for symbol %q: %w", s, ErrUnknownSymbol)
	}
	return code, nil
}
