package hufftree

// Symbol represents a symbol in the alphabet being coded.  Symbols are
// Unicode code points; they are folded to lower case before frequency
// counting, so two symbols differing only in case are the same symbol.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Bit is a single bit of a Huffman code.  Zero selects the left child of a
// fork; any non-zero value selects the right child.
type Bit byte

// SymbolWeight pairs a symbol with its weight, i.e. the number of times the
// symbol occurs in the sequence being coded.
type SymbolWeight struct {
	Sym    Symbol
	Weight uint32
}
