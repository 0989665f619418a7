package hufftree

import (
	"errors"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// ErrEmptyAlphabet is returned by tree construction when given zero symbols.
// No tree can encode an empty alphabet.
var ErrEmptyAlphabet = errors.New("hufftree: empty alphabet")

// Tree is a Huffman code tree.  It is a closed sum type with exactly two
// variants, *Leaf and *Fork.  A Tree is immutable once built: subtrees are
// exclusively owned by their parent and are never shared or modified, so a
// Tree may be read from multiple goroutines simultaneously.
type Tree interface {
	isTree()
}

// Leaf is a tree node holding exactly one symbol of the alphabet.
type Leaf struct {
	Sym    Symbol
	Weight uint32
}

// Fork is an internal tree node.  Its weight is the sum of its children's
// weights and its symbol list is the concatenation of its children's symbol
// lists, left first.
type Fork struct {
	Left   Tree
	Right  Tree
	Syms   []Symbol
	Weight uint32
}

func (*Leaf) isTree() {}
func (*Fork) isTree() {}

// NewFork combines two subtrees into a Fork, computing the combined weight
// and symbol list.
func NewFork(left Tree, right Tree) *Fork {
	ls := symbolsOf(left)
	rs := symbolsOf(right)
	syms := make([]Symbol, 0, len(ls)+len(rs))
	syms = append(syms, ls...)
	syms = append(syms, rs...)
	return &Fork{
		Left:   left,
		Right:  right,
		Syms:   syms,
		Weight: satAdd32(weightOf(left), weightOf(right)),
	}
}

// Weight returns the weight of the tree: the occurrence count of a leaf's
// symbol, or the sum of the children's weights for a fork.
func Weight(t Tree) uint32 {
	return weightOf(t)
}

// Alphabet returns the symbols reachable below t, in left-to-right leaf
// order.  The returned slice is a copy and may be modified by the caller.
func Alphabet(t Tree) []Symbol {
	syms := symbolsOf(t)
	out := make([]Symbol, len(syms))
	copy(out, syms)
	return out
}

func weightOf(t Tree) uint32 {
	switch n := t.(type) {
	case *Leaf:
		return n.Weight
	case *Fork:
		return n.Weight
	default:
		panic("hufftree: unknown Tree variant")
	}
}

func symbolsOf(t Tree) []Symbol {
	switch n := t.(type) {
	case *Leaf:
		return []Symbol{n.Sym}
	case *Fork:
		return n.Syms
	default:
		panic("hufftree: unknown Tree variant")
	}
}

// BuildTree counts the frequency of each distinct (case-folded) symbol in
// the given sequence and builds the Huffman tree for that distribution.  An
// empty sequence fails with ErrEmptyAlphabet.  A sequence over a one-symbol
// alphabet yields a lone *Leaf; see Decode for the degenerate-tree policy.
func BuildTree(symbols []Symbol) (Tree, error) {
	return BuildTreeFromWeights(CountFrequencies(symbols))
}

// BuildTreeFromWeights builds the Huffman tree for an already-counted
// frequency distribution.  Symbols are folded to lower case; every weight
// must be positive and every normalized symbol must appear at most once.
//
// The construction is the classic greedy algorithm: start with one leaf per
// symbol in a weight-ordered queue, then repeatedly combine the two
// lowest-weight trees into a fork until a single tree remains.  A combined
// tree re-enters the queue ahead of existing trees of equal weight.  Each
// re-insertion is O(n) over the alphabet size, O(n²) total, which is fine:
// this runs per alphabet, not per message.
func BuildTreeFromWeights(pairs []SymbolWeight) (Tree, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyAlphabet
	}

	seen := make(map[Symbol]bool, len(pairs))
	queue := make([]Tree, 0, len(pairs))
	for _, p := range pairs {
		sym := Normalize(p.Sym)
		assert.Assertf(p.Weight > 0, "weight for symbol %q is %d, must be positive", sym, p.Weight)
		assert.Assertf(!seen[sym], "duplicate symbol %q", sym)
		seen[sym] = true
		queue = append(queue, &Leaf{Sym: sym, Weight: p.Weight})
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return weightOf(queue[i]) < weightOf(queue[j])
	})

	for len(queue) > 1 {
		merged := NewFork(queue[0], queue[1])
		queue = insertByWeight(queue[2:], merged)
	}
	return queue[0], nil
}

// insertByWeight inserts t into the weight-ordered queue, before any
// existing tree of equal weight.
func insertByWeight(queue []Tree, t Tree) []Tree {
	w := weightOf(t)
	i := sort.Search(len(queue), func(k int) bool {
		return weightOf(queue[k]) >= w
	})
	queue = append(queue, nil)
	copy(queue[i+1:], queue[i:])
	queue[i] = t
	return queue
}
