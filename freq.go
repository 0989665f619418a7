package hufftree

import (
	"unicode"
)

// Normalize folds a symbol to its canonical (lower-case) form.  Frequency
// counting and encoding both apply it, so "A" and "a" share one leaf.
func Normalize(s Symbol) Symbol {
	return Symbol(unicode.ToLower(rune(s)))
}

// CountFrequencies counts the number of occurrences of each distinct symbol
// in the given sequence, folding case first.  The result contains exactly
// one pair per distinct normalized symbol.  Callers must not rely on the
// order of the pairs; the current implementation happens to list symbols in
// order of first appearance.  An empty input yields an empty result.
func CountFrequencies(symbols []Symbol) []SymbolWeight {
	counts := make(map[Symbol]uint32, len(symbols))
	order := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		s = Normalize(s)
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s] = satAdd32(counts[s], 1)
	}

	out := make([]SymbolWeight, 0, len(order))
	for _, s := range order {
		out = append(out, SymbolWeight{Sym: s, Weight: counts[s]})
	}
	return out
}
