package tape

import (
	"iter"
	"maps"
	"slices"
)

// Symbol is a single cell value.
type Symbol string

// BLANK is the conventional blank symbol.
const BLANK = Symbol("_")

// Alphabet is a finite set of symbols.
type Alphabet map[Symbol]struct{}

// NewAlphabet creates an alphabet from a list of symbols.
func NewAlphabet(symbols ...Symbol) (alpha Alphabet) {
	alpha = make(Alphabet, len(symbols))
	for _, sym := range symbols {
		alpha[sym] = struct{}{}
	}

	return
}

// Contains returns true if sym is a member of the alphabet.
func (alpha Alphabet) Contains(sym Symbol) bool {
	_, ok := alpha[sym]
	return ok
}

// All returns the symbols of the alphabet, sorted.
func (alpha Alphabet) All() iter.Seq[Symbol] {
	return slices.Values(slices.Sorted(maps.Keys(alpha)))
}

// Union returns a new alphabet holding the members of alpha and seq.
func (alpha Alphabet) Union(seq iter.Seq[Symbol]) (union Alphabet) {
	union = maps.Clone(alpha)
	if union == nil {
		union = Alphabet{}
	}
	for sym := range seq {
		union[sym] = struct{}{}
	}

	return
}

// Symbols splits text into one symbol per rune.
func Symbols(text string) (syms []Symbol) {
	syms = make([]Symbol, 0, len(text))
	for _, r := range text {
		syms = append(syms, Symbol(r))
	}

	return
}
