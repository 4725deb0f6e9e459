// Package alphabet implements the ordered, ε-aware symbol alphabet shared
// by every automaton in this module.
//
// An Alphabet is immutable once built: Σ is fixed at construction time and
// every downstream package (table, automaton, subset, minimize, product,
// regexfa) references symbols by their dense index into it rather than by
// repeated string comparison.
package alphabet

import (
	"fmt"

	"github.com/coregx/automata/errs"
)

// Eps is the canonical internal spelling of the ε (empty-move) symbol.
// Input text may spell it either "ε" or the literal word "eps"; both
// canonicalize to this value.
const Eps = "ε"

// CanonicalSymbol maps a raw token to its canonical spelling. Only the two
// recognized ε spellings are folded, and they are folded wherever they
// occur: alphabet has no notion of "header position", so a literal "eps"
// passed here always becomes ε. Every other token passes through unchanged.
func CanonicalSymbol(tok string) string {
	if tok == "ε" || tok == "eps" {
		return Eps
	}
	return tok
}

// Alphabet is an ordered, deduplicated sequence of symbols, with at most
// one of them reserved as ε.
type Alphabet struct {
	symbols []string
	index   map[string]int
	epsAt   int // index of Eps in symbols, or -1 if this alphabet has no ε
}

// New builds an Alphabet from symbols in header order. Each symbol is
// canonicalized via CanonicalSymbol before being checked for duplicates.
// Fails with a *errs.StructuralError if symbols is empty or contains a
// duplicate.
func New(symbols []string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, &errs.StructuralError{Message: "alphabet must be non-empty"}
	}

	a := &Alphabet{
		symbols: make([]string, 0, len(symbols)),
		index:   make(map[string]int, len(symbols)),
		epsAt:   -1,
	}

	for _, raw := range symbols {
		sym := CanonicalSymbol(raw)
		if _, dup := a.index[sym]; dup {
			return nil, &errs.StructuralError{Message: fmt.Sprintf("duplicate alphabet symbol %q", sym)}
		}
		idx := len(a.symbols)
		a.symbols = append(a.symbols, sym)
		a.index[sym] = idx
		if sym == Eps {
			a.epsAt = idx
		}
	}

	return a, nil
}

// Len returns |Σ|.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the alphabet in header order. The returned slice is
// owned by the caller; mutating it does not affect the Alphabet.
func (a *Alphabet) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Symbol returns the symbol at index i, or "" if i is out of range.
func (a *Alphabet) Symbol(i int) string {
	if i < 0 || i >= len(a.symbols) {
		return ""
	}
	return a.symbols[i]
}

// IndexOf returns the dense index of sym (after canonicalization) and
// whether it exists in this alphabet.
func (a *Alphabet) IndexOf(sym string) (int, bool) {
	i, ok := a.index[CanonicalSymbol(sym)]
	return i, ok
}

// HasEps reports whether this alphabet reserves an ε slot.
func (a *Alphabet) HasEps() bool { return a.epsAt >= 0 }

// EpsIndex returns the index of the ε symbol, or -1 if HasEps is false.
func (a *Alphabet) EpsIndex() int { return a.epsAt }

// NonEpsSymbols returns the alphabet's symbols excluding ε, in order. This
// is the Σ the powerset construction iterates over and the Tokenizer
// matches against.
func (a *Alphabet) NonEpsSymbols() []string {
	out := make([]string, 0, len(a.symbols))
	for _, s := range a.symbols {
		if s != Eps {
			out = append(out, s)
		}
	}
	return out
}

// Equal reports whether a and b contain the same symbols in the same
// order — the strict notion product construction and equivalence checking
// require.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, s := range a.symbols {
		if b.symbols[i] != s {
			return false
		}
	}
	return true
}
