// Package automata provides a finite-automata engine: DFA, NFA, and
// ε-NFA construction, the canonical text-table format, powerset
// determinization, DFA minimization, product combinators, and a
// Thompson-construction regex compiler.
//
// The subpackages (alphabet, table, automaton, subset, minimize,
// product, regexfa, bridge) are usable directly; this package is a thin
// facade over the common path — parse or compile, then serialize or
// compare — for callers who don't need the subpackage split.
//
// Basic usage:
//
//	d, err := automata.ParseDFA(tableText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := d.Accepts([]string{"a", "b"})
package automata

import (
	"github.com/coregx/automata/automaton"
	"github.com/coregx/automata/errs"
	"github.com/coregx/automata/minimize"
	"github.com/coregx/automata/product"
	"github.com/coregx/automata/regexfa"
	"github.com/coregx/automata/subset"
	"github.com/coregx/automata/table"
)

// Error taxonomy, re-exported from the internal errs leaf package so
// every subpackage's errors can be checked against one set of names
// without importing an internal package directly. Sentinels support
// errors.Is; the typed wrappers additionally carry position/context and
// support errors.As.
var (
	ErrLexical          = errs.ErrLexical
	ErrStructural       = errs.ErrStructural
	ErrReference        = errs.ErrReference
	ErrInitial          = errs.ErrInitial
	ErrAlphabetMismatch = errs.ErrAlphabetMismatch
	ErrUnknownSymbol    = errs.ErrUnknownSymbol
	ErrRegexSyntax      = errs.ErrRegexSyntax
	ErrUnknownHandle    = errs.ErrUnknownHandle
)

type (
	LexError              = errs.LexError
	StructuralError       = errs.StructuralError
	ReferenceError        = errs.ReferenceError
	InitialError          = errs.InitialError
	AlphabetMismatchError = errs.AlphabetMismatchError
	UnknownSymbolError    = errs.UnknownSymbolError
	RegexSyntaxError      = errs.RegexSyntaxError
	UnknownHandleError    = errs.UnknownHandleError
)

// ParseDFA parses text as a DFA table and builds the validated DFA.
//
// Example:
//
//	d, err := automata.ParseDFA("    a b\n→ * q0 q0 q1\n    q1 q1 q0\n")
func ParseDFA(text string) (*automaton.DFA, error) {
	desc, err := table.ParseDFA(text)
	if err != nil {
		return nil, err
	}
	return automaton.BuildDFA(desc)
}

// ParseNFA parses text as an NFA (or ε-NFA) table and builds the
// validated NFA.
func ParseNFA(text string) (*automaton.NFA, error) {
	desc, err := table.ParseNFA(text)
	if err != nil {
		return nil, err
	}
	return automaton.BuildNFA(desc)
}

// Compile compiles a regex pattern into an ε-NFA via Thompson
// construction.
//
// Example:
//
//	n, err := automata.Compile("a(b|c)*")
func Compile(pattern string) (*automaton.NFA, error) {
	return regexfa.Compile(pattern)
}

// MustCompile is Compile but panics on error, for package-level pattern
// constants.
func MustCompile(pattern string) *automaton.NFA {
	return regexfa.MustCompile(pattern)
}

// Determinize runs the powerset construction, turning n into an
// equivalent DFA.
func Determinize(n *automaton.NFA) (*automaton.DFA, error) {
	return subset.Build(n)
}

// Minimize reduces d to its minimal equivalent DFA: unreachable states
// removed, then indistinguishable states merged.
func Minimize(d *automaton.DFA) *automaton.DFA {
	return minimize.Minimize(d)
}

// Union, Intersect, Difference, and SymmetricDifference realize the
// corresponding set operation on two same-alphabet DFAs' languages as a
// new DFA.
func Union(d1, d2 *automaton.DFA) (*automaton.DFA, error) { return product.Union(d1, d2) }

func Intersect(d1, d2 *automaton.DFA) (*automaton.DFA, error) { return product.Intersect(d1, d2) }

func Difference(d1, d2 *automaton.DFA) (*automaton.DFA, error) { return product.Difference(d1, d2) }

func SymmetricDifference(d1, d2 *automaton.DFA) (*automaton.DFA, error) {
	return product.SymmetricDifference(d1, d2)
}

// Equivalent reports whether d1 and d2 accept exactly the same language.
func Equivalent(d1, d2 *automaton.DFA) (bool, error) {
	return product.Equivalent(d1, d2)
}

// EquivalentNFA reports whether n1 and n2 accept exactly the same
// language, by determinizing both sides first.
func EquivalentNFA(n1, n2 *automaton.NFA) (bool, error) {
	return product.EquivalentNFA(n1, n2)
}
