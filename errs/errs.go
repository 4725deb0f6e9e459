// Package errs defines the error taxonomy shared by every package in this
// module. It is a leaf package: it imports nothing from the rest of
// the module so that lexer, parser, builder, and algorithm packages can
// all depend on it without import cycles.
//
// Each error kind below has a sentinel value for errors.Is checks plus, for
// kinds that carry position or context, a typed wrapper implementing
// Unwrap() so callers can still errors.Is against the sentinel.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per taxonomy kind. Typed wrappers below embed
// these so errors.Is(err, ErrStructural) succeeds through the wrapper.
var (
	// ErrLexical covers a malformed comment, stray brace, or unterminated set.
	ErrLexical = errors.New("lexical error")

	// ErrStructural covers a wrong column count, duplicate alphabet symbol,
	// duplicate state row, or set/word used in the wrong row kind.
	ErrStructural = errors.New("structural error")

	// ErrReference covers a transition naming an undeclared state.
	ErrReference = errors.New("reference error")

	// ErrInitial covers a DFA with zero or more than one initial state.
	ErrInitial = errors.New("initial state error")

	// ErrAlphabetMismatch covers two automata given to product/equivalence
	// with unequal alphabets (symbol set or order).
	ErrAlphabetMismatch = errors.New("alphabet mismatch")

	// ErrUnknownSymbol covers acceptance fed a symbol outside Σ.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrRegexSyntax covers unbalanced parens, a stray postfix operator, or
	// an empty input where one is not meaningful.
	ErrRegexSyntax = errors.New("regex syntax error")

	// ErrUnknownHandle is bridge-level only: a stale or never-issued handle.
	ErrUnknownHandle = errors.New("unknown handle")
)

// LexError is a LexicalError with the line it occurred on.
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrLexical, e.Message)
}

func (e *LexError) Unwrap() error { return ErrLexical }

// StructuralError is a StructuralError with the line and offending token.
type StructuralError struct {
	Line    int
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrStructural, e.Message)
}

func (e *StructuralError) Unwrap() error { return ErrStructural }

// ReferenceError names a transition target that was never declared as a row.
type ReferenceError struct {
	FromState string
	Symbol    string
	Target    string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: state %q has a transition on %q to undeclared state %q",
		ErrReference, e.FromState, e.Symbol, e.Target)
}

func (e *ReferenceError) Unwrap() error { return ErrReference }

// InitialError reports how many initial-flagged rows a DFA or NFA table had.
type InitialError struct {
	Count int
}

func (e *InitialError) Error() string {
	return fmt.Sprintf("%s: found %d initial states (a DFA requires exactly one, an NFA at least one)", ErrInitial, e.Count)
}

func (e *InitialError) Unwrap() error { return ErrInitial }

// AlphabetMismatchError reports the two differing alphabets.
type AlphabetMismatchError struct {
	Left  []string
	Right []string
}

func (e *AlphabetMismatchError) Error() string {
	return fmt.Sprintf("%s: left=%v right=%v", ErrAlphabetMismatch, e.Left, e.Right)
}

func (e *AlphabetMismatchError) Unwrap() error { return ErrAlphabetMismatch }

// UnknownSymbolError names the offending symbol and its position in the word.
type UnknownSymbolError struct {
	Symbol   string
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%s: %q at position %d is not in the alphabet", ErrUnknownSymbol, e.Symbol, e.Position)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// RegexSyntaxError carries the offset into the pattern where parsing failed.
type RegexSyntaxError struct {
	Pattern string
	Offset  int
	Message string
}

func (e *RegexSyntaxError) Error() string {
	return fmt.Sprintf("%s: %s (in %q at offset %d)", ErrRegexSyntax, e.Message, e.Pattern, e.Offset)
}

func (e *RegexSyntaxError) Unwrap() error { return ErrRegexSyntax }

// UnknownHandleError names the stale/unknown handle value observed by the bridge.
type UnknownHandleError struct {
	Handle int
}

func (e *UnknownHandleError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownHandle, e.Handle)
}

func (e *UnknownHandleError) Unwrap() error { return ErrUnknownHandle }
