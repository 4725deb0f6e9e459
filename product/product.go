// Package product implements the DFA product construction: a new DFA
// over pairs (q1, q2) of two same-alphabet DFAs, combined under a
// caller-supplied boolean combinator, used to realize union, intersection,
// difference, symmetric difference, and equivalence checking.
package product

import (
	"fmt"

	"github.com/coregx/automata/automaton"
	"github.com/coregx/automata/errs"
	"github.com/coregx/automata/minimize"
	"github.com/coregx/automata/subset"
)

// Combinator decides acceptance of a product state from whether each side
// was accepting. A function value rather than an enum, so callers can
// pass a custom combinator without extending a closed set of constants.
type Combinator func(left, right bool) bool

// Predefined combinators.
var (
	Or  Combinator = func(a, b bool) bool { return a || b }
	And Combinator = func(a, b bool) bool { return a && b }
	// Diff realizes a ∧ ¬b (difference: left but not right).
	Diff Combinator = func(a, b bool) bool { return a && !b }
	Xor  Combinator = func(a, b bool) bool { return a != b }
)

// Build constructs the product DFA of d1 and d2 under combine, restricted
// to states reachable from (q0¹, q0²). Fails with
// *errs.AlphabetMismatchError if the two DFAs don't share the same
// symbols in the same order.
func Build(d1, d2 *automaton.DFA, combine Combinator) (*automaton.DFA, error) {
	if !d1.Alphabet().Equal(d2.Alphabet()) {
		return nil, &errs.AlphabetMismatchError{Left: d1.Alphabet().Symbols(), Right: d2.Alphabet().Symbols()}
	}

	alpha := d1.Alphabet()
	width := alpha.Len()
	b := automaton.NewDFABuilder(alpha)

	type pair struct{ p, q int }
	nameOf := func(p, q int) string { return fmt.Sprintf("(%s,%s)", d1.Name(p), d2.Name(q)) }

	seen := make(map[pair]int)
	start := pair{d1.Start(), d2.Start()}
	startIdx := b.AddState(nameOf(start.p, start.q), combine(d1.IsAccepting(start.p), d2.IsAccepting(start.q)))
	b.SetStart(startIdx)
	seen[start] = startIdx

	queue := []pair{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		fromIdx := seen[cur]

		for a := 0; a < width; a++ {
			sym := alpha.Symbol(a)
			next := pair{d1.Next(cur.p, a), d2.Next(cur.q, a)}

			toIdx, ok := seen[next]
			if !ok {
				toIdx = b.AddState(nameOf(next.p, next.q), combine(d1.IsAccepting(next.p), d2.IsAccepting(next.q)))
				seen[next] = toIdx
				queue = append(queue, next)
			}

			if err := b.AddTransition(fromIdx, sym, toIdx); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(true)
}

// Union realizes D1 ∪ D2.
func Union(d1, d2 *automaton.DFA) (*automaton.DFA, error) { return Build(d1, d2, Or) }

// Intersect realizes D1 ∩ D2.
func Intersect(d1, d2 *automaton.DFA) (*automaton.DFA, error) { return Build(d1, d2, And) }

// Difference realizes D1 ∖ D2.
func Difference(d1, d2 *automaton.DFA) (*automaton.DFA, error) { return Build(d1, d2, Diff) }

// SymmetricDifference realizes D1 ∆ D2.
func SymmetricDifference(d1, d2 *automaton.DFA) (*automaton.DFA, error) { return Build(d1, d2, Xor) }

// Equivalent reports whether d1 and d2 accept exactly the same language:
// it builds the symmetric-difference product, removes unreachable states,
// and checks that no accepting state survives. Build already only
// materializes states reachable from (q0¹, q0²), so the explicit
// RemoveUnreachable pass here is a deliberate no-op safety net rather
// than an optimization.
func Equivalent(d1, d2 *automaton.DFA) (bool, error) {
	p, err := Build(d1, d2, Xor)
	if err != nil {
		return false, err
	}
	reduced := minimize.RemoveUnreachable(p)
	for i := 0; i < reduced.States(); i++ {
		if reduced.IsAccepting(i) {
			return false, nil
		}
	}
	return true, nil
}

// EquivalentNFA reports whether n1 and n2 accept the same language by
// powerset-converting both sides and delegating to Equivalent.
func EquivalentNFA(n1, n2 *automaton.NFA) (bool, error) {
	d1, err := subset.Build(n1)
	if err != nil {
		return false, err
	}
	d2, err := subset.Build(n2)
	if err != nil {
		return false, err
	}
	return Equivalent(d1, d2)
}
