package automaton

import (
	"fmt"

	"github.com/coregx/automata/alphabet"
)

// DFABuilder constructs a DFA incrementally using a low-level API, for
// callers that are not going through the table format — subset, minimize,
// and product all produce fresh DFAs this way: AddX methods return the
// new state's id, Build() finalizes and validates.
type DFABuilder struct {
	alpha     *alphabet.Alphabet
	names     []string
	byName    map[string]int
	accepting []bool
	trans     [][]int
	start     int
}

// NewDFABuilder returns an empty builder over alpha.
func NewDFABuilder(alpha *alphabet.Alphabet) *DFABuilder {
	return &DFABuilder{alpha: alpha, byName: make(map[string]int), start: -1}
}

// AddState adds a state named name and returns its dense index. If a
// state with that name already exists, its index is returned unchanged
// (idempotent; callers should keep repeated calls for the same name in
// agreement on `accepting`).
func (b *DFABuilder) AddState(name string, accepting bool) int {
	if i, ok := b.byName[name]; ok {
		return i
	}
	i := len(b.names)
	b.byName[name] = i
	b.names = append(b.names, name)
	b.accepting = append(b.accepting, accepting)
	row := make([]int, b.alpha.Len())
	for j := range row {
		row[j] = -1
	}
	b.trans = append(b.trans, row)
	return i
}

// SetStart marks state i as q0.
func (b *DFABuilder) SetStart(i int) { b.start = i }

// AddTransition sets δ(from, symbol) = to. Returns an error if symbol is
// not in Σ.
func (b *DFABuilder) AddTransition(from int, symbol string, to int) error {
	idx, ok := b.alpha.IndexOf(symbol)
	if !ok {
		return fmt.Errorf("automaton: symbol %q is not in the alphabet", symbol)
	}
	b.trans[from][idx] = to
	return nil
}

// Build finalizes the DFA. If autoComplete is true, any unfilled
// transition is routed to a fresh trap state, generalizing the powerset
// construction's trap-state rule to hand-built DFAs.
func (b *DFABuilder) Build(autoComplete bool) (*DFA, error) {
	if b.start < 0 {
		return nil, fmt.Errorf("automaton: DFA builder has no start state set")
	}
	d := &DFA{
		alpha:     b.alpha,
		names:     b.names,
		byName:    b.byName,
		accepting: b.accepting,
		start:     b.start,
		trans:     b.trans,
	}
	if autoComplete {
		d.Complete()
	}
	return d, nil
}

// NFABuilder constructs an NFA (or ε-NFA) incrementally. Grounded on the
// same teacher Builder shape as DFABuilder, generalized to multi-target,
// multi-initial transitions.
type NFABuilder struct {
	alpha     *alphabet.Alphabet
	names     []string
	byName    map[string]int
	accepting []bool
	trans     [][][]int32
	initial   []int
}

// NewNFABuilder returns an empty builder over alpha.
func NewNFABuilder(alpha *alphabet.Alphabet) *NFABuilder {
	return &NFABuilder{alpha: alpha, byName: make(map[string]int)}
}

// AddState adds a state named name and returns its dense index.
func (b *NFABuilder) AddState(name string, accepting bool) int {
	if i, ok := b.byName[name]; ok {
		return i
	}
	i := len(b.names)
	b.byName[name] = i
	b.names = append(b.names, name)
	b.accepting = append(b.accepting, accepting)
	b.trans = append(b.trans, make([][]int32, b.alpha.Len()))
	return i
}

// AddInitial marks state i as one of the (possibly several) initial states.
func (b *NFABuilder) AddInitial(i int) { b.initial = append(b.initial, i) }

// MarkAccepting flips state i to accepting, for builders that create a
// state before knowing whether it will end up accepting (the Thompson
// compiler's fragment exit states, for instance).
func (b *NFABuilder) MarkAccepting(i int) { b.accepting[i] = true }

// AddTransition adds a target to Δ(from, symbol).
func (b *NFABuilder) AddTransition(from int, symbol string, to int) error {
	idx, ok := b.alpha.IndexOf(symbol)
	if !ok {
		return fmt.Errorf("automaton: symbol %q is not in the alphabet", symbol)
	}
	b.trans[from][idx] = append(b.trans[from][idx], int32(to))
	return nil
}

// AddEpsilon adds a target to Δ(from, ε). Fails if the alphabet has no ε slot.
func (b *NFABuilder) AddEpsilon(from int, to int) error {
	if !b.alpha.HasEps() {
		return fmt.Errorf("automaton: alphabet has no ε symbol")
	}
	idx := b.alpha.EpsIndex()
	b.trans[from][idx] = append(b.trans[from][idx], int32(to))
	return nil
}

// Build finalizes the NFA.
func (b *NFABuilder) Build() (*NFA, error) {
	if len(b.initial) == 0 {
		return nil, fmt.Errorf("automaton: NFA builder has no initial state set")
	}
	return &NFA{
		alpha:     b.alpha,
		names:     b.names,
		byName:    b.byName,
		accepting: b.accepting,
		initial:   b.initial,
		trans:     b.trans,
	}, nil
}
