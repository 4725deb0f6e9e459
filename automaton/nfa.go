package automaton

import (
	"sort"

	"github.com/coregx/automata/alphabet"
	"github.com/coregx/automata/errs"
	"github.com/coregx/automata/internal/sparse"
	"github.com/coregx/automata/table"
)

// NFA is a (possibly ε-) nondeterministic finite automaton: Σ, Q, Δ
// mapping each (q, a) to a set of states, one or more initial states
// (BuildNFA accepts any nonzero number of initial rows), and an accepting set.
type NFA struct {
	alpha     *alphabet.Alphabet
	names     []string
	byName    map[string]int
	accepting []bool
	initial   []int       // initial states, declaration order
	trans     [][][]int32 // trans[state][symbolIndex] -> target indices, in the order they were added
}

// Alphabet returns Σ, which may include a reserved ε slot.
func (n *NFA) Alphabet() *alphabet.Alphabet { return n.alpha }

// States returns |Q|.
func (n *NFA) States() int { return len(n.names) }

// Name returns the i'th state's name.
func (n *NFA) Name(i int) string { return n.names[i] }

// IndexOf returns the dense index of the state named name.
func (n *NFA) IndexOf(name string) (int, bool) {
	i, ok := n.byName[name]
	return i, ok
}

// Initial returns the (possibly several, internally) initial state indices.
func (n *NFA) Initial() []int {
	out := make([]int, len(n.initial))
	copy(out, n.initial)
	return out
}

// IsAccepting reports whether state i is in F.
func (n *NFA) IsAccepting(i int) bool { return n.accepting[i] }

// Move returns Δ(state, symbol)'s target set in stored order: table order
// for a parsed NFA, insertion order for one built with NFABuilder.
func (n *NFA) Move(state int, symbolIndex int) []int32 {
	return n.trans[state][symbolIndex]
}

// EpsClosure returns the least set containing states and closed under
// ε-transitions. For a plain NFA with no ε slot, this is the identity.
func (n *NFA) EpsClosure(states []int32) []int32 {
	if !n.alpha.HasEps() {
		return dedupSorted(states)
	}
	epsIdx := n.alpha.EpsIndex()

	seen := sparse.NewStateSet(int32(len(n.names)))
	var stack []int32
	for _, s := range states {
		if !seen.Contains(s) {
			seen.Insert(s)
			stack = append(stack, s)
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.trans[s][epsIdx] {
			if !seen.Contains(t) {
				seen.Insert(t)
				stack = append(stack, t)
			}
		}
	}

	out := append([]int32(nil), seen.Values()...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func dedupSorted(states []int32) []int32 {
	seen := make(map[int32]bool, len(states))
	out := make([]int32, 0, len(states))
	for _, s := range states {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Accepts runs word from the ε-closure of the initial states, taking the
// union-then-ε-closure on every symbol, and reports whether the final set
// intersects F.
func (n *NFA) Accepts(word []string) (bool, error) {
	current := n.EpsClosure(toInt32(n.initial))

	for pos, sym := range word {
		idx, ok := n.alpha.IndexOf(sym)
		if !ok {
			return false, &errs.UnknownSymbolError{Symbol: sym, Position: pos}
		}
		var next []int32
		for _, q := range current {
			next = append(next, n.trans[q][idx]...)
		}
		current = n.EpsClosure(next)
	}

	return n.intersectsAccepting(current), nil
}

func (n *NFA) intersectsAccepting(states []int32) bool {
	for _, s := range states {
		if n.accepting[s] {
			return true
		}
	}
	return false
}

func toInt32(xs []int) []int32 {
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = int32(x)
	}
	return out
}

// SetCursor is the cursor-like stepping form for NFAs: it tracks the
// current subset of live states after each symbol.
type SetCursor struct {
	nfa     *NFA
	current []int32
}

// NewCursor returns a SetCursor positioned at the ε-closure of the
// initial states.
func (n *NFA) NewCursor() *SetCursor {
	return &SetCursor{nfa: n, current: n.EpsClosure(toInt32(n.initial))}
}

// States returns the cursor's current live-state set, sorted ascending.
func (c *SetCursor) States() []int32 { return c.current }

// Accepting reports whether the current set intersects F.
func (c *SetCursor) Accepting() bool { return c.nfa.intersectsAccepting(c.current) }

// Step consumes one symbol and moves the cursor.
func (c *SetCursor) Step(symbol string) ([]int32, error) {
	idx, ok := c.nfa.alpha.IndexOf(symbol)
	if !ok {
		return c.current, &errs.UnknownSymbolError{Symbol: symbol}
	}
	var next []int32
	for _, q := range c.current {
		next = append(next, c.nfa.trans[q][idx]...)
	}
	c.current = c.nfa.EpsClosure(next)
	return c.current, nil
}

// Reverse builds the reverse NFA: every edge is flipped, the original
// accepting states become initial, and the original initial states become
// accepting. Useful as a Brzozowski-style cross-check for minimization and
// exposed publicly since it is a natural one-line addition to the
// automaton model.
func (n *NFA) Reverse() *NFA {
	width := n.alpha.Len()
	rev := &NFA{
		alpha:     n.alpha,
		names:     append([]string(nil), n.names...),
		byName:    make(map[string]int, len(n.names)),
		accepting: make([]bool, len(n.names)),
		trans:     make([][][]int32, len(n.names)),
	}
	for i, name := range rev.names {
		rev.byName[name] = i
	}
	for i := range rev.trans {
		rev.trans[i] = make([][]int32, width)
	}

	for s := range n.trans {
		for sym := 0; sym < width; sym++ {
			for _, t := range n.trans[s][sym] {
				rev.trans[t][sym] = append(rev.trans[t][sym], int32(s))
			}
		}
	}
	for i := range rev.trans {
		for sym := range rev.trans[i] {
			rev.trans[i][sym] = dedupSorted(rev.trans[i][sym])
		}
	}

	for i, acc := range n.accepting {
		if acc {
			rev.initial = append(rev.initial, i)
		}
	}
	for _, q := range n.initial {
		rev.accepting[q] = true
	}

	return rev
}

// DFAToNFA performs the trivial embedding of a DFA into the NFA model:
// each deterministic transition becomes a singleton set, ε is not added
// to the alphabet, and initial/accepting sets carry over.
func DFAToNFA(d *DFA) *NFA {
	width := d.alpha.Len()
	n := &NFA{
		alpha:     d.alpha,
		names:     append([]string(nil), d.names...),
		byName:    make(map[string]int, len(d.names)),
		accepting: append([]bool(nil), d.accepting...),
		initial:   []int{d.start},
		trans:     make([][][]int32, len(d.names)),
	}
	for i, name := range n.names {
		n.byName[name] = i
	}
	for s := range d.trans {
		n.trans[s] = make([][]int32, width)
		for sym := 0; sym < width; sym++ {
			n.trans[s][sym] = []int32{int32(d.trans[s][sym])}
		}
	}
	return n
}

// Table serializes this NFA to the canonical text format, with entries as
// brace-enclosed sets listing member names in Δ's stored order (see Move),
// and rows in internal index order.
func (n *NFA) Table(opts table.FormatOptions) string {
	initialSet := make(map[int]bool, len(n.initial))
	for _, q := range n.initial {
		initialSet[q] = true
	}

	rows := make([]table.SerialRow, len(n.names))
	for i, name := range n.names {
		entries := make([]table.Entry, n.alpha.Len())
		for j := range entries {
			words := make([]string, 0, len(n.trans[i][j]))
			for _, t := range n.trans[i][j] {
				words = append(words, n.names[t])
			}
			entries[j] = table.Entry{IsSet: true, Words: words}
		}
		rows[i] = table.SerialRow{
			Name:      name,
			Initial:   initialSet[i],
			Accepting: n.accepting[i],
			Entries:   entries,
		}
	}
	return table.Serialize(n.alpha.Symbols(), rows, true, opts)
}
