// Package automaton implements the typed in-memory automaton model: DFA,
// NFA, and ε-NFA, their Builder/Validator, acceptance and step-by-step
// evaluation, and round-trip serialization.
//
// States are owned by value in a contiguous slice per automaton and
// referenced by dense integer index; this sidesteps cyclic ownership for
// the cyclic graphs automata are, the same state-table shape used by
// dense-index NFA/DFA implementations generally.
package automaton

import (
	"github.com/coregx/automata/alphabet"
	"github.com/coregx/automata/errs"
	"github.com/coregx/automata/table"
)

// DFA is a deterministic finite automaton: Σ, Q, a total δ, one start
// state, and an accepting set.
type DFA struct {
	alpha     *alphabet.Alphabet
	names     []string
	byName    map[string]int
	accepting []bool
	start     int
	trans     [][]int // trans[state][symbolIndex] -> target state index
}

// Alphabet returns Σ.
func (d *DFA) Alphabet() *alphabet.Alphabet { return d.alpha }

// States returns |Q|.
func (d *DFA) States() int { return len(d.names) }

// Name returns the i'th state's name.
func (d *DFA) Name(i int) string { return d.names[i] }

// IndexOf returns the dense index of the state named name.
func (d *DFA) IndexOf(name string) (int, bool) {
	i, ok := d.byName[name]
	return i, ok
}

// Start returns q0's index.
func (d *DFA) Start() int { return d.start }

// IsAccepting reports whether state i is in F.
func (d *DFA) IsAccepting(i int) bool { return d.accepting[i] }

// Next returns δ(state, symbol)'s index, or -1 if the state or symbol is
// unknown (callers doing acceptance should use Accepts/Step instead, which
// surface *errs.UnknownSymbolError; Next is the low-level primitive used
// internally by product/minimize where the symbol is always valid).
func (d *DFA) Next(state int, symbolIndex int) int {
	if state < 0 || state >= len(d.trans) {
		return -1
	}
	row := d.trans[state]
	if symbolIndex < 0 || symbolIndex >= len(row) {
		return -1
	}
	return row[symbolIndex]
}

// Accepts runs word (a sequence of symbol spellings) from q0 to
// completion and reports whether the final state is accepting. Fails
// with *errs.UnknownSymbolError if any symbol is outside Σ.
func (d *DFA) Accepts(word []string) (bool, error) {
	state := d.start
	for pos, sym := range word {
		idx, ok := d.alpha.IndexOf(sym)
		if !ok {
			return false, &errs.UnknownSymbolError{Symbol: sym, Position: pos}
		}
		state = d.trans[state][idx]
	}
	return d.accepting[state], nil
}

// Cursor is the cursor-like stepping form of acceptance: it exposes the
// current state after each symbol without recomputation, for external
// consumers (a CLI stepping through a run, a visualization) that want to
// render intermediate states.
type Cursor struct {
	dfa   *DFA
	state int
}

// NewCursor returns a Cursor positioned at q0.
func (d *DFA) NewCursor() *Cursor {
	return &Cursor{dfa: d, state: d.start}
}

// State returns the cursor's current state index.
func (c *Cursor) State() int { return c.state }

// Accepting reports whether the cursor's current state is in F.
func (c *Cursor) Accepting() bool { return c.dfa.accepting[c.state] }

// Step consumes one symbol and moves the cursor. It returns the new
// state index.
func (c *Cursor) Step(symbol string) (int, error) {
	idx, ok := c.dfa.alpha.IndexOf(symbol)
	if !ok {
		return c.state, &errs.UnknownSymbolError{Symbol: symbol}
	}
	c.state = c.dfa.trans[c.state][idx]
	return c.state, nil
}

// Complete adds a single trap state (looping to itself on every symbol,
// rejecting) and routes every missing transition to it, making δ total.
// The table parser/builder already reject partial DFAs outright; this
// exists for DFAs assembled programmatically via NewDFABuilder, which
// does not force every cell to be filled in before Build. It is a no-op
// if δ is already total.
func (d *DFA) Complete() {
	width := d.alpha.Len()
	missing := false
	for _, row := range d.trans {
		for _, t := range row {
			if t < 0 {
				missing = true
				break
			}
		}
		if missing {
			break
		}
	}
	if !missing {
		return
	}

	trap := len(d.names)
	d.names = append(d.names, "{}")
	d.accepting = append(d.accepting, false)
	d.byName["{}"] = trap

	trapRow := make([]int, width)
	for i := range trapRow {
		trapRow[i] = trap
	}
	d.trans = append(d.trans, trapRow)

	for s := 0; s < trap; s++ {
		for i, t := range d.trans[s] {
			if t < 0 {
				d.trans[s][i] = trap
			}
		}
	}
}

// Table serializes this DFA to the canonical text format, in internal
// index order.
func (d *DFA) Table(opts table.FormatOptions) string {
	rows := make([]table.SerialRow, len(d.names))
	for i, name := range d.names {
		entries := make([]table.Entry, d.alpha.Len())
		for j := range entries {
			entries[j] = table.Entry{Word: d.names[d.trans[i][j]]}
		}
		rows[i] = table.SerialRow{
			Name:      name,
			Initial:   i == d.start,
			Accepting: d.accepting[i],
			Entries:   entries,
		}
	}
	return table.Serialize(d.alpha.Symbols(), rows, false, opts)
}
