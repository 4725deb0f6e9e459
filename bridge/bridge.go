// Package bridge implements the integer-handle façade over the automaton
// core: a process-wide handle table mapping small integers to loaded
// DFAs, NFAs, and compiled regexes, for callers (a WASM shim, a CLI, a
// host-language binding) that cannot hold a Go pointer across a foreign
// boundary. The handle table is not part of the core model — automaton,
// subset, minimize, and product all work directly with *automaton.DFA/
// *automaton.NFA values — it exists purely for handle-based callers.
//
// Handles are acquired by Load* and released by Delete*; any use of a
// stale or unknown handle is reported through the return value rather
// than a panic, so a misbehaving caller can't bring down the bridge.
package bridge

import (
	"fmt"
	"sync"

	"github.com/coregx/automata/automaton"
	"github.com/coregx/automata/errs"
	"github.com/coregx/automata/minimize"
	"github.com/coregx/automata/product"
	"github.com/coregx/automata/regexfa"
	"github.com/coregx/automata/subset"
	"github.com/coregx/automata/table"
)

// kind tags what a handle's slot holds.
type kind int

const (
	kindDFA kind = iota
	kindNFA
	kindRegex // an NFA compiled from a regex pattern, kept distinct for DeleteRegex bookkeeping
)

type entry struct {
	kind kind
	dfa  *automaton.DFA
	nfa  *automaton.NFA
}

// Bridge owns the handle table. The zero value is not usable; construct
// one with New or NewWithConfig.
type Bridge struct {
	mu    sync.Mutex
	cfg   Config
	next  int
	table map[int]entry
}

// New returns a Bridge with the default (unlimited) Config.
func New() *Bridge {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Bridge with an explicit resource guard.
func NewWithConfig(cfg Config) *Bridge {
	return &Bridge{cfg: cfg, table: make(map[int]entry), next: 1}
}

// EqResult is the tri-state result of an equivalence check: the two
// handles may be equivalent, not equivalent, or one of them unknown.
type EqResult int

const (
	NotEquivalent EqResult = iota
	Equivalent
	UnknownHandle
)

func (b *Bridge) alloc(e entry) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cfg.MaxHandles > 0 && len(b.table) >= b.cfg.MaxHandles {
		return 0, fmt.Errorf("bridge: handle table full (MaxHandles=%d)", b.cfg.MaxHandles)
	}
	h := b.next
	b.next++
	b.table[h] = e
	return h, nil
}

func (b *Bridge) get(h int) (entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.table[h]
	return e, ok
}

func (b *Bridge) delete(h int, want kind) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.table[h]
	if !ok || e.kind != want {
		return false
	}
	delete(b.table, h)
	return true
}

// LoadDFA parses text as a DFA table and returns a fresh handle.
func (b *Bridge) LoadDFA(text string) (int, error) {
	desc, err := table.ParseDFA(text)
	if err != nil {
		return 0, err
	}
	d, err := automaton.BuildDFA(desc)
	if err != nil {
		return 0, err
	}
	return b.alloc(entry{kind: kindDFA, dfa: d})
}

// LoadNFA parses text as an NFA (or ε-NFA) table and returns a fresh handle.
func (b *Bridge) LoadNFA(text string) (int, error) {
	desc, err := table.ParseNFA(text)
	if err != nil {
		return 0, err
	}
	n, err := automaton.BuildNFA(desc)
	if err != nil {
		return 0, err
	}
	return b.alloc(entry{kind: kindNFA, nfa: n})
}

// LoadRegex compiles pattern via the Thompson compiler and returns a
// fresh handle over the resulting ε-NFA.
func (b *Bridge) LoadRegex(pattern string) (int, error) {
	n, err := regexfa.Compile(pattern)
	if err != nil {
		return 0, err
	}
	return b.alloc(entry{kind: kindRegex, nfa: n})
}

// DeleteDFA releases a DFA handle, reporting whether it existed.
func (b *Bridge) DeleteDFA(h int) bool { return b.delete(h, kindDFA) }

// DeleteNFA releases an NFA handle, reporting whether it existed.
func (b *Bridge) DeleteNFA(h int) bool { return b.delete(h, kindNFA) }

// DeleteRegex releases a compiled-regex handle, reporting whether it existed.
func (b *Bridge) DeleteRegex(h int) bool { return b.delete(h, kindRegex) }

func (b *Bridge) dfaAt(h int) (*automaton.DFA, error) {
	e, ok := b.get(h)
	if !ok || e.kind != kindDFA {
		return nil, &errs.UnknownHandleError{Handle: h}
	}
	return e.dfa, nil
}

func (b *Bridge) nfaAt(h int) (*automaton.NFA, error) {
	e, ok := b.get(h)
	if !ok || (e.kind != kindNFA && e.kind != kindRegex) {
		return nil, &errs.UnknownHandleError{Handle: h}
	}
	return e.nfa, nil
}

// DFAToNFA converts a loaded DFA into a fresh NFA handle via the trivial
// embedding; the source handle is left untouched.
func (b *Bridge) DFAToNFA(h int) (int, error) {
	d, err := b.dfaAt(h)
	if err != nil {
		return 0, err
	}
	return b.alloc(entry{kind: kindNFA, nfa: automaton.DFAToNFA(d)})
}

// NFAToDFA converts a loaded NFA (or compiled regex) into a fresh DFA
// handle via the powerset construction; the source handle is left
// untouched.
func (b *Bridge) NFAToDFA(h int) (int, error) {
	n, err := b.nfaAt(h)
	if err != nil {
		return 0, err
	}
	d, err := subset.Build(n)
	if err != nil {
		return 0, err
	}
	return b.alloc(entry{kind: kindDFA, dfa: d})
}

// RegexToNFA materializes a fresh, independently-owned NFA handle from a
// compiled-regex handle, distinct from the handle LoadRegex returned.
func (b *Bridge) RegexToNFA(h int) (int, error) {
	e, ok := b.get(h)
	if !ok || e.kind != kindRegex {
		return 0, &errs.UnknownHandleError{Handle: h}
	}
	return b.alloc(entry{kind: kindNFA, nfa: e.nfa})
}

// CheckDFAEq reports whether the two DFA handles' languages are equivalent.
func (b *Bridge) CheckDFAEq(h1, h2 int) (EqResult, error) {
	d1, err := b.dfaAt(h1)
	if err != nil {
		return UnknownHandle, nil
	}
	d2, err := b.dfaAt(h2)
	if err != nil {
		return UnknownHandle, nil
	}
	eq, err := product.Equivalent(d1, d2)
	if err != nil {
		return NotEquivalent, err
	}
	if eq {
		return Equivalent, nil
	}
	return NotEquivalent, nil
}

// CheckNFAEq reports whether the two NFA (or compiled-regex) handles'
// languages are equivalent.
func (b *Bridge) CheckNFAEq(h1, h2 int) (EqResult, error) {
	n1, err := b.nfaAt(h1)
	if err != nil {
		return UnknownHandle, nil
	}
	n2, err := b.nfaAt(h2)
	if err != nil {
		return UnknownHandle, nil
	}
	eq, err := product.EquivalentNFA(n1, n2)
	if err != nil {
		return NotEquivalent, err
	}
	if eq {
		return Equivalent, nil
	}
	return NotEquivalent, nil
}

// MinimizeDFA replaces the DFA at h with its minimized form in place,
// preserving the handle's identity, and reports whether h was a live DFA
// handle.
func (b *Bridge) MinimizeDFA(h int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.table[h]
	if !ok || e.kind != kindDFA {
		return false
	}
	e.dfa = minimize.Minimize(e.dfa)
	b.table[h] = e
	return true
}

// DFAToTable serializes the DFA at h to the canonical text format.
func (b *Bridge) DFAToTable(h int) (string, error) {
	d, err := b.dfaAt(h)
	if err != nil {
		return "", err
	}
	return d.Table(table.DefaultFormatOptions()), nil
}

// NFAToTable serializes the NFA (or compiled regex) at h to the
// canonical text format.
func (b *Bridge) NFAToTable(h int) (string, error) {
	n, err := b.nfaAt(h)
	if err != nil {
		return "", err
	}
	return n.Table(table.DefaultFormatOptions()), nil
}
