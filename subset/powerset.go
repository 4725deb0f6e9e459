// Package subset implements the NFA→DFA powerset (subset) construction:
// each reachable subset of NFA states becomes one DFA state, discovered
// by a work-queue algorithm so that DFA indices are assigned in
// deterministic, insertion-stable order.
package subset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/automata/alphabet"
	"github.com/coregx/automata/automaton"
)

// Config controls the powerset construction's resource guard: a cap on
// total subset states synthesized, guarding against the exponential
// blowup patterns like (a*)*b can trigger in NFAs with many
// ε-ambiguous branches.
type Config struct {
	// MaxStates caps the number of subset states the construction may
	// synthesize before it fails. Zero means unlimited.
	MaxStates int
}

// DefaultConfig returns the unlimited default.
func DefaultConfig() Config { return Config{MaxStates: 0} }

// Build runs the powerset construction on n and returns the equivalent
// DFA. Unreachable subset states are never generated.
func Build(n *automaton.NFA) (*automaton.DFA, error) {
	return BuildWithConfig(n, DefaultConfig())
}

// BuildWithConfig is Build with an explicit resource guard.
func BuildWithConfig(n *automaton.NFA, cfg Config) (*automaton.DFA, error) {
	alpha := n.Alphabet()
	symbols := alpha.NonEpsSymbols()
	// DFA alphabet excludes ε; build it in the same relative order as
	// the NFA's alphabet minus the reserved slot.
	dfaAlpha, err := alphabet.New(symbols)
	if err != nil {
		return nil, err
	}

	b := automaton.NewDFABuilder(dfaAlpha)

	type pending struct {
		key    string
		subset []int32
	}

	seen := make(map[string]int) // subset key -> DFA state index
	var queue []pending

	start := n.EpsClosure(toInt32(n.Initial()))
	startKey := subsetKey(n, start)
	startIdx := b.AddState(subsetName(n, start), subsetAccepting(n, start))
	b.SetStart(startIdx)
	seen[startKey] = startIdx
	queue = append(queue, pending{key: startKey, subset: start})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		fromIdx := seen[cur.key]

		for _, sym := range symbols {
			symIdx, _ := alpha.IndexOf(sym)
			var moved []int32
			for _, q := range cur.subset {
				moved = append(moved, n.Move(int(q), symIdx)...)
			}
			target := n.EpsClosure(moved)
			key := subsetKey(n, target)

			toIdx, ok := seen[key]
			if !ok {
				if cfg.MaxStates > 0 && len(seen) >= cfg.MaxStates {
					return nil, fmt.Errorf("subset: powerset construction exceeded MaxStates=%d", cfg.MaxStates)
				}
				toIdx = b.AddState(subsetName(n, target), subsetAccepting(n, target))
				seen[key] = toIdx
				queue = append(queue, pending{key: key, subset: target})
			}

			if err := b.AddTransition(fromIdx, sym, toIdx); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(true)
}

func subsetKey(n *automaton.NFA, subset []int32) string {
	if len(subset) == 0 {
		return ""
	}
	names := subsetMemberNames(n, subset)
	return strings.Join(names, " ")
}

// subsetName synthesizes "{s1 s2 ...}" with members in ascending index
// order; the empty subset is the canonical trap state "{}".
func subsetName(n *automaton.NFA, subset []int32) string {
	names := subsetMemberNames(n, subset)
	return "{" + strings.Join(names, " ") + "}"
}

func subsetMemberNames(n *automaton.NFA, subset []int32) []string {
	sorted := append([]int32(nil), subset...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	names := make([]string, len(sorted))
	for i, q := range sorted {
		names[i] = n.Name(int(q))
	}
	return names
}

func subsetAccepting(n *automaton.NFA, subset []int32) bool {
	for _, q := range subset {
		if n.IsAccepting(int(q)) {
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
