// Package minimize implements the DFA reducer: unreachable-state removal
// followed by Hopcroft-style indistinguishable-state merging. Minimize is
// the composition of both passes.
package minimize

import (
	"fmt"
	"strings"

	"github.com/coregx/automata/automaton"
)

// RemoveUnreachable deletes every state not reachable from q0 via a
// BFS over δ, then compacts indices to BFS visitation order.
func RemoveUnreachable(d *automaton.DFA) *automaton.DFA {
	width := d.Alphabet().Len()

	visited := make([]bool, d.States())
	var order []int
	queue := []int{d.Start()}
	visited[d.Start()] = true

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		order = append(order, s)
		for a := 0; a < width; a++ {
			t := d.Next(s, a)
			if !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
	}

	b := automaton.NewDFABuilder(d.Alphabet())
	newIdx := make(map[int]int, len(order))
	for _, s := range order {
		newIdx[s] = b.AddState(d.Name(s), d.IsAccepting(s))
	}
	for _, s := range order {
		for a := 0; a < width; a++ {
			_ = b.AddTransition(newIdx[s], d.Alphabet().Symbol(a), newIdx[d.Next(s, a)])
		}
	}
	b.SetStart(newIdx[d.Start()])

	out, _ := b.Build(false)
	return out
}

// MergeIndistinguishable runs partition refinement on d — assumed already
// unreachable-state-free — and returns one merged state per final block.
// The initial partition is {F, Q∖F} (empty blocks dropped); a block is
// repeatedly split on each symbol until every member of every block
// transitions, on every symbol, into the same other block. Merged states
// are named by joining member names (first-appearance order) as
// "[n1,n2,...]".
func MergeIndistinguishable(d *automaton.DFA) *automaton.DFA {
	width := d.Alphabet().Len()
	n := d.States()

	var accepting, nonAccepting []int
	for i := 0; i < n; i++ {
		if d.IsAccepting(i) {
			accepting = append(accepting, i)
		} else {
			nonAccepting = append(nonAccepting, i)
		}
	}

	var blocks [][]int
	if len(accepting) > 0 {
		blocks = append(blocks, accepting)
	}
	if len(nonAccepting) > 0 {
		blocks = append(blocks, nonAccepting)
	}

	blockOf := make([]int, n)
	assignBlocks := func() {
		for bi, blk := range blocks {
			for _, s := range blk {
				blockOf[s] = bi
			}
		}
	}
	assignBlocks()

	for {
		changed := false
		var refined [][]int

		for _, blk := range blocks {
			groups := make(map[string][]int)
			var groupOrder []string

			for _, s := range blk {
				var sig strings.Builder
				for a := 0; a < width; a++ {
					fmt.Fprintf(&sig, "%d,", blockOf[d.Next(s, a)])
				}
				key := sig.String()
				if _, ok := groups[key]; !ok {
					groupOrder = append(groupOrder, key)
				}
				groups[key] = append(groups[key], s)
			}

			if len(groups) > 1 {
				changed = true
			}
			for _, key := range groupOrder {
				refined = append(refined, groups[key])
			}
		}

		blocks = refined
		assignBlocks()
		if !changed {
			break
		}
	}

	b := automaton.NewDFABuilder(d.Alphabet())
	blockState := make([]int, len(blocks))
	for bi, blk := range blocks {
		names := make([]string, len(blk))
		for i, s := range blk {
			names[i] = d.Name(s)
		}
		name := "[" + strings.Join(names, ",") + "]"
		blockState[bi] = b.AddState(name, d.IsAccepting(blk[0]))
	}
	for bi, blk := range blocks {
		rep := blk[0]
		for a := 0; a < width; a++ {
			target := blockOf[d.Next(rep, a)]
			_ = b.AddTransition(blockState[bi], d.Alphabet().Symbol(a), blockState[target])
		}
	}
	b.SetStart(blockState[blockOf[d.Start()]])

	out, _ := b.Build(false)
	return out
}

// Minimize runs the full reducer: unreachable-state removal followed by
// indistinguishable-state merging. It returns the reduced automaton;
// state indices and names may be renumbered or renamed relative to d.
func Minimize(d *automaton.DFA) *automaton.DFA {
	return MergeIndistinguishable(RemoveUnreachable(d))
}
