package automaton

import (
	"github.com/coregx/automata/errs"
	"github.com/coregx/automata/table"
)

// BuildDFA resolves a parsed table.Description into a validated DFA:
// state names become dense indices in row order, every transition target
// must name a declared row, and exactly one row must carry the initial
// flag.
func BuildDFA(desc *table.Description) (*DFA, error) {
	byName, names, accepting, err := indexRows(desc.Rows)
	if err != nil {
		return nil, err
	}

	initials := 0
	start := -1
	for i, row := range desc.Rows {
		if row.Initial {
			initials++
			start = i
		}
	}
	if initials != 1 {
		return nil, &errs.InitialError{Count: initials}
	}

	width := desc.Alphabet.Len()
	trans := make([][]int, len(names))
	for i, row := range desc.Rows {
		trans[i] = make([]int, width)
		for j, entry := range row.Transitions {
			if entry.IsSet {
				return nil, &errs.StructuralError{Line: row.Line, Message: "DFA row entry must be a single word, found a {set}"}
			}
			target, ok := byName[entry.Word]
			if !ok {
				return nil, &errs.ReferenceError{FromState: row.Name, Symbol: desc.Alphabet.Symbol(j), Target: entry.Word}
			}
			trans[i][j] = target
		}
	}

	return &DFA{
		alpha:     desc.Alphabet,
		names:     names,
		byName:    byName,
		accepting: accepting,
		start:     start,
		trans:     trans,
	}, nil
}

// BuildNFA resolves a parsed table.Description into a validated NFA or
// ε-NFA: at least one row must carry the initial flag.
func BuildNFA(desc *table.Description) (*NFA, error) {
	byName, names, accepting, err := indexRows(desc.Rows)
	if err != nil {
		return nil, err
	}

	var initial []int
	for i, row := range desc.Rows {
		if row.Initial {
			initial = append(initial, i)
		}
	}
	if len(initial) == 0 {
		return nil, &errs.InitialError{Count: 0}
	}

	width := desc.Alphabet.Len()
	trans := make([][][]int32, len(names))
	for i, row := range desc.Rows {
		trans[i] = make([][]int32, width)
		for j, entry := range row.Transitions {
			if !entry.IsSet {
				return nil, &errs.StructuralError{Line: row.Line, Message: "NFA row entry must be a {set}, found a single word"}
			}
			targets := make([]int32, 0, len(entry.Words))
			for _, w := range entry.Words {
				target, ok := byName[w]
				if !ok {
					return nil, &errs.ReferenceError{FromState: row.Name, Symbol: desc.Alphabet.Symbol(j), Target: w}
				}
				targets = append(targets, int32(target))
			}
			trans[i][j] = targets
		}
	}

	return &NFA{
		alpha:     desc.Alphabet,
		names:     names,
		byName:    byName,
		accepting: accepting,
		initial:   initial,
		trans:     trans,
	}, nil
}

func indexRows(rows []table.Row) (byName map[string]int, names []string, accepting []bool, err error) {
	byName = make(map[string]int, len(rows))
	names = make([]string, len(rows))
	accepting = make([]bool, len(rows))
	for i, row := range rows {
		byName[row.Name] = i
		names[i] = row.Name
		accepting[i] = row.Accepting
	}
	return byName, names, accepting, nil
}
