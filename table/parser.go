package table

import (
	"fmt"

	"github.com/coregx/automata/alphabet"
	"github.com/coregx/automata/errs"
)

// Entry is one transition-table cell. For a DFA row it carries exactly one
// target name (IsSet == false); for an NFA row it carries a (possibly
// empty) set of target names (IsSet == true).
type Entry struct {
	IsSet bool
	Word  string
	Words []string
}

// Row is one parsed state row, before name resolution — no cross-row
// referential checks have happened yet.
type Row struct {
	Line        int
	Name        string
	Initial     bool
	Accepting   bool
	Transitions []Entry // one per alphabet symbol, in header order
}

// Description is the parser's output: a faithful transcription of the
// table text with no referential-integrity checks performed yet. The
// Builder (package automaton) consumes this to produce a validated
// DFA or NFA.
type Description struct {
	Alphabet *alphabet.Alphabet
	Rows     []Row
}

// ParseDFA parses text as a DFA table: every transition entry is a single
// word.
func ParseDFA(text string) (*Description, error) {
	return parse(text, false)
}

// ParseNFA parses text as an NFA (or ε-NFA) table: every transition entry
// is a brace-enclosed set of words.
func ParseNFA(text string) (*Description, error) {
	return parse(text, true)
}

func parse(text string, isSet bool) (*Description, error) {
	lines, err := Lex(text)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &errs.StructuralError{Message: "empty table: no header line"}
	}

	header, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	alpha, err := alphabet.New(header)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	desc := &Description{Alphabet: alpha}

	for _, line := range lines[1:] {
		row, err := parseRow(line, alpha.Len(), isSet)
		if err != nil {
			return nil, err
		}
		if seen[row.Name] {
			return nil, &errs.StructuralError{Line: line.Number, Message: fmt.Sprintf("duplicate row for state %q", row.Name)}
		}
		seen[row.Name] = true
		desc.Rows = append(desc.Rows, row)
	}

	return desc, nil
}

// parseHeader reads the alphabet symbols from the first table line: a
// plain list of symbols, no leading arrow or star, no braces.
func parseHeader(line Line) ([]string, error) {
	symbols := make([]string, 0, len(line.Tokens))
	for _, tok := range line.Tokens {
		if tok.Kind != TokWord {
			return nil, &errs.StructuralError{Line: line.Number, Message: fmt.Sprintf("header must be plain symbols, found %q", tok.Text)}
		}
		symbols = append(symbols, tok.Text)
	}
	return symbols, nil
}

// parseRow reads one state row: optional → and * flags in any order, then
// exactly one name, then exactly one entry per alphabet symbol.
func parseRow(line Line, width int, isSet bool) (Row, error) {
	toks := line.Tokens
	row := Row{Line: line.Number}

	pos := 0
	for pos < len(toks) && (toks[pos].Kind == TokArrow || toks[pos].Kind == TokStar) {
		if toks[pos].Kind == TokArrow {
			row.Initial = true
		} else {
			row.Accepting = true
		}
		pos++
	}

	if pos >= len(toks) || toks[pos].Kind != TokWord {
		return Row{}, &errs.StructuralError{Line: line.Number, Message: "row is missing a state name"}
	}
	row.Name = toks[pos].Text
	pos++

	for i := 0; i < width; i++ {
		entry, next, err := parseEntry(toks, pos, line.Number, isSet)
		if err != nil {
			return Row{}, err
		}
		row.Transitions = append(row.Transitions, entry)
		pos = next
	}

	if pos != len(toks) {
		return Row{}, &errs.StructuralError{
			Line:    line.Number,
			Message: fmt.Sprintf("state %q has too many transition entries: expected %d", row.Name, width),
		}
	}

	return row, nil
}

func parseEntry(toks []Token, pos, lineNo int, isSet bool) (Entry, int, error) {
	if pos >= len(toks) {
		return Entry{}, pos, &errs.StructuralError{Line: lineNo, Message: "row has too few transition entries"}
	}

	if !isSet {
		if toks[pos].Kind != TokWord {
			return Entry{}, pos, &errs.StructuralError{Line: lineNo, Message: fmt.Sprintf("DFA entry must be a single word, found %q", toks[pos].Text)}
		}
		return Entry{Word: toks[pos].Text}, pos + 1, nil
	}

	if toks[pos].Kind != TokLBrace {
		return Entry{}, pos, &errs.StructuralError{Line: lineNo, Message: fmt.Sprintf("NFA entry must be a {set}, found %q", toks[pos].Text)}
	}
	pos++

	var words []string
	for pos < len(toks) && toks[pos].Kind == TokWord {
		words = append(words, toks[pos].Text)
		pos++
	}

	if pos >= len(toks) || toks[pos].Kind != TokRBrace {
		return Entry{}, pos, &errs.StructuralError{Line: lineNo, Message: "malformed set: expected '}'"}
	}
	pos++

	return Entry{IsSet: true, Words: words}, pos, nil
}
