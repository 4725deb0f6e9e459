package alphabet

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/automata/errs"
)

// Tokenizer segments a raw, undelimited string into this alphabet's
// symbols. The table format never needs this — its rows are already
// whitespace-tokenized — but a library consumer handing the engine a bare
// string (a CLI argument, a playground text box) has no delimiters to
// split on when symbols are multi-character tokens. Tokenizer resolves
// that the same way a literal multi-pattern prefilter resolves "does any
// of these known strings occur here": an Aho-Corasick automaton over the
// alphabet's symbol spellings.
//
// Tokenize is unambiguous only when no symbol spelling is a proper prefix
// of another; ties are broken however the underlying automaton's match
// selection does, which is leftmost-first-built-pattern in practice.
type Tokenizer struct {
	alphabet *Alphabet
	auto     *ahocorasick.Automaton
}

// Tokenizer builds a Tokenizer for this alphabet's non-ε symbols. ε is
// never matched from raw text since it consumes no input.
func (a *Alphabet) Tokenizer() (*Tokenizer, error) {
	builder := ahocorasick.NewBuilder()
	for _, sym := range a.NonEpsSymbols() {
		builder.AddPattern([]byte(sym))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Tokenizer{alphabet: a, auto: auto}, nil
}

// Tokenize greedily segments s into a sequence of this alphabet's symbols,
// scanning left to right. It fails with an *errs.UnknownSymbolError at the
// first byte position that cannot begin any known symbol.
func (t *Tokenizer) Tokenize(s string) ([]string, error) {
	data := []byte(s)
	out := make([]string, 0, len(data))

	pos := 0
	for pos < len(data) {
		m := t.auto.Find(data, pos)
		if m == nil || m.Start != pos {
			return nil, &errs.UnknownSymbolError{Symbol: string(data[pos:]), Position: pos}
		}
		out = append(out, string(data[m.Start:m.End]))
		pos = m.End
	}

	return out, nil
}
