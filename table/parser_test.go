package table

import (
	"errors"
	"testing"

	"github.com/coregx/automata/errs"
)

func TestParseDFA(t *testing.T) {
	text := "  a b\n→ * q0 q1 q0\n  q1 q0 q1\n"
	desc, err := ParseDFA(text)
	if err != nil {
		t.Fatal(err)
	}
	if desc.Alphabet.Len() != 2 {
		t.Fatalf("alphabet length = %d, want 2", desc.Alphabet.Len())
	}
	if len(desc.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(desc.Rows))
	}
	r0 := desc.Rows[0]
	if r0.Name != "q0" || !r0.Initial || !r0.Accepting {
		t.Fatalf("row 0 = %+v, want name q0, initial+accepting", r0)
	}
	if r0.Transitions[0].Word != "q1" || r0.Transitions[0].IsSet {
		t.Fatalf("row 0 transition 0 = %+v, want plain word q1", r0.Transitions[0])
	}
}

func TestParseDFAMissingHeader(t *testing.T) {
	if _, err := ParseDFA(""); !errors.Is(err, errs.ErrStructural) {
		t.Fatalf("ParseDFA(\"\") error = %v, want ErrStructural", err)
	}
}

func TestParseDFADuplicateRow(t *testing.T) {
	text := "a\nq0 q0\nq0 q0\n"
	if _, err := ParseDFA(text); !errors.Is(err, errs.ErrStructural) {
		t.Fatalf("duplicate row error = %v, want ErrStructural", err)
	}
}

func TestParseDFAWrongArity(t *testing.T) {
	text := "a b\nq0 q0\n"
	if _, err := ParseDFA(text); !errors.Is(err, errs.ErrStructural) {
		t.Fatalf("short row error = %v, want ErrStructural", err)
	}
}

func TestParseNFA(t *testing.T) {
	text := "a b\n→ q0 {q0 q1} {}\n  q1 {} {q1}\n"
	desc, err := ParseNFA(text)
	if err != nil {
		t.Fatal(err)
	}
	r0 := desc.Rows[0]
	if !r0.Transitions[0].IsSet {
		t.Fatal("NFA entry not marked as set")
	}
	if len(r0.Transitions[0].Words) != 2 {
		t.Fatalf("set entry = %v, want 2 members", r0.Transitions[0].Words)
	}
	if len(r0.Transitions[1].Words) != 0 {
		t.Fatalf("empty set entry = %v, want 0 members", r0.Transitions[1].Words)
	}
}

func TestParseNFARejectsPlainWord(t *testing.T) {
	text := "a\nq0 q1\n"
	if _, err := ParseNFA(text); !errors.Is(err, errs.ErrStructural) {
		t.Fatalf("plain word in NFA table error = %v, want ErrStructural", err)
	}
}

func TestParseHeaderRejectsFlags(t *testing.T) {
	text := "→ a\nq0 q0\n"
	if _, err := ParseDFA(text); !errors.Is(err, errs.ErrStructural) {
		t.Fatalf("flagged header error = %v, want ErrStructural", err)
	}
}
