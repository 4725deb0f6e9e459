package automaton

import (
	"errors"
	"testing"

	"github.com/coregx/automata/alphabet"
	"github.com/coregx/automata/errs"
	"github.com/coregx/automata/table"
)

// buildEvenOnesDFA builds a 2-state DFA over {0,1} accepting strings with an
// even number of 1s.
func buildEvenOnesDFA(t *testing.T) *DFA {
	t.Helper()
	a, err := alphabet.New([]string{"0", "1"})
	if err != nil {
		t.Fatal(err)
	}
	b := NewDFABuilder(a)
	even := b.AddState("even", true)
	odd := b.AddState("odd", false)
	b.SetStart(even)
	must(t, b.AddTransition(even, "0", even))
	must(t, b.AddTransition(even, "1", odd))
	must(t, b.AddTransition(odd, "0", odd))
	must(t, b.AddTransition(odd, "1", even))
	d, err := b.Build(false)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestDFAAccepts(t *testing.T) {
	d := buildEvenOnesDFA(t)
	cases := []struct {
		word []string
		want bool
	}{
		{nil, true},
		{[]string{"1"}, false},
		{[]string{"1", "1"}, true},
		{[]string{"0", "1", "0", "1", "0"}, true},
		{[]string{"0", "1", "1", "1"}, false},
	}
	for _, c := range cases {
		got, err := d.Accepts(c.word)
		if err != nil {
			t.Fatalf("Accepts(%v) error = %v", c.word, err)
		}
		if got != c.want {
			t.Errorf("Accepts(%v) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestDFAAcceptsUnknownSymbol(t *testing.T) {
	d := buildEvenOnesDFA(t)
	_, err := d.Accepts([]string{"2"})
	var unk *errs.UnknownSymbolError
	if !errors.As(err, &unk) {
		t.Fatalf("Accepts with unknown symbol error = %v, want *errs.UnknownSymbolError", err)
	}
}

func TestDFACursor(t *testing.T) {
	d := buildEvenOnesDFA(t)
	c := d.NewCursor()
	if !c.Accepting() {
		t.Fatal("fresh cursor not accepting, want even-parity start")
	}
	if _, err := c.Step("1"); err != nil {
		t.Fatal(err)
	}
	if c.Accepting() {
		t.Fatal("cursor after one '1' is accepting, want not")
	}
	if _, err := c.Step("1"); err != nil {
		t.Fatal(err)
	}
	if !c.Accepting() {
		t.Fatal("cursor after two '1's is not accepting, want accepting")
	}
}

func TestDFAComplete(t *testing.T) {
	a, err := alphabet.New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	b := NewDFABuilder(a)
	q0 := b.AddState("q0", true)
	b.SetStart(q0)
	must(t, b.AddTransition(q0, "a", q0))
	// "b" transition intentionally left unset.
	d, err := b.Build(false)
	if err != nil {
		t.Fatal(err)
	}
	if d.States() != 1 {
		t.Fatalf("States() = %d before Complete, want 1", d.States())
	}
	d.Complete()
	if d.States() != 2 {
		t.Fatalf("States() = %d after Complete, want 2 (trap added)", d.States())
	}
	ok, err := d.Accepts([]string{"b"})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("trap state reported accepting")
	}

	// Completing an already-total DFA is a no-op.
	before := d.States()
	d.Complete()
	if d.States() != before {
		t.Fatalf("Complete on total DFA changed state count: %d -> %d", before, d.States())
	}
}

func TestDFATableRoundTrip(t *testing.T) {
	d := buildEvenOnesDFA(t)
	text := d.Table(table.DefaultFormatOptions())

	desc, err := table.ParseDFA(text)
	if err != nil {
		t.Fatalf("re-parsing serialized DFA failed: %v\ntext:\n%s", err, text)
	}
	d2, err := BuildDFA(desc)
	if err != nil {
		t.Fatal(err)
	}
	if d2.States() != d.States() {
		t.Fatalf("round-tripped DFA has %d states, want %d", d2.States(), d.States())
	}
	ok, err := d2.Accepts([]string{"1", "1", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("round-tripped DFA rejected a word it should accept")
	}
}

func TestBuildDFARequiresOneInitial(t *testing.T) {
	text := "a\nq0 q0\nq1 q1\n"
	desc, err := table.ParseDFA(text)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := BuildDFA(desc); !errors.Is(err, errs.ErrInitial) {
		t.Fatalf("BuildDFA with no initial row error = %v, want ErrInitial", err)
	}
}

func TestBuildDFADanglingReference(t *testing.T) {
	text := "a\n→ q0 q9\n"
	desc, err := table.ParseDFA(text)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := BuildDFA(desc); !errors.Is(err, errs.ErrReference) {
		t.Fatalf("BuildDFA with dangling reference error = %v, want ErrReference", err)
	}
}
