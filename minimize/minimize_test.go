package minimize

import (
	"testing"

	"github.com/coregx/automata/alphabet"
	"github.com/coregx/automata/automaton"
	"github.com/coregx/automata/subset"
)

// buildWithUnreachable builds a 2-state DFA over {a}, accepting everything,
// where state "dead" is never reachable from q0.
func buildWithUnreachable(t *testing.T) *automaton.DFA {
	t.Helper()
	alpha, err := alphabet.New([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	b := automaton.NewDFABuilder(alpha)
	q0 := b.AddState("q0", true)
	dead := b.AddState("dead", false)
	b.SetStart(q0)
	if err := b.AddTransition(q0, "a", q0); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTransition(dead, "a", dead); err != nil {
		t.Fatal(err)
	}
	d, err := b.Build(false)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRemoveUnreachable(t *testing.T) {
	d := buildWithUnreachable(t)
	if d.States() != 2 {
		t.Fatalf("fixture has %d states, want 2", d.States())
	}
	out := RemoveUnreachable(d)
	if out.States() != 1 {
		t.Fatalf("RemoveUnreachable left %d states, want 1", out.States())
	}
	ok, err := out.Accepts([]string{"a", "a", "a"})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("RemoveUnreachable changed acceptance")
	}
}

// buildRedundant builds a 3-state DFA over {a} where q1 and q2 are
// behaviorally identical (both accepting, each moving to the other on a) and should
// merge into one state under MergeIndistinguishable.
func buildRedundant(t *testing.T) *automaton.DFA {
	t.Helper()
	alpha, err := alphabet.New([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	b := automaton.NewDFABuilder(alpha)
	q0 := b.AddState("q0", false)
	q1 := b.AddState("q1", true)
	q2 := b.AddState("q2", true)
	b.SetStart(q0)
	if err := b.AddTransition(q0, "a", q1); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTransition(q1, "a", q2); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTransition(q2, "a", q1); err != nil {
		t.Fatal(err)
	}
	d, err := b.Build(false)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestMergeIndistinguishable(t *testing.T) {
	d := buildRedundant(t)
	out := MergeIndistinguishable(d)
	if out.States() != 2 {
		t.Fatalf("MergeIndistinguishable left %d states, want 2 (q1/q2 merged)", out.States())
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	d := buildRedundant(t)
	min := Minimize(d)

	words := [][]string{nil, {"a"}, {"a", "a"}, {"a", "a", "a"}, {"a", "a", "a", "a"}}
	for _, w := range words {
		want, err := d.Accepts(w)
		if err != nil {
			t.Fatal(err)
		}
		got, err := min.Accepts(w)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Minimize changed acceptance on %v: want %v got %v", w, want, got)
		}
	}
}

// brzozowski runs reverse -> determinize -> reverse -> determinize, an
// alternative minimization algorithm, as a cross-check against Minimize's
// Hopcroft-style partition refinement.
func brzozowski(t *testing.T, d *automaton.DFA) *automaton.DFA {
	t.Helper()
	step := func(x *automaton.DFA) *automaton.DFA {
		rev := automaton.DFAToNFA(x).Reverse()
		out, err := subset.Build(rev)
		if err != nil {
			t.Fatal(err)
		}
		return out
	}
	return step(step(d))
}

func TestMinimizeAgreesWithBrzozowski(t *testing.T) {
	d := buildRedundant(t)
	viaHopcroft := Minimize(d)
	viaBrzozowski := brzozowski(t, d)

	if viaHopcroft.States() != viaBrzozowski.States() {
		t.Fatalf("Hopcroft minimization has %d states, Brzozowski has %d, want equal",
			viaHopcroft.States(), viaBrzozowski.States())
	}

	words := [][]string{nil, {"a"}, {"a", "a"}, {"a", "a", "a"}, {"a", "a", "a", "a"}}
	for _, w := range words {
		want, err := viaHopcroft.Accepts(w)
		if err != nil {
			t.Fatal(err)
		}
		got, err := viaBrzozowski.Accepts(w)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Brzozowski result disagrees with Hopcroft result on %v: want %v got %v", w, want, got)
		}
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	d := buildRedundant(t)
	once := Minimize(d)
	twice := Minimize(once)
	if twice.States() != once.States() {
		t.Fatalf("Minimize is not idempotent: %d states then %d", once.States(), twice.States())
	}
}
