package regexfa

import (
	"errors"
	"testing"

	"github.com/coregx/automata/errs"
)

// rejectsForeignSymbol reports whether Compile(pattern) fails acceptance of
// the one-symbol word sym with ErrUnknownSymbol: the compiled alphabet holds
// only the pattern's own literals, so a symbol outside it is an error rather
// than a plain rejection.
func rejectsForeignSymbol(t *testing.T, pattern, sym string) bool {
	t.Helper()
	n, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	_, err = n.Accepts([]string{sym})
	return errors.Is(err, errs.ErrUnknownSymbol)
}

func acceptsString(t *testing.T, pattern, input string) bool {
	t.Helper()
	n, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	word := make([]string, len(input))
	for i, r := range input {
		word[i] = string(r)
	}
	ok, err := n.Accepts(word)
	if err != nil {
		t.Fatalf("Accepts(%q) on Compile(%q): %v", input, pattern, err)
	}
	return ok
}

func TestCompileLiteralConcat(t *testing.T) {
	if !acceptsString(t, "ab", "ab") {
		t.Error("Compile(ab) should accept \"ab\"")
	}
	if acceptsString(t, "ab", "ba") {
		t.Error("Compile(ab) should reject \"ba\"")
	}
}

func TestCompileAlt(t *testing.T) {
	for _, in := range []string{"a", "b"} {
		if !acceptsString(t, "a|b", in) {
			t.Errorf("Compile(a|b) should accept %q", in)
		}
	}
	if !rejectsForeignSymbol(t, "a|b", "c") {
		t.Error("Compile(a|b) should reject \"c\" with ErrUnknownSymbol")
	}
}

func TestCompileStar(t *testing.T) {
	for _, in := range []string{"", "a", "aaaa"} {
		if !acceptsString(t, "a*", in) {
			t.Errorf("Compile(a*) should accept %q", in)
		}
	}
	if !rejectsForeignSymbol(t, "a*", "b") {
		t.Error("Compile(a*) should reject \"b\" with ErrUnknownSymbol")
	}
}

func TestCompilePlus(t *testing.T) {
	if acceptsString(t, "a+", "") {
		t.Error("Compile(a+) should reject empty string")
	}
	for _, in := range []string{"a", "aaa"} {
		if !acceptsString(t, "a+", in) {
			t.Errorf("Compile(a+) should accept %q", in)
		}
	}
}

func TestCompileOptional(t *testing.T) {
	if !acceptsString(t, "a?", "") {
		t.Error("Compile(a?) should accept empty string")
	}
	if !acceptsString(t, "a?", "a") {
		t.Error("Compile(a?) should accept \"a\"")
	}
	if acceptsString(t, "a?", "aa") {
		t.Error("Compile(a?) should reject \"aa\"")
	}
}

func TestCompileCombination(t *testing.T) {
	// (a|b)*c : zero or more a/b followed by a single c.
	pattern := "(a|b)*c"
	for _, in := range []string{"c", "ac", "bc", "abababc"} {
		if !acceptsString(t, pattern, in) {
			t.Errorf("Compile(%q) should accept %q", pattern, in)
		}
	}
	for _, in := range []string{"", "a", "ab", "cc"} {
		if acceptsString(t, pattern, in) {
			t.Errorf("Compile(%q) should reject %q", pattern, in)
		}
	}
}

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustCompile on invalid pattern did not panic")
		}
	}()
	MustCompile("(a")
}

func TestCompileAlphabetIsEpsPlusLiterals(t *testing.T) {
	n, err := Compile("ba")
	if err != nil {
		t.Fatal(err)
	}
	a := n.Alphabet()
	if !a.HasEps() {
		t.Fatal("compiled NFA alphabet has no ε slot")
	}
	if got := a.NonEpsSymbols(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("NonEpsSymbols() = %v, want [b a] in first-appearance order", got)
	}
}
