package regexfa

import (
	"fmt"

	"github.com/coregx/automata/alphabet"
	"github.com/coregx/automata/automaton"
)

// Compile parses pattern and Thompson-compiles it into an ε-NFA. The
// resulting alphabet is ε plus exactly the literal symbols encountered in
// the pattern, in order of first appearance.
func Compile(pattern string) (*automaton.NFA, error) {
	ast, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return CompileAST(ast)
}

// MustCompile is Compile but panics on error, for package-level pattern
// constants.
func MustCompile(pattern string) *automaton.NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic("regexfa: Compile(" + pattern + "): " + err.Error())
	}
	return n
}

// CompileAST Thompson-compiles an already-parsed AST.
func CompileAST(ast *Node) (*automaton.NFA, error) {
	literals := collectLiterals(ast)
	alpha, err := alphabet.New(append([]string{alphabet.Eps}, literals...))
	if err != nil {
		return nil, err
	}

	b := automaton.NewNFABuilder(alpha)
	nextID := 0
	freshState := func() int {
		name := fmt.Sprintf("q%d", nextID)
		nextID++
		return b.AddState(name, false)
	}

	entry, exit, err := compile(ast, b, freshState)
	if err != nil {
		return nil, err
	}

	b.AddInitial(entry)
	markAccepting(b, exit)

	return b.Build()
}

// frag is a Thompson fragment: exactly one entry state and one exit state.
type frag struct {
	entry, exit int
}

// collectLiterals walks the AST with an explicit stack (no native
// recursion, so depth is never bounded by Go's call stack) and returns
// the distinct literal symbols in order of first appearance.
func collectLiterals(root *Node) []string {
	seen := make(map[string]bool)
	var out []string

	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		switch n.Kind {
		case KindLiteral:
			if !seen[n.Symbol] {
				seen[n.Symbol] = true
				out = append(out, n.Symbol)
			}
		default:
			// Push right before left so left is visited first — but
			// since we only care about the *set* of literals here (not
			// output order beyond first appearance), a simple DFS order
			// that processes left's subtree before right's is enough;
			// pushing right then left achieves that with a LIFO stack.
			if n.Right != nil {
				stack = append(stack, n.Right)
			}
			if n.Left != nil {
				stack = append(stack, n.Left)
			}
		}
	}

	return out
}

// compile Thompson-compiles root into a fragment, using an explicit
// value stack over an iterative postorder traversal instead of
// native recursion.
func compile(root *Node, b *automaton.NFABuilder, freshState func() int) (entry, exit int, err error) {
	order := postorder(root)

	var stack []frag
	pop := func() frag {
		n := len(stack)
		f := stack[n-1]
		stack = stack[:n-1]
		return f
	}

	for _, n := range order {
		switch n.Kind {
		case KindEmpty:
			s := freshState()
			stack = append(stack, frag{entry: s, exit: s})

		case KindLiteral:
			en := freshState()
			ex := freshState()
			if err := b.AddTransition(en, n.Symbol, ex); err != nil {
				return 0, 0, err
			}
			stack = append(stack, frag{entry: en, exit: ex})

		case KindConcat:
			y := pop()
			x := pop()
			if err := b.AddEpsilon(x.exit, y.entry); err != nil {
				return 0, 0, err
			}
			stack = append(stack, frag{entry: x.entry, exit: y.exit})

		case KindAlt:
			y := pop()
			x := pop()
			en := freshState()
			ex := freshState()
			if err := b.AddEpsilon(en, x.entry); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(en, y.entry); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(x.exit, ex); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(y.exit, ex); err != nil {
				return 0, 0, err
			}
			stack = append(stack, frag{entry: en, exit: ex})

		case KindStar:
			x := pop()
			en := freshState()
			ex := freshState()
			if err := b.AddEpsilon(en, x.entry); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(en, ex); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(x.exit, x.entry); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(x.exit, ex); err != nil {
				return 0, 0, err
			}
			stack = append(stack, frag{entry: en, exit: ex})

		case KindPlus:
			// One-or-more is built by looping x's own exit back to its
			// own entry and out to a new exit state, rather than
			// compiling a second copy of x and concatenating: one
			// compiled copy of x, not two, accepting exactly the same
			// language (one-or-more repetitions of L(x)).
			x := pop()
			ex := freshState()
			if err := b.AddEpsilon(x.exit, x.entry); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(x.exit, ex); err != nil {
				return 0, 0, err
			}
			stack = append(stack, frag{entry: x.entry, exit: ex})

		case KindOptional:
			x := pop()
			en := freshState()
			ex := freshState()
			if err := b.AddEpsilon(en, x.entry); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(en, ex); err != nil {
				return 0, 0, err
			}
			if err := b.AddEpsilon(x.exit, ex); err != nil {
				return 0, 0, err
			}
			stack = append(stack, frag{entry: en, exit: ex})
		}
	}

	final := pop()
	return final.entry, final.exit, nil
}

// postorder flattens the AST into postorder (children before parent)
// using an explicit stack, so compile() above never recurses natively
// regardless of pattern depth.
func postorder(root *Node) []*Node {
	type entry struct {
		node    *Node
		visited bool
	}

	var out []*Node
	stack := []entry{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.visited {
			out = append(out, top.node)
			continue
		}

		stack = append(stack, entry{node: top.node, visited: true})
		switch top.node.Kind {
		case KindConcat, KindAlt:
			stack = append(stack, entry{node: top.node.Right}, entry{node: top.node.Left})
		case KindStar, KindPlus, KindOptional:
			stack = append(stack, entry{node: top.node.Left})
		}
	}

	return out
}

func markAccepting(b *automaton.NFABuilder, state int) {
	b.MarkAccepting(state)
}
