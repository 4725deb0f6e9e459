// Package table implements the lexer, parser, and serializer for the
// canonical text-table format — the system's one stable external format.
// The lexer and parser here never resolve state names to indices or check
// referential integrity; that is the Builder's job (package automaton).
package table

import (
	"strings"
	"unicode"

	"github.com/coregx/automata/errs"
)

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokWord TokenKind = iota
	TokArrow
	TokStar
	TokLBrace
	TokRBrace
)

// Token is one lexical unit within a line.
type Token struct {
	Kind TokenKind
	Text string
}

// Line is one non-blank, comment-stripped source line and its tokens.
// Number is the 1-based line number in the original text, kept for error
// messages.
type Line struct {
	Number int
	Tokens []Token
}

// Lex splits text into non-blank lines of tokens, stripping comments and
// discarding blank lines. Arrows ("→" or "->"), "*", "{", and "}"
// are recognized as their own token kinds; everything else is a TokWord.
func Lex(text string) ([]Line, error) {
	var lines []Line

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1

		content := stripComment(raw)
		if strings.TrimSpace(content) == "" {
			continue
		}

		toks, err := lexLine(content, lineNo)
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Number: lineNo, Tokens: toks})
	}

	return lines, nil
}

// stripComment discards everything from the first '#' onward; there is no
// escape for a literal '#'.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

func lexLine(line string, lineNo int) ([]Token, error) {
	runes := []rune(line)
	n := len(runes)

	var toks []Token
	depth := 0

	i := 0
	for i < n {
		c := runes[i]
		if unicode.IsSpace(c) {
			i++
			continue
		}

		switch c {
		case '{':
			toks = append(toks, Token{Kind: TokLBrace, Text: "{"})
			depth++
			i++
		case '}':
			if depth == 0 {
				return nil, &errs.LexError{Line: lineNo, Message: "unmatched '}'"}
			}
			depth--
			toks = append(toks, Token{Kind: TokRBrace, Text: "}"})
			i++
		default:
			start := i
			for i < n && !unicode.IsSpace(runes[i]) && runes[i] != '{' && runes[i] != '}' {
				i++
			}
			word := string(runes[start:i])
			toks = append(toks, Token{Kind: classify(word), Text: word})
		}
	}

	if depth != 0 {
		return nil, &errs.LexError{Line: lineNo, Message: "unterminated set: missing '}'"}
	}

	return toks, nil
}

func classify(word string) TokenKind {
	switch word {
	case "→", "->":
		return TokArrow
	case "*":
		return TokStar
	default:
		return TokWord
	}
}
