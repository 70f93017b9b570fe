package grammar

/*
Tokenizer over the grammar-file surface syntax, built directly on
github.com/timtadh/lexmachine (the same lexer-generator the teacher wraps in
lr/scanner/lexmach, used here without that wrapper since this module does not
depend on gorgo's own Token/Span types). Two token kinds are enough for this
DSL: a keyword line (one of "grammar", "lexicon", "thatsall" standing alone on
its own line) and a content line (everything else, handed whole to the
line-level parsers in loader.go). Comments start with ';' and run to end of
line, mirroring terexlang/scan.go's own comment rule.
*/

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

const (
	tokKeyword = iota
	tokLine
)

type token struct {
	kind int
	text string
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func newLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`;[^\n]*\n?`), skip)
	// keyword lines are added before the generic content-line rule so that,
	// on the tied-length match every keyword line also satisfies, lexmachine's
	// first-rule-wins tiebreak picks the keyword.
	lex.Add([]byte(`(grammar|lexicon|thatsall)[ \t]*\r?\n`), makeToken(tokKeyword))
	lex.Add([]byte(`(grammar|lexicon|thatsall)[ \t]*`), makeToken(tokKeyword))
	lex.Add([]byte(`[^\n;][^\n;]*\n`), makeToken(tokLine))
	lex.Add([]byte(`[^\n;][^\n;]*`), makeToken(tokLine))
	lex.Add([]byte(`[ \t\r\n]+`), skip)
	if err := lex.Compile(); err != nil {
		return nil, err
	}
	return lex, nil
}

// tokenize splits src into keyword and content-line tokens, blank lines
// dropped.
func tokenize(src string) ([]token, error) {
	lex, err := newLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lex.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var toks []token
	for {
		tk, err, eof := scanner.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				tracer().Errorf("grammar: unconsumed input at byte %d", ui.FailTC)
				scanner.TC = ui.FailTC
				continue
			}
			return nil, err
		}
		if eof {
			break
		}
		t := tk.(*lexmachine.Token)
		text := strings.TrimSpace(strings.TrimRight(string(t.Lexeme), "\r\n"))
		if text == "" {
			continue
		}
		toks = append(toks, token{kind: t.Type, text: text})
	}
	return toks, nil
}
