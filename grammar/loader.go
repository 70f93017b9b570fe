package grammar

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cbrew/chartparse"
)

const (
	regionNone = iota
	regionGrammar
	regionLexicon
)

// Loader is a GrammarSource over the textual DSL of §6: a "grammar ...
// thatsall" region of rule lines, followed by a "lexicon ... thatsall"
// region of word/category lines.
type Loader struct {
	text string
}

// NewLoader wraps already-read DSL source text.
func NewLoader(text string) *Loader {
	return &Loader{text: text}
}

// NewLoaderFromReader reads all of r as DSL source text.
func NewLoaderFromReader(r io.Reader) (*Loader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewLoader(string(b)), nil
}

// LoadFile reads a grammar file from disk.
func LoadFile(path string) (*Loader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewLoaderFromReader(f)
}

// Rules tokenizes and parses the loader's source text, satisfying
// chart.GrammarSource's Rules() ([]*chartparse.Rule, error) method.
func (l *Loader) Rules() ([]*chartparse.Rule, error) {
	toks, err := tokenize(l.text)
	if err != nil {
		return nil, fmt.Errorf("grammar: tokenizing: %w", err)
	}
	var rules []*chartparse.Rule
	region := regionNone
	for _, tk := range toks {
		if tk.kind == tokKeyword {
			switch tk.text {
			case "grammar":
				region = regionGrammar
			case "lexicon":
				region = regionLexicon
			case "thatsall":
				region = regionNone
			default:
				return nil, fmt.Errorf("grammar: unrecognized keyword %q", tk.text)
			}
			continue
		}
		var rs []*chartparse.Rule
		switch region {
		case regionGrammar:
			rs, err = chartparse.ParseRules(tk.text)
		case regionLexicon:
			rs, err = parseLexiconLine(tk.text)
		default:
			err = fmt.Errorf("content line %q outside any grammar/lexicon region", tk.text)
		}
		if err != nil {
			return nil, fmt.Errorf("grammar: %w", err)
		}
		rules = append(rules, rs...)
	}
	return rules, nil
}

// parseLexiconLine handles "word CATEGORY(keys) | CATEGORY(keys)": each
// alternative category becomes its own rule CATEGORY(keys) -> word, reusing
// ParseRules's own category-text grammar rather than duplicating it.
func parseLexiconLine(line string) ([]*chartparse.Rule, error) {
	trimmed := strings.TrimSpace(line)
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return nil, fmt.Errorf("lexicon line %q missing a category", line)
	}
	word := trimmed[:idx]
	rest := strings.TrimSpace(trimmed[idx+1:])
	if rest == "" {
		return nil, fmt.Errorf("lexicon line %q missing a category", line)
	}

	var rules []*chartparse.Rule
	for _, alt := range splitTopLevel(rest, '|') {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		rs, err := chartparse.ParseRules(fmt.Sprintf("%s -> %s", alt, word))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rs...)
	}
	return rules, nil
}

// splitTopLevel splits s on sep, ignoring occurrences inside parentheses.
// Mirrors the private helper of the same name in rule.go, whose algorithm
// this package cannot reach from outside the chartparse package.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
