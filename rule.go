package chartparse

/*
Rule (C2 of the chart-parser design).

A Rule is immutable and static to a parse: a left-hand side Category, an
ordered right-hand side sequence of Categories, and a constraint mask
describing which feature keys should be percolated from a realized daughter
up to the mother (MotherKeys) and rightward to later daughters
(ChildKeys[i]) when the fundamental rule fires (§4.3, §4.6).
*/

import (
	"fmt"
	"strings"
)

// Rule is a single context-free production, optionally decorated with a
// feature-percolation mask.
type Rule struct {
	LHS Category
	RHS []Category

	// MotherKeys lists the feature keys percolated from a realized daughter
	// up to the mother category when this rule's fundamental-rule firing
	// completes a slot.
	MotherKeys []string

	// ChildKeys[i] lists the feature keys percolated from the daughter
	// realizing RHS[i] onward to the categories in RHS[i+1:].
	ChildKeys [][]string
}

// NewRule builds a Rule from an LHS and RHS with no constraint mask.
func NewRule(lhs Category, rhs ...Category) *Rule {
	return &Rule{LHS: lhs, RHS: rhs, ChildKeys: make([][]string, len(rhs))}
}

// WithConstraints attaches a constraint mask to a rule built with NewRule,
// returning the same rule for chaining.
func (r *Rule) WithConstraints(motherKeys []string, childKeys [][]string) *Rule {
	r.MotherKeys = motherKeys
	if childKeys == nil {
		childKeys = make([][]string, len(r.RHS))
	}
	r.ChildKeys = childKeys
	return r
}

// Arity returns the length of the right-hand side.
func (r *Rule) Arity() int {
	return len(r.RHS)
}

func (r *Rule) String() string {
	parts := make([]string, len(r.RHS))
	for i, c := range r.RHS {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s -> %s", r.LHS, strings.Join(parts, " "))
}

// --- Textual rule form -------------------------------------------------
//
// ParseRules accepts the textual form described in the grammar surface
// syntax (spec §6):
//
//	LHS(keys) -> RHS1(keys1) RHS2(keys2) ... | ALT1 | ALT2
//
// Multiple alternatives separated by '|' expand into multiple rules sharing
// the same LHS. Feature blocks inside parentheses hold comma-separated
// items; "key:value" binds a value on the LHS/RHS category. A bare "key" on
// the LHS becomes one of the rule's MotherKeys (percolated up from the
// daughters); a bare "key" on a RHS category becomes one of that position's
// ChildKeys (percolated from that daughter to the later ones). This parser is deliberately small — the
// full grammar-file DSL (the "grammar ... thatsall" / "lexicon ... thatsall"
// regions) lives in package grammar, which is built on top of this.

// ParseRules parses one textual rule line (possibly with '|' alternatives)
// into one or more Rules sharing the parsed LHS.
func ParseRules(line string) ([]*Rule, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("chartparse: empty rule text")
	}
	arrowIdx := strings.Index(line, "->")
	if arrowIdx < 0 {
		return nil, fmt.Errorf("chartparse: rule %q missing '->'", line)
	}
	lhsText := strings.TrimSpace(line[:arrowIdx])
	rhsText := strings.TrimSpace(line[arrowIdx+2:])

	lhsAtom, lhsKeys, err := parseCategoryText(lhsText)
	if err != nil {
		return nil, fmt.Errorf("chartparse: parsing LHS of %q: %w", line, err)
	}
	lhs := applyKeyBindings(NewCategory(lhsAtom), lhsKeys)
	motherKeys := bareKeys(lhsKeys)

	alternatives := splitTopLevel(rhsText, '|')
	rules := make([]*Rule, 0, len(alternatives))
	for _, alt := range alternatives {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return nil, fmt.Errorf("chartparse: empty alternative in rule %q", line)
		}
		terms, err := splitCategoryTerms(alt)
		if err != nil {
			return nil, fmt.Errorf("chartparse: parsing RHS of %q: %w", line, err)
		}
		rhs := make([]Category, len(terms))
		childKeys := make([][]string, len(terms))
		for i, term := range terms {
			atom, keys, err := parseCategoryText(term)
			if err != nil {
				return nil, fmt.Errorf("chartparse: parsing RHS term %q: %w", term, err)
			}
			rhs[i] = applyKeyBindings(NewCategory(atom), keys)
			childKeys[i] = bareKeys(keys)
		}
		rules = append(rules, NewRule(lhs, rhs...).WithConstraints(motherKeys, childKeys))
	}
	return rules, nil
}

type keyItem struct {
	key   string
	value string
	bare  bool
}

// parseCategoryText parses "Atom(key:value,key2,...)" into its atom and key items.
func parseCategoryText(text string) (string, []keyItem, error) {
	text = strings.TrimSpace(text)
	open := strings.Index(text, "(")
	if open < 0 {
		return text, nil, nil
	}
	if !strings.HasSuffix(text, ")") {
		return "", nil, fmt.Errorf("unbalanced parentheses in %q", text)
	}
	atom := strings.TrimSpace(text[:open])
	body := text[open+1 : len(text)-1]
	if strings.TrimSpace(body) == "" {
		return atom, nil, nil
	}
	items := strings.Split(body, ",")
	keys := make([]keyItem, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if colon := strings.Index(item, ":"); colon >= 0 {
			keys = append(keys, keyItem{
				key:   strings.TrimSpace(item[:colon]),
				value: strings.TrimSpace(item[colon+1:]),
			})
		} else {
			keys = append(keys, keyItem{key: item, bare: true})
		}
	}
	return atom, keys, nil
}

func applyKeyBindings(c Category, keys []keyItem) Category {
	for _, k := range keys {
		if !k.bare {
			c = c.Extend(k.key, k.value)
		}
	}
	return c
}

func bareKeys(keys []keyItem) []string {
	var out []string
	for _, k := range keys {
		if k.bare {
			out = append(out, k.key)
		}
	}
	return out
}

// splitTopLevel splits s on sep, ignoring occurrences inside parentheses.
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

// splitCategoryTerms splits a RHS alternative into its category terms,
// respecting parenthesized feature blocks.
func splitCategoryTerms(s string) ([]string, error) {
	var terms []string
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", s)
			}
		case ' ', '\t':
			if depth == 0 && start >= 0 {
				terms = append(terms, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", s)
	}
	if start >= 0 {
		terms = append(terms, s[start:])
	}
	return terms, nil
}
