package grammar

import "github.com/cbrew/chartparse"

// builtinText is the small English fragment implied by scenarios S1-S4:
// subject-verb and transitive sentences, noun coordination, and one passive
// construction, expressed in the DSL surface syntax.
const builtinText = `
grammar
S -> Np Vp | Np cop ppart passmarker Np
Np -> det Nn | Np conj Np
Nn -> n
Vp -> v | v Np
thatsall

lexicon
the det
pigeons n
boys n
girls n
professors n
suffer v
punish v
and conj
are cop
punished ppart
by passmarker
thatsall
`

// Builtin returns a GrammarSource over the DSL text above.
func Builtin() *Loader {
	return NewLoader(builtinText)
}

// BuiltinRules loads the built-in grammar through the DSL loader.
func BuiltinRules() ([]*chartparse.Rule, error) {
	return Builtin().Rules()
}

// DirectBuiltinRules constructs the identical rule set directly via the root
// package's Go constructors, with no DSL parsing involved — the same grammar
// used to seed chart/fixture_test.go's scenario tests, duplicated here so
// package grammar can assert the two construction paths agree.
func DirectBuiltinRules() []*chartparse.Rule {
	cat := chartparse.NewCategory
	var rules []*chartparse.Rule
	rule := func(lhs string, rhs ...string) {
		cats := make([]chartparse.Category, len(rhs))
		for i, a := range rhs {
			cats[i] = cat(a)
		}
		rules = append(rules, chartparse.NewRule(cat(lhs), cats...))
	}

	rule("S", "Np", "Vp")
	rule("S", "Np", "cop", "ppart", "passmarker", "Np")
	rule("Np", "det", "Nn")
	rule("Np", "Np", "conj", "Np")
	rule("Nn", "n")
	rule("Vp", "v")
	rule("Vp", "v", "Np")

	rule("det", "the")
	rule("n", "pigeons")
	rule("n", "boys")
	rule("n", "girls")
	rule("n", "professors")
	rule("v", "suffer")
	rule("v", "punish")
	rule("conj", "and")
	rule("cop", "are")
	rule("ppart", "punished")
	rule("passmarker", "by")

	return rules
}
