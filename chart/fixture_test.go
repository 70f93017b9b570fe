package chart

import "github.com/cbrew/chartparse"

// englishFragment is a small hand-built grammar covering a subject-verb
// sentence, an intransitive and a transitive verb phrase, noun coordination
// and one passive construction, big enough to exercise every scenario this
// package's tests care about without dragging in the DSL loader.
func englishFragment() []*chartparse.Rule {
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

func words(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ' ' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
