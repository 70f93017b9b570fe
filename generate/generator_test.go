package generate

import (
	"testing"

	"github.com/cbrew/chartparse"
	"github.com/cbrew/chartparse/chart"
)

// smallGrammar is unambiguous and terminates quickly: every nonterminal
// bottoms out in a lexical category within a few levels, so a generated
// derivation is cheap to both produce and re-parse.
func smallGrammar() []*chartparse.Rule {
	cat := chartparse.NewCategory
	rule := func(lhs string, rhs ...string) *chartparse.Rule {
		cats := make([]chartparse.Category, len(rhs))
		for i, a := range rhs {
			cats[i] = cat(a)
		}
		return chartparse.NewRule(cat(lhs), cats...)
	}
	return []*chartparse.Rule{
		rule("S", "Np", "Vp"),
		rule("Np", "det", "n"),
		rule("Vp", "v"),
		rule("det", "the"),
		rule("n", "pigeons"),
		rule("n", "boys"),
		rule("v", "suffer"),
		rule("v", "run"),
	}
}

func TestGenerateProducesWellFormedTree(t *testing.T) {
	g := NewGenerator(smallGrammar(), WithSeed(1))
	tree := g.Generate(chartparse.NewCategory("S"))
	if tree.Label.Atom != "S" {
		t.Fatalf("expected root labeled S, got %v", tree.Label)
	}
	if len(tree.Yield()) == 0 {
		t.Fatalf("expected a non-empty yield")
	}
}

func TestGenerateIsReproducibleWithSameSeed(t *testing.T) {
	rules := smallGrammar()
	a := NewGenerator(rules, WithSeed(42)).Generate(chartparse.NewCategory("S"))
	b := NewGenerator(rules, WithSeed(42)).Generate(chartparse.NewCategory("S"))
	if !a.Equal(b) {
		t.Fatalf("expected the same seed to reproduce the same derivation: %s vs %s", a, b)
	}
}

func TestGenerateLeafOnUnknownNonterminal(t *testing.T) {
	g := NewGenerator(smallGrammar(), WithSeed(7))
	leaf := g.Generate(chartparse.NewCategory("the"))
	if !leaf.IsLeaf() || leaf.Word != "the" {
		t.Fatalf("expected a bare leaf for a category with no rules, got %v", leaf)
	}
}

// TestGenerateParseRoundTrip is property 7: a tree generated from X, reparsed
// with topCats={X} over the same grammar, must be among the solutions and
// one of them must equal the generated tree modulo feature decoration.
func TestGenerateParseRoundTrip(t *testing.T) {
	rules := smallGrammar()
	for seed := int64(0); seed < 20; seed++ {
		g := NewGenerator(rules, WithSeed(seed))
		tree := g.Generate(chartparse.NewCategory("S"))
		sentence := tree.Yield()

		p := chart.NewParser(rules, chart.WithStrategy(chart.NewBottomUp()))
		result := p.Parse(sentence, []string{"S"})
		if len(result.Solutions) == 0 {
			t.Fatalf("seed %d: generated sentence %v was not accepted by its own grammar", seed, sentence)
		}

		found := false
		root := result.Solutions[0]
		for i := int64(0); i < root.CountTrees(); i++ {
			if root.GetTree(i).Equal(tree) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("seed %d: no parse of %v reproduced the generated tree %s", seed, sentence, tree)
		}
	}
}
