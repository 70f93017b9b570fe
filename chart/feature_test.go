package chart

/*
Feature-agreement grammar: a tiny noun phrase rule percolates the determiner's
num feature onto the needed noun slot (§4.3), so that the fundamental rule's
own subsumption/clash check (not a separate constraint comparison) is what
rejects a number mismatch. See the design notes for why clash detection, and
not a general constraint-subsumption test, is the operative mechanism here.
*/

import (
	"testing"

	"github.com/cbrew/chartparse"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func agreementGrammar() []*chartparse.Rule {
	np := chartparse.NewRule(
		chartparse.NewCategory("Np"),
		chartparse.NewCategory("det"),
		chartparse.NewCategory("n"),
	).WithConstraints([]string{"num"}, [][]string{{"num"}, nil})

	detSg := chartparse.NewRule(chartparse.NewCategory("det").Extend("num", "sg"), chartparse.NewCategory("a"))
	detPl := chartparse.NewRule(chartparse.NewCategory("det").Extend("num", "pl"), chartparse.NewCategory("these"))
	nSg := chartparse.NewRule(chartparse.NewCategory("n").Extend("num", "sg"), chartparse.NewCategory("dog"))
	nPl := chartparse.NewRule(chartparse.NewCategory("n").Extend("num", "pl"), chartparse.NewCategory("dogs"))

	return []*chartparse.Rule{np, detSg, detPl, nSg, nPl}
}

func TestFeaturePercolationAcceptsAgreement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.chart")
	defer teardown()

	p := NewParser(agreementGrammar(), WithStrategy(NewBottomUp()))
	result := p.Parse([]string{"a", "dog"}, []string{"Np"})

	if len(result.Solutions) != 1 {
		t.Fatalf("expected 1 solution for agreeing number, got %d", len(result.Solutions))
	}
	got := result.Solutions[0].Label
	if v, ok := got.Features.Get("num"); !ok || v != "sg" {
		t.Fatalf("expected mother Np to carry percolated num:sg, got %v", got)
	}
}

func TestFeaturePercolationRejectsMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.chart")
	defer teardown()

	p := NewParser(agreementGrammar(), WithStrategy(NewBottomUp()))
	result := p.Parse([]string{"a", "dogs"}, []string{"Np"})

	if len(result.Solutions) != 0 {
		t.Fatalf("expected 0 solutions for a number mismatch, got %d", len(result.Solutions))
	}
}

func TestFeaturePercolationAcceptsPluralAgreement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.chart")
	defer teardown()

	p := NewParser(agreementGrammar(), WithStrategy(NewBottomUp()))
	result := p.Parse([]string{"these", "dogs"}, []string{"Np"})

	if len(result.Solutions) != 1 {
		t.Fatalf("expected 1 solution for agreeing plural number, got %d", len(result.Solutions))
	}
}
