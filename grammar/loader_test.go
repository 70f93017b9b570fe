package grammar

import (
	"sort"
	"strings"
	"testing"

	"github.com/cbrew/chartparse"
	"github.com/cbrew/chartparse/chart"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ruleStrings(rules []*chartparse.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.String()
	}
	sort.Strings(out)
	return out
}

func TestTokenizeSplitsKeywordsAndContentLines(t *testing.T) {
	toks, err := tokenize("grammar\nS -> Np Vp\nthatsall\n\nlexicon\nthe det\nthatsall\n")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var kinds []string
	for _, tk := range toks {
		if tk.kind == tokKeyword {
			kinds = append(kinds, "KW:"+tk.text)
		} else {
			kinds = append(kinds, "LINE:"+tk.text)
		}
	}
	want := []string{"KW:grammar", "LINE:S -> Np Vp", "KW:thatsall", "KW:lexicon", "LINE:the det", "KW:thatsall"}
	if len(kinds) != len(want) {
		t.Fatalf("got tokens %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: got %q, want %q", i, kinds[i], want[i])
		}
	}
}

func TestLoaderRejectsContentOutsideRegion(t *testing.T) {
	_, err := NewLoader("S -> Np Vp\n").Rules()
	if err == nil {
		t.Fatalf("expected an error for a content line outside any region")
	}
}

func TestLoaderParsesLexiconAlternatives(t *testing.T) {
	rules, err := NewLoader("grammar\nthatsall\nlexicon\nrun v | n\nthatsall\n").Rules()
	if err != nil {
		t.Fatalf("Rules: %v", err)
	}
	got := ruleStrings(rules)
	want := ruleStrings([]*chartparse.Rule{
		chartparse.NewRule(chartparse.NewCategory("v"), chartparse.NewCategory("run")),
		chartparse.NewRule(chartparse.NewCategory("n"), chartparse.NewCategory("run")),
	})
	if strings.Join(got, ";") != strings.Join(want, ";") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuiltinRulesMatchDirectConstruction(t *testing.T) {
	viaDSL, err := BuiltinRules()
	if err != nil {
		t.Fatalf("BuiltinRules: %v", err)
	}
	viaGo := DirectBuiltinRules()

	got, want := ruleStrings(viaDSL), ruleStrings(viaGo)
	if len(got) != len(want) {
		t.Fatalf("DSL loader produced %d rules, direct construction produced %d: %v vs %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rule %d: DSL gave %q, direct construction gave %q", i, got[i], want[i])
		}
	}
}

// parseBuiltin runs sentence against the DSL-loaded built-in grammar with a
// bottom-up strategy, mirroring chart package's own scenario tests (S1-S4).
func parseBuiltin(t *testing.T, sentence []string, topCats []string) *chart.Result {
	t.Helper()
	rules, err := BuiltinRules()
	if err != nil {
		t.Fatalf("BuiltinRules: %v", err)
	}
	p := chart.NewParser(rules, chart.WithStrategy(chart.NewBottomUp()))
	return p.Parse(sentence, topCats)
}

func TestBuiltinScenarioS1SimpleSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.grammar")
	defer teardown()

	result := parseBuiltin(t, strings.Fields("the pigeons suffer"), []string{"S"})
	if len(result.Solutions) != 1 {
		t.Fatalf("expected exactly one root solution, got %d", len(result.Solutions))
	}
}

func TestBuiltinScenarioS2TransitiveWithCoordination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.grammar")
	defer teardown()

	result := parseBuiltin(t, strings.Fields("the boys and the girls punish the professors"), []string{"S"})
	if len(result.Solutions) != 1 {
		t.Fatalf("expected exactly one root solution, got %d", len(result.Solutions))
	}
}

func TestBuiltinScenarioS3Passive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.grammar")
	defer teardown()

	result := parseBuiltin(t, strings.Fields("the pigeons are punished by the professors"), []string{"S"})
	if len(result.Solutions) != 1 {
		t.Fatalf("expected exactly one root solution, got %d", len(result.Solutions))
	}
}

func TestBuiltinScenarioS4NoPassiveLocative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse.grammar")
	defer teardown()

	result := parseBuiltin(t, strings.Fields("the pigeons are punished in the green room"), []string{"S"})
	if len(result.Solutions) != 0 {
		t.Fatalf("expected zero solutions, got %d", len(result.Solutions))
	}
}
