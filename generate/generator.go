/*
Package generate implements a randomized derivation generator (C8): given a
nonterminal, draw one of its rules uniformly at random and recurse over the
rule's right-hand side. It shares the Category/Rule/Tree algebra of the root
package but otherwise knows nothing about package chart — no Edge, Agenda,
Store, or Strategy value crosses this boundary (§4.8).

License

Governed by a 3-Clause BSD license.
*/
package generate

import (
	"math/rand"
	"time"

	"github.com/cbrew/chartparse"
)

// Generator draws random derivations from a fixed rule set.
type Generator struct {
	byAtom   map[string][]*chartparse.Rule
	rng      *rand.Rand
	maxDepth int
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithSeed makes generation reproducible: the same seed and the same rule
// set always produce the same sequence of derivations.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxDepth caps recursion depth. §4.8 only guarantees termination with
// probability 1 on a well-founded grammar; this is the escape hatch for a
// grammar that isn't.
func WithMaxDepth(d int) Option {
	return func(g *Generator) { g.maxDepth = d }
}

// NewGenerator indexes rules by LHS atom, ready for repeated Generate calls.
func NewGenerator(rules []*chartparse.Rule, opts ...Option) *Generator {
	byAtom := make(map[string][]*chartparse.Rule, len(rules))
	for _, r := range rules {
		byAtom[r.LHS.Atom] = append(byAtom[r.LHS.Atom], r)
	}
	g := &Generator{
		byAtom:   byAtom,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		maxDepth: 64,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces one random derivation rooted at start.
func (g *Generator) Generate(start chartparse.Category) *chartparse.Tree {
	return g.generate(start, 0)
}

// generate implements §4.8: a category with no matching rule bottoms out as
// a leaf whose word is its own atom, exactly as the chart engine treats a
// literal word category; otherwise one matching rule is picked uniformly at
// random and every one of its RHS categories is expanded in turn.
func (g *Generator) generate(cat chartparse.Category, depth int) *chartparse.Tree {
	rules := g.byAtom[cat.Atom]
	if len(rules) == 0 || depth >= g.maxDepth {
		return chartparse.NewLeaf(cat, cat.Atom)
	}
	r := rules[g.rng.Intn(len(rules))]
	children := make([]*chartparse.Tree, len(r.RHS))
	for i, rhs := range r.RHS {
		children[i] = g.generate(rhs, depth+1)
	}
	return chartparse.NewInternal(cat, children...)
}
