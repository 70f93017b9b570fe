package chart

/*
Chart store (C5): two endpoint-indexed arrays of ordered, deduplicating edge
sets. completes[i] holds complete edges starting at i; partials[j] holds
partial edges ending at j. Each bucket is backed by a
github.com/emirpasic/gods/sets/treeset.Set ordered by Edge's total order
(§3) for deterministic iteration, paired with a structhash-keyed map for
O(1) existing-edge lookup at dedup time — gods' red-black tree would
otherwise silently overwrite the stored edge on an equal-key Put, which
would lose the very predecessor set dedup exists to preserve.
*/

import (
	"github.com/emirpasic/gods/sets/treeset"
)

type bucket struct {
	byKey map[string]*Edge
	order *treeset.Set
}

func newBucket() *bucket {
	return &bucket{byKey: make(map[string]*Edge), order: treeset.NewWith(edgeComparator)}
}

func (b *bucket) find(e *Edge) (*Edge, bool) {
	existing, ok := b.byKey[e.key()]
	return existing, ok
}

func (b *bucket) insert(e *Edge) {
	b.byKey[e.key()] = e
	b.order.Add(e)
}

func (b *bucket) edges() []*Edge {
	values := b.order.Values()
	out := make([]*Edge, len(values))
	for i, v := range values {
		out[i] = v.(*Edge)
	}
	return out
}

// Store is the chart: completes[i] / partials[j] for i, j in [0, N].
type Store struct {
	completes []*bucket
	partials  []*bucket

	numCompleteEdges int
	numPartialEdges  int
}

// NewStore allocates a store for a sentence of length n.
func NewStore(n uint64) *Store {
	s := &Store{
		completes: make([]*bucket, n+1),
		partials:  make([]*bucket, n+1),
	}
	for i := range s.completes {
		s.completes[i] = newBucket()
		s.partials[i] = newBucket()
	}
	return s
}

// NumCompleteEdges returns the number of complete edges incorporated so far.
func (s *Store) NumCompleteEdges() int { return s.numCompleteEdges }

// NumPartialEdges returns the number of partial edges incorporated so far.
func (s *Store) NumPartialEdges() int { return s.numPartialEdges }

// Completes returns the complete edges starting at position i, in the
// store's total order.
func (s *Store) Completes(i uint64) []*Edge {
	return s.completes[i].edges()
}

// Partials returns the partial edges ending at position j, in the store's
// total order.
func (s *Store) Partials(j uint64) []*Edge {
	return s.partials[j].edges()
}

// Incorporate runs the incorporation protocol of §4.5: dedup against the
// appropriate bucket (merging predecessors into the existing edge on a
// match), or insert e, update counters, run strategy-specific prediction,
// and — for a newly-inserted complete edge — pair it against every waiting
// partial ending where it begins. Returns true iff the chart grew.
func (s *Store) Incorporate(e *Edge, strat Strategy, agenda *Agenda) bool {
	var b *bucket
	if e.IsComplete() {
		b = s.completes[e.Left]
	} else {
		b = s.partials[e.Right]
	}
	if existing, ok := b.find(e); ok {
		existing.AddPredecessors(e)
		return false
	}
	b.insert(e)
	if e.IsComplete() {
		s.numCompleteEdges++
		strat.PredictFromComplete(s, agenda, e.Label, e.Left)
		s.PairCompleteAgainstPartials(e, agenda)
	} else {
		s.numPartialEdges++
		strat.PredictFromPartial(s, agenda, e)
	}
	return true
}

// PairCompleteAgainstPartials enqueues the fundamental-rule product of c
// against every partial currently ending at c.Left whose next need admits
// c's label. Run automatically by Incorporate for every newly-stored
// complete edge, and available to strategies that need to trigger it again
// (none of the two built-in strategies do, but a custom one might).
func (s *Store) PairCompleteAgainstPartials(c *Edge, agenda *Agenda) {
	for _, p := range s.partials[c.Left].edges() {
		if fundamentalRuleApplies(p, c) {
			agenda.Enqueue(NewFundamentalEdge(p, c))
		}
	}
}

// PairPartialAgainstCompletes enqueues the fundamental-rule product of p
// against every complete currently starting at p.Right whose label p's next
// need admits. The bottom-up strategy calls this from PredictFromPartial;
// the top-down strategy deliberately does not (§4.6) — a new partial only
// combines with completes that arrive after it, via
// PairCompleteAgainstPartials.
func (s *Store) PairPartialAgainstCompletes(p *Edge, agenda *Agenda) {
	for _, c := range s.completes[p.Right].edges() {
		if fundamentalRuleApplies(p, c) {
			agenda.Enqueue(NewFundamentalEdge(p, c))
		}
	}
}

func fundamentalRuleApplies(p, c *Edge) bool {
	need, ok := p.FirstNeeded()
	if !ok {
		return false
	}
	return need.Subsumes(c.Label) && !need.Clashes(c.Label)
}

// Solutions returns every complete edge spanning the whole input whose label
// atom is one of topCats (§4.5).
func (s *Store) Solutions(n uint64, topCats map[string]bool) []*Edge {
	var out []*Edge
	for _, e := range s.completes[0].edges() {
		if e.Right == n && topCats[e.Label.Atom] {
			out = append(out, e)
		}
	}
	return out
}
