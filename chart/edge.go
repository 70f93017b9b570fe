/*
Package chart holds the hard part of the parser: the Edge hypothesis type,
the FIFO Agenda, the endpoint-indexed Store, the two prediction Strategies,
and the Driver loop that ties them together (C3–C7 of the design this
package implements).

License

Governed by a 3-Clause BSD license.
*/
package chart

import (
	"fmt"

	"github.com/cbrew/chartparse"
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("chartparse.chart")
}

// ConstraintMask is a rule's per-firing feature-percolation instructions: the
// feature keys inherited from a realized daughter up to the mother, and,
// per later RHS position, the keys inherited rightward from that daughter.
type ConstraintMask struct {
	MotherKeys []string
	ChildKeys  [][]string
}

// tail returns the mask appropriate for a fundamental-rule product, which
// drops the slot that was just consumed.
func (m ConstraintMask) tail() ConstraintMask {
	if len(m.ChildKeys) == 0 {
		return ConstraintMask{MotherKeys: m.MotherKeys}
	}
	return ConstraintMask{MotherKeys: m.MotherKeys, ChildKeys: m.ChildKeys[1:]}
}

// Edge is a hypothesis about a contiguous span of the input: the category it
// asserts, the span it covers, and the categories it still needs to become
// complete.
type Edge struct {
	Label       chartparse.Category
	Left, Right uint64
	Needed      []chartparse.Category
	Constraints ConstraintMask

	predecessors *arraylist.List // of TraceEntry; empty for lexical/predictive edges
	treeCount    *int64          // memoized countTrees(), nil until first computed
}

// TraceEntry records one way a fundamental-rule firing licensed an edge: the
// partial that was waiting, and the complete that satisfied its next need.
type TraceEntry struct {
	Partial  *Edge
	Complete *Edge
}

// NewLexicalEdge builds a complete edge for a single surface token realizing
// label at position left.
func NewLexicalEdge(label chartparse.Category, left uint64) *Edge {
	return &Edge{Label: label, Left: left, Right: left + 1, predecessors: arraylist.New()}
}

// NewPredictiveEdge builds an empty (left == right) partial edge hypothesizing
// that rule r might start at position.
func NewPredictiveEdge(r *chartparse.Rule, position uint64) *Edge {
	needed := make([]chartparse.Category, len(r.RHS))
	copy(needed, r.RHS)
	return &Edge{
		Label:       r.LHS,
		Left:        position,
		Right:       position,
		Needed:      needed,
		Constraints: ConstraintMask{MotherKeys: r.MotherKeys, ChildKeys: r.ChildKeys},
		predecessors: arraylist.New(),
	}
}

// NewFundamentalEdge builds the product of a partial p consuming a complete c
// via the fundamental rule. The caller must already have verified that
// p.FirstNeeded() subsumes c.Label and does not clash with it — this is the
// asserted precondition of §4.3; violating it is a programming bug, not a
// recoverable error.
func NewFundamentalEdge(p, c *Edge) *Edge {
	need, ok := p.FirstNeeded()
	if !ok {
		stuck(fmt.Sprintf("fundamental rule: partial %s has no remaining need", p))
		return nil
	}
	if !need.Subsumes(c.Label) || need.Clashes(c.Label) {
		stuck(fmt.Sprintf("fundamental rule precondition violated: %s does not admit %s", need, c.Label))
		return nil
	}
	rest := p.Needed[1:]
	donorKeys := p.Constraints.keysFor(0)
	newNeeded := make([]chartparse.Category, len(rest))
	for i, n := range rest {
		newNeeded[i] = n.ExtendWith(donorKeys, c.Label)
	}
	e := &Edge{
		Label:        p.Label.ExtendWith(p.Constraints.MotherKeys, c.Label),
		Left:         p.Left,
		Right:        c.Right,
		Needed:       newNeeded,
		Constraints:  p.Constraints.tail(),
		predecessors: arraylist.New(),
	}
	e.predecessors.Add(TraceEntry{Partial: p, Complete: c})
	return e
}

// keysFor returns the child constraint keys for slot i, or nil if the mask
// does not cover that many slots.
func (m ConstraintMask) keysFor(i int) []string {
	if i < 0 || i >= len(m.ChildKeys) {
		return nil
	}
	return m.ChildKeys[i]
}

// IsComplete reports whether e has no remaining needs.
func (e *Edge) IsComplete() bool {
	return len(e.Needed) == 0
}

// FirstNeeded returns the first category e still requires, if any.
func (e *Edge) FirstNeeded() (chartparse.Category, bool) {
	if len(e.Needed) == 0 {
		return chartparse.Category{}, false
	}
	return e.Needed[0], true
}

// Predecessors returns e's ordered trace entries.
func (e *Edge) Predecessors() *arraylist.List {
	return e.predecessors
}

// AddPredecessors merges other's trace entries into e, in other's order.
// This is the dedup-time merge step of the incorporation protocol (§4.5):
// when a structurally identical edge is re-derived, its derivation is kept,
// not discarded.
func (e *Edge) AddPredecessors(other *Edge) {
	it := other.predecessors.Iterator()
	for it.Next() {
		e.predecessors.Add(it.Value())
		e.treeCount = nil // invalidate memoized count
	}
}

// key returns the structural identity key used by the store for dedup:
// (label, left, right, needed) — deliberately excluding predecessors, so
// that two edges built via different derivations but identical surface
// shape are the same edge.
func (e *Edge) key() string {
	h, err := structhash.Hash(struct {
		Label  string
		Left   uint64
		Right  uint64
		Needed []string
	}{
		Label:  e.Label.String(),
		Left:   e.Left,
		Right:  e.Right,
		Needed: categoryStrings(e.Needed),
	}, 1)
	if err != nil {
		panic(err) // structhash only fails on unsupported kinds; our key is all strings/ints
	}
	return h
}

func categoryStrings(cats []chartparse.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.String()
	}
	return out
}

// compare implements the total order of §3: by span length ascending, then
// label, then needed lexicographically, then left, then right.
func (e *Edge) compare(other *Edge) int {
	lenA, lenB := e.Right-e.Left, other.Right-other.Left
	if lenA != lenB {
		if lenA < lenB {
			return -1
		}
		return 1
	}
	if c := e.Label.Compare(other.Label); c != 0 {
		return c
	}
	if c := compareNeeded(e.Needed, other.Needed); c != 0 {
		return c
	}
	if e.Left != other.Left {
		if e.Left < other.Left {
			return -1
		}
		return 1
	}
	if e.Right != other.Right {
		if e.Right < other.Right {
			return -1
		}
		return 1
	}
	return 0
}

func compareNeeded(a, b []chartparse.Category) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return 0
}

// edgeComparator adapts Edge.compare to gods' utils.Comparator signature,
// used directly as the ordering for the store's treeset buckets.
func edgeComparator(a, b interface{}) int {
	return a.(*Edge).compare(b.(*Edge))
}

func (e *Edge) String() string {
	if e.IsComplete() {
		return fmt.Sprintf("%s:%d-%d", e.Label, e.Left, e.Right)
	}
	parts := make([]string, len(e.Needed))
	for i, n := range e.Needed {
		parts[i] = n.String()
	}
	return fmt.Sprintf("%s:%d-%d/[%s]", e.Label, e.Left, e.Right, joinComma(parts))
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
