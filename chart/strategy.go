package chart

/*
Strategies (C6): two closed variants sharing one incorporation protocol
(implemented by Store.Incorporate). A strategy's only job is choosing which
edges to hypothesize; the store, the pairing routine and the fundamental-rule
constructor are strategy-agnostic. Implemented as a small interface rather
than an open-ended class hierarchy, per the design notes.
*/

import "github.com/cbrew/chartparse"

// Strategy seeds the agenda and reacts to newly incorporated edges.
type Strategy interface {
	// Initialize seeds the agenda for a fresh parse of sentence, with
	// admissible root categories topCats, against rules.
	Initialize(sentence []string, topCats map[string]bool, rules []*chartparse.Rule, store *Store, agenda *Agenda)
	// PredictFromComplete reacts to a newly-stored complete edge labeled
	// label starting at position.
	PredictFromComplete(store *Store, agenda *Agenda, label chartparse.Category, position uint64)
	// PredictFromPartial reacts to a newly-stored partial edge e.
	PredictFromPartial(store *Store, agenda *Agenda, e *Edge)
}

// BottomUp seeds the agenda from the sentence itself and predicts upward
// from whatever has already been recognized.
type BottomUp struct {
	rules    []*chartparse.Rule
	sentence []string
}

// NewBottomUp returns a BottomUp strategy.
func NewBottomUp() *BottomUp {
	return &BottomUp{}
}

func (b *BottomUp) Initialize(sentence []string, topCats map[string]bool, rules []*chartparse.Rule, store *Store, agenda *Agenda) {
	b.rules = rules
	b.sentence = sentence
	for i, w := range sentence {
		agenda.Enqueue(NewLexicalEdge(chartparse.NewCategory(w), uint64(i)))
	}
}

// PredictFromComplete hypothesizes, for every rule whose first RHS category
// admits label, that a constituent of that rule might start at position.
func (b *BottomUp) PredictFromComplete(store *Store, agenda *Agenda, label chartparse.Category, position uint64) {
	for _, r := range b.rules {
		if len(r.RHS) == 0 {
			continue
		}
		if r.RHS[0].Subsumes(label) {
			agenda.Enqueue(NewPredictiveEdge(r, position))
		}
	}
}

// PredictFromPartial pairs e against every complete edge already known to
// abut it on the right.
func (b *BottomUp) PredictFromPartial(store *Store, agenda *Agenda, e *Edge) {
	store.PairPartialAgainstCompletes(e, agenda)
}

// TopDown seeds the agenda from root-admissible rules at position 0 and
// predicts/scans from the frontier of partial edges, Earley-style.
type TopDown struct {
	rules    []*chartparse.Rule
	sentence []string

	// StrictScanCursor selects the scan position used by PredictFromPartial.
	// The documented behavior (false, the default) uses e.Left, matching the
	// design this package is grounded on; standard Earley scanning uses the
	// dot position, e.Right. See the design notes on why this is preserved
	// rather than silently corrected, and the divergence test that exhibits
	// the difference.
	StrictScanCursor bool
}

// NewTopDown returns a TopDown strategy with the documented (non-strict)
// scan cursor.
func NewTopDown() *TopDown {
	return &TopDown{}
}

func (t *TopDown) Initialize(sentence []string, topCats map[string]bool, rules []*chartparse.Rule, store *Store, agenda *Agenda) {
	t.rules = rules
	t.sentence = sentence
	for _, r := range rules {
		if topCats[r.LHS.Atom] {
			agenda.Enqueue(NewPredictiveEdge(r, 0))
		}
	}
}

// PredictFromComplete is a no-op for top-down: predictions only arise from
// partial edges.
func (t *TopDown) PredictFromComplete(store *Store, agenda *Agenda, label chartparse.Category, position uint64) {
}

// PredictFromPartial predicts new rule attempts for e's next need, and scans
// the sentence for a matching lexical category at the configured cursor.
func (t *TopDown) PredictFromPartial(store *Store, agenda *Agenda, e *Edge) {
	need, ok := e.FirstNeeded()
	if !ok {
		return
	}
	for _, r := range t.rules {
		if r.LHS.Atom == need.Atom {
			agenda.Enqueue(NewPredictiveEdge(r, e.Right))
		}
	}
	cursor := e.Left
	if t.StrictScanCursor {
		cursor = e.Right
	}
	if cursor < uint64(len(t.sentence)) && need.Atom == t.sentence[cursor] {
		agenda.Enqueue(NewLexicalEdge(chartparse.NewCategory(t.sentence[cursor]), cursor))
	}
}
