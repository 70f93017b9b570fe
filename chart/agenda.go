package chart

// Agenda is a FIFO queue of edges awaiting incorporation into the chart
// store (C4). Extraction order is not load-bearing for correctness, but the
// canonical first tree a derivation produces does depend on predecessor
// insertion order, which in turn depends on agenda order — so this stays a
// plain breadth-first queue, never reordered or prioritized.
type Agenda struct {
	items []*Edge
}

// NewAgenda returns an empty agenda.
func NewAgenda() *Agenda {
	return &Agenda{}
}

// Enqueue appends e to the back of the queue.
func (a *Agenda) Enqueue(e *Edge) {
	a.items = append(a.items, e)
}

// Dequeue removes and returns the edge at the front of the queue.
func (a *Agenda) Dequeue() (*Edge, bool) {
	if len(a.items) == 0 {
		return nil, false
	}
	e := a.items[0]
	a.items = a.items[1:]
	return e, true
}

// Empty reports whether the agenda has no pending edges.
func (a *Agenda) Empty() bool {
	return len(a.items) == 0
}

// Len returns the number of pending edges.
func (a *Agenda) Len() int {
	return len(a.items)
}
