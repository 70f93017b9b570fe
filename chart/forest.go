package chart

/*
Packed-forest traversal (part of C3). An Edge's predecessor list is a DAG of
shared sub-derivations; these three operations read it without ever copying
the DAG into an explicit tree structure, counting and indexing the
exponentially-many derivations it represents in time polynomial in the
number of edges.
*/

import "github.com/cbrew/chartparse"

// FirstTree returns a canonical representative derivation of e: a lexical
// edge (no predecessors, complete) yields a leaf carrying its word; a
// not-yet-started predictive edge (no predecessors, still partial) yields a
// bare, childless node labeled e.Label, ready to have daughters adjoined onto
// it as the rest of the rule fires; otherwise the tree built by adjoining the
// first predecessor's complete-tree onto its partial-tree, in predecessor
// insertion order.
func (e *Edge) FirstTree() *chartparse.Tree {
	if e.predecessors.Empty() {
		return e.seedTree()
	}
	v, _ := e.predecessors.Get(0)
	te := v.(TraceEntry)
	return chartparse.Adjoin(te.Partial.FirstTree(), te.Complete.FirstTree())
}

// seedTree is the base case shared by FirstTree and GetTree for an edge with
// no predecessor history yet.
func (e *Edge) seedTree() *chartparse.Tree {
	if e.IsComplete() {
		return &chartparse.Tree{Label: e.Label, Word: e.Label.Atom}
	}
	return &chartparse.Tree{Label: e.Label}
}

// CountTrees returns the number of distinct derivations e represents,
// memoized per edge since the predecessor DAG is shared across many parents
// and naive recursion would be exponential.
func (e *Edge) CountTrees() int64 {
	if e.treeCount != nil {
		return *e.treeCount
	}
	var total int64
	if e.predecessors.Empty() {
		total = 1
	} else {
		it := e.predecessors.Iterator()
		for it.Next() {
			te := it.Value().(TraceEntry)
			total += te.Partial.CountTrees() * te.Complete.CountTrees()
		}
	}
	e.treeCount = &total
	return total
}

// GetTree returns the index-th of e's CountTrees() distinct derivations,
// 0 <= index < CountTrees(). The mapping from index to derivation is a
// deterministic bijection: predecessors are walked in order, each
// contributing lcount*rcount trees, and index is decomposed into a
// (left, right) sub-index pair within whichever predecessor's range it
// falls into.
func (e *Edge) GetTree(index int64) *chartparse.Tree {
	total := e.CountTrees()
	if index < 0 || index >= total {
		stuck("GetTree: index out of range")
		return nil
	}
	if e.predecessors.Empty() {
		return e.seedTree()
	}
	var skipped int64
	it := e.predecessors.Iterator()
	for it.Next() {
		te := it.Value().(TraceEntry)
		lcount := te.Partial.CountTrees()
		rcount := te.Complete.CountTrees()
		branch := lcount * rcount
		if index < skipped+branch {
			local := index - skipped
			left := te.Partial.GetTree(local / rcount)
			right := te.Complete.GetTree(local % rcount)
			return chartparse.Adjoin(left, right)
		}
		skipped += branch
	}
	stuck("GetTree: index fell through every predecessor branch despite passing the range check")
	return nil
}

// AllTrees eagerly materializes every distinct derivation of e, in
// descending index order (CountTrees()-1 down to 0), matching the order the
// design this package follows its teacher on. Callers after only the first
// few derivations should prefer FirstTree or GetTree: for a heavily
// ambiguous edge the count itself can be astronomical.
func (e *Edge) AllTrees() []*chartparse.Tree {
	n := e.CountTrees()
	out := make([]*chartparse.Tree, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, e.GetTree(i))
	}
	return out
}
