package chartparse

/*
Category & feature algebra (C1 of the chart-parser design).

A Category pairs an atom (the head symbol, e.g. "Np", "S", "det") with an
optional, unordered set of feature bindings (key→value). Lexical items are
modeled as a Category whose atom is the surface word and whose Features are
empty.

Categories are immutable: Extend and ExtendWith always return a new value.
They may therefore be freely shared and used as map keys (by their String
form) or hashed.

License

Governed by a 3-Clause BSD license.
*/

import (
	"sort"
	"strings"
)

// Feature is a single key→value feature binding.
type Feature struct {
	Key   string
	Value string
}

// Features is an unordered set of feature bindings with unique keys. The
// zero value is an empty feature set.
type Features []Feature

// Get returns the value bound to key and whether it was present.
func (f Features) Get(key string) (string, bool) {
	for _, b := range f {
		if b.Key == key {
			return b.Value, true
		}
	}
	return "", false
}

// sorted returns a copy of f in canonical (key-ascending) order.
func (f Features) sorted() Features {
	cp := append(Features(nil), f...)
	sort.Slice(cp, func(i, j int) bool {
		a, b := cp[i], cp[j]
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Value < b.Value
	})
	return cp
}

// Equal reports whether two feature sets contain exactly the same bindings.
func (f Features) Equal(other Features) bool {
	if len(f) != len(other) {
		return false
	}
	a, b := f.sorted(), other.sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isSubsetOf reports whether every binding of f also occurs in other.
func (f Features) isSubsetOf(other Features) bool {
	for _, b := range f {
		v, ok := other.Get(b.Key)
		if !ok || v != b.Value {
			return false
		}
	}
	return true
}

// with returns a new Features value with key bound to value, overwriting
// any previous binding for key.
func (f Features) with(key, value string) Features {
	out := make(Features, 0, len(f)+1)
	replaced := false
	for _, b := range f {
		if b.Key == key {
			out = append(out, Feature{key, value})
			replaced = true
			continue
		}
		out = append(out, b)
	}
	if !replaced {
		out = append(out, Feature{key, value})
	}
	return out
}

func (f Features) String() string {
	if len(f) == 0 {
		return ""
	}
	s := f.sorted()
	parts := make([]string, len(s))
	for i, b := range s {
		parts[i] = b.Key + ":" + b.Value
	}
	return strings.Join(parts, ",")
}

// Category is an atomic symbol optionally decorated with feature bindings.
// Two categories are equal iff their atoms and feature sets are equal.
type Category struct {
	Atom     string
	Features Features
}

// NewCategory builds a bare category with no feature bindings.
func NewCategory(atom string) Category {
	return Category{Atom: atom}
}

// Extend returns a new category with the given feature added (or overwritten
// if key was already bound).
func (c Category) Extend(key, value string) Category {
	return Category{Atom: c.Atom, Features: c.Features.with(key, value)}
}

// ExtendWith copies, for each key in keys, the value bound to that key in
// donor (if any) into a new category derived from c. Keys donor does not
// have are silently skipped. This implements the constraint-propagation step
// used by the fundamental rule (§4.1, §4.3 of the design).
func (c Category) ExtendWith(keys []string, donor Category) Category {
	result := c
	for _, k := range keys {
		if v, ok := donor.Features.Get(k); ok {
			result = result.Extend(k, v)
		}
	}
	return result
}

// Equal reports structural equality: same atom, same feature bindings.
func (c Category) Equal(other Category) bool {
	return c.Atom == other.Atom && c.Features.Equal(other.Features)
}

// Subsumes reports whether c is at least as general as other: same atom, and
// c's feature bindings are a (non-strict) subset of other's. A category
// always subsumes itself.
func (c Category) Subsumes(other Category) bool {
	if c.Atom != other.Atom {
		return false
	}
	return c.Features.isSubsetOf(other.Features)
}

// LessGeneralThan reports whether c is strictly less general than other:
// same atom, c adds at least one constraint other.lacks (other's feature set
// is a strict subset of c's).
func (c Category) LessGeneralThan(other Category) bool {
	if c.Atom != other.Atom {
		return false
	}
	if len(c.Features) <= len(other.Features) {
		return false
	}
	return other.Features.isSubsetOf(c.Features)
}

// Clashes reports whether c and other share the same atom and disagree on
// the value of at least one shared feature key. A category without a given
// key never clashes with any value on that key.
func (c Category) Clashes(other Category) bool {
	if c.Atom != other.Atom {
		return false
	}
	for _, b := range c.Features {
		if v, ok := other.Features.Get(b.Key); ok && v != b.Value {
			return true
		}
	}
	return false
}

// Less defines the total order used to key the chart stores: lexicographic
// on atom, then on the canonical (sorted) feature representation.
func (c Category) Less(other Category) bool {
	if c.Atom != other.Atom {
		return c.Atom < other.Atom
	}
	return c.Features.String() < other.Features.String()
}

// Compare returns -1, 0 or 1, following the conventions of gods'
// utils.Comparator — used by the chart package's edge order, which keys the
// chart store's ordered sets.
func (c Category) Compare(other Category) int {
	if c.Equal(other) {
		return 0
	}
	if c.Less(other) {
		return -1
	}
	return 1
}

func (c Category) String() string {
	if len(c.Features) == 0 {
		return c.Atom
	}
	return c.Atom + "(" + c.Features.String() + ")"
}

// SortCategories sorts categories in-place using the total order defined by
// Category.Less, the same order Compare follows.
func SortCategories(cats []Category) {
	sort.Slice(cats, func(i, j int) bool { return cats[i].Less(cats[j]) })
}
