package chartparse

import "fmt"

// Span captures a run of input positions. For every edge, left and right
// denote the half-open interval [left, right) of sentence positions the
// edge covers; left == right marks a predictive empty edge.
type Span [2]uint64 // (x…y)

// NewSpan builds a Span from explicit from/to positions.
func NewSpan(from, to uint64) Span {
	return Span{from, to}
}

// From returns the start position of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end position of a span (one past the last covered position).
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull reports whether this is the zero-value span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
