package coproduct

import (
	"fmt"

	"github.com/katalvlaran/openhg/array"
	"github.com/katalvlaran/openhg/finite"
)

// Sized is the minimal capability a payload must have to live inside
// an indexed coproduct: a length, in elements.
type Sized interface {
	Len() int
}

// Indexed is a finite coproduct of F-shaped segments — pragmatically,
// a segmented array. sources holds the per-segment lengths (its
// target carries the sum+1 sentinel) and values is the concatenated
// payload. Immutable after construction; construct via FromSemifinite,
// New or Singleton, which enforce sum(lengths) == values.Len().
type Indexed[F Sized] struct {
	sources *finite.Function // segment lengths; target = sum + 1
	values  F                // flat payload across all segments
}

// FromSemifinite builds an indexed coproduct from a raw table of
// segment lengths and a payload. The offsets mapping is derived with
// target sum(lengths)+1. Returns ErrInvalidCoproduct if any length is
// negative or sum(lengths) != values.Len().
// Complexity: O(lengths.Len()).
func FromSemifinite[F Sized](lengths *array.Natural, values F) (*Indexed[F], error) {
	for i, n := range lengths.Slice() {
		if n < 0 {
			return nil, fmt.Errorf("FromSemifinite: length %d at %d: %w", n, i, ErrInvalidCoproduct)
		}
	}
	sum := lengths.Sum()
	if sum != values.Len() {
		return nil, fmt.Errorf("FromSemifinite with total %d, payload len %d: %w", sum, values.Len(), ErrInvalidCoproduct)
	}
	sources, err := finite.New(lengths, sum+1)
	if err != nil {
		return nil, fmt.Errorf("FromSemifinite: %w", ErrInvalidCoproduct)
	}

	return &Indexed[F]{sources: sources, values: values}, nil
}

// New builds an indexed coproduct from a pre-built offsets mapping.
// The segment-length sum is recomputed from the table and checked
// both against the payload length and against the mapping's declared
// target (which must equal sum+1). Returns ErrInvalidCoproduct on any
// mismatch.
// Complexity: O(sources.Source()).
func New[F Sized](sources *finite.Function, values F) (*Indexed[F], error) {
	result, err := FromSemifinite(sources.Table(), values)
	if err != nil {
		return nil, err
	}
	// Cross-check the caller's declared codomain against the recomputed one.
	if result.sources.Target() != sources.Target() {
		return nil, fmt.Errorf("New with target %d, sum %d: %w",
			sources.Target(), result.sources.Target()-1, ErrInvalidCoproduct)
	}

	return result, nil
}

// Singleton builds the degenerate coproduct with one length-1 segment
// per payload element (identity-like indexing). Always succeeds.
// Complexity: O(values.Len()).
func Singleton[F Sized](values F) *Indexed[F] {
	n := values.Len()
	lengths, _ := array.FillNatural(1, n) // n >= 0, cannot fail
	sources, _ := finite.New(lengths, n+1)

	return &Indexed[F]{sources: sources, values: values}
}

// Len reports the number of segments.
// Complexity: O(1).
func (c *Indexed[F]) Len() int {
	return c.sources.Source()
}

// Sources returns the offsets mapping: segment lengths in the table,
// sum+1 in the target.
// Complexity: O(1).
func (c *Indexed[F]) Sources() *finite.Function {
	return c.sources
}

// Values returns the flat payload.
// Complexity: O(1).
func (c *Indexed[F]) Values() F {
	return c.values
}

// SegmentLengths returns a copy of the per-segment length table.
// Complexity: O(Len).
func (c *Indexed[F]) SegmentLengths() *array.Natural {
	return c.sources.Table().Clone()
}

// Flatmap composes one level of nesting: treating c and other as
// nested lists-of-lists, it returns the coproduct over c's index set
// whose segment lengths are other's segment lengths summed within
// each group defined by c's table, and whose payload is
// other.Values() unchanged.
//
// Precondition (caller-guaranteed): c's payload indexes other's
// segments, i.e. sum(c's lengths) == other.Len(). A violation
// surfaces as array.ErrLengthMismatch from the segmented sum.
//
// Complexity: O(c.Len() + other.Len()).
func (c *Indexed[F]) Flatmap(other *Indexed[F]) (*Indexed[F], error) {
	lengths, err := c.sources.Table().SegmentedSum(other.sources.Table())
	if err != nil {
		return nil, fmt.Errorf("Flatmap: %w", err)
	}
	// The payload is untouched, so the grouped sums and the payload's
	// sentinel target agree by construction.
	sources, err := finite.New(lengths, other.sources.Target())
	if err != nil {
		return nil, fmt.Errorf("Flatmap: %w", err)
	}

	return &Indexed[F]{sources: sources, values: other.values}, nil
}
