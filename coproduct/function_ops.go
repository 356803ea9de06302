// Package coproduct: operations defined only when the payload is
// itself a finite function (segments of indices into a shared
// codomain) — the shape used for hypergraph source/target tables.

package coproduct

import (
	"fmt"

	"github.com/katalvlaran/openhg/array"
	"github.com/katalvlaran/openhg/finite"
)

// Functions is an indexed coproduct whose payload is a finite
// function: each segment is an ordered list of indices into the
// payload's codomain.
type Functions = Indexed[*finite.Function]

// Initial returns the empty coproduct (zero segments) whose payload
// maps into {0..target-1}. Returns ErrInvalidCoproduct if target < 0.
// Complexity: O(1).
func Initial(target int) (*Functions, error) {
	values, err := finite.Initial(target)
	if err != nil {
		return nil, fmt.Errorf("Initial(%d): %w", target, ErrInvalidCoproduct)
	}
	sources, err := finite.Initial(1) // zero segments; sentinel target 0+1
	if err != nil {
		return nil, fmt.Errorf("Initial(%d): %w", target, ErrInvalidCoproduct)
	}

	return &Functions{sources: sources, values: values}, nil
}

// Tensor forms the horizontal direct sum of two coproducts of finite
// functions: the result has a.Len()+b.Len() segments, the first
// a.Len() addressed identically to a, the rest drawn from b with
// payload values shifted past a's payload codomain (disjoint union).
// The offsets tables share one sentinel, so the combined sources
// target is a's plus b's minus one.
// Complexity: O(a.Len() + b.Len() + payload lengths).
func Tensor(a, b *Functions) (*Functions, error) {
	// Concatenated segment lengths; the two sentinels collapse into one.
	table := a.sources.Table().Concatenate(b.sources.Table())
	target := a.sources.Target() + b.sources.Target() - 1
	sources, err := finite.New(table, target)
	if err != nil {
		return nil, fmt.Errorf("Tensor: %w", ErrInvalidCoproduct)
	}

	// Disjoint union of the payload mappings: b's indices re-target past
	// the end of a's codomain.
	shifted := b.values.Table().AddConst(a.values.Target())
	values, err := finite.New(a.values.Table().Concatenate(shifted), a.values.Target()+b.values.Target())
	if err != nil {
		return nil, fmt.Errorf("Tensor: %w", ErrInvalidCoproduct)
	}

	return &Functions{sources: sources, values: values}, nil
}

// MapValues postcomposes the payload with x, leaving segmentation
// untouched: each index in the payload is replaced by its image under
// x. Returns finite.ErrDomainMismatch if x's domain does not equal
// the payload's codomain.
// Complexity: O(payload length).
func MapValues(c *Functions, x *finite.Function) (*Functions, error) {
	values, err := finite.Compose(c.values, x)
	if err != nil {
		return nil, fmt.Errorf("MapValues: %w", err)
	}

	return &Functions{sources: c.sources, values: values}, nil
}

// MapIndexes transforms the segmentation while preserving the
// payload. Reserved extension point: the semantics are not yet
// defined, so it always returns ErrNotImplemented.
func MapIndexes(_ *Functions, _ *finite.Function) (*Functions, error) {
	return nil, fmt.Errorf("MapIndexes: %w", ErrNotImplemented)
}

// IndexedValues evaluates the payload addressed by an external index
// mapping. Reserved extension point: the semantics are not yet
// defined, so it always returns ErrNotImplemented.
func IndexedValues(_ *Functions, _ *finite.Function) (*finite.Function, error) {
	return nil, fmt.Errorf("IndexedValues: %w", ErrNotImplemented)
}

// SegmentOf returns the payload indices of segment i as a copy.
// Returns array.ErrOutOfRange if i is outside [0, Len).
// Complexity: O(segment length).
func SegmentOf(c *Functions, i int) (*array.Natural, error) {
	n, err := c.sources.Table().Get(i)
	if err != nil {
		return nil, fmt.Errorf("SegmentOf(%d): %w", i, err)
	}
	// Offset of segment i is the prefix sum of the lengths before it.
	head, err := c.sources.Table().GetRange(0, i)
	if err != nil {
		return nil, fmt.Errorf("SegmentOf(%d): %w", i, err)
	}
	lo := head.Sum()

	return c.values.Table().GetRange(lo, lo+n)
}
