// Package array: Dense is the generic flat-slice sequence of the
// reference backend, storing elements contiguously for cache
// friendliness and O(1) indexed access.

package array

import "fmt"

// Dense is an owned, mutable, ordered sequence of T backed by a flat
// slice. The zero value is unusable; construct via Empty, Fill or
// FromSlice. Valid indices are exactly [0, Len).
type Dense[T any] struct {
	data []T // flat backing storage
}

// Empty returns a new Dense of length zero.
// Complexity: O(1).
func Empty[T any]() *Dense[T] {
	return &Dense[T]{}
}

// Fill returns a new Dense of length n with every element set to x.
// Returns ErrInvalidRange if n < 0.
// Complexity: O(n).
func Fill[T any](x T, n int) (*Dense[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("Fill(%d): %w", n, ErrInvalidRange)
	}
	data := make([]T, n)
	for i := range data {
		data[i] = x
	}

	return &Dense[T]{data: data}, nil
}

// FromSlice returns a new Dense holding a copy of xs. The input slice
// is not retained.
// Complexity: O(len(xs)).
func FromSlice[T any](xs []T) *Dense[T] {
	data := make([]T, len(xs))
	copy(data, xs)

	return &Dense[T]{data: data}
}

// Len reports the number of elements.
// Complexity: O(1).
func (a *Dense[T]) Len() int {
	return len(a.data)
}

// Get retrieves the element at index i.
// Returns ErrOutOfRange if i is outside [0, Len).
// Complexity: O(1).
func (a *Dense[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, fmt.Errorf("Get(%d) with len %d: %w", i, len(a.data), ErrOutOfRange)
	}

	return a.data[i], nil
}

// GetRange returns a copy of the contiguous subrange [lo, hi).
// Returns ErrInvalidRange unless 0 ≤ lo ≤ hi ≤ Len.
// Complexity: O(hi-lo).
func (a *Dense[T]) GetRange(lo, hi int) (*Dense[T], error) {
	if lo < 0 || hi < lo || hi > len(a.data) {
		return nil, fmt.Errorf("GetRange(%d, %d) with len %d: %w", lo, hi, len(a.data), ErrInvalidRange)
	}

	return FromSlice(a.data[lo:hi]), nil
}

// SetRange overwrites the contiguous subrange [lo, hi) with the
// elements of v. Returns ErrInvalidRange on malformed bounds and
// ErrLengthMismatch unless v.Len() == hi-lo. The receiver is
// unchanged on failure.
// Complexity: O(hi-lo).
func (a *Dense[T]) SetRange(lo, hi int, v *Dense[T]) error {
	if lo < 0 || hi < lo || hi > len(a.data) {
		return fmt.Errorf("SetRange(%d, %d) with len %d: %w", lo, hi, len(a.data), ErrInvalidRange)
	}
	if v.Len() != hi-lo {
		return fmt.Errorf("SetRange(%d, %d) with value len %d: %w", lo, hi, v.Len(), ErrLengthMismatch)
	}
	copy(a.data[lo:hi], v.data)

	return nil
}

// Concatenate returns a new Dense holding the elements of a followed
// by the elements of b. Neither input is modified.
// Complexity: O(a.Len() + b.Len()).
func (a *Dense[T]) Concatenate(b *Dense[T]) *Dense[T] {
	data := make([]T, 0, len(a.data)+len(b.data))
	data = append(data, a.data...)
	data = append(data, b.data...)

	return &Dense[T]{data: data}
}

// Gather returns a new Dense r with r[k] = a[idx[k]] for every k.
// The result length equals idx.Len(). Returns ErrOutOfRange if any
// index is outside [0, Len).
// Complexity: O(idx.Len()).
func (a *Dense[T]) Gather(idx *Natural) (*Dense[T], error) {
	data := make([]T, idx.Len())
	for k, i := range idx.data {
		if i < 0 || i >= len(a.data) {
			return nil, fmt.Errorf("Gather index %d with len %d: %w", i, len(a.data), ErrOutOfRange)
		}
		data[k] = a.data[i]
	}

	return &Dense[T]{data: data}, nil
}

// Scatter writes a[i] = v[i] for every i in idx. Note the value is
// read from v at the *target* index, not paired positionally with
// idx; v must therefore cover every index in idx. Returns
// ErrOutOfRange if any index is outside [0, Len) or outside
// [0, v.Len()). All indices are validated before the first write, so
// the receiver is unchanged on failure.
// Complexity: O(idx.Len()).
func (a *Dense[T]) Scatter(idx *Natural, v *Dense[T]) error {
	for _, i := range idx.data {
		if i < 0 || i >= len(a.data) {
			return fmt.Errorf("Scatter index %d with len %d: %w", i, len(a.data), ErrOutOfRange)
		}
		if i >= v.Len() {
			return fmt.Errorf("Scatter index %d with value len %d: %w", i, v.Len(), ErrOutOfRange)
		}
	}
	for _, i := range idx.data {
		a.data[i] = v.data[i]
	}

	return nil
}

// Append pushes one element onto the end of the array, growing Len
// by one. Used by append-only arenas (see package lax).
// Complexity: O(1) amortized.
func (a *Dense[T]) Append(x T) {
	a.data = append(a.data, x)
}

// Clone returns a deep copy of the array.
// Complexity: O(Len).
func (a *Dense[T]) Clone() *Dense[T] {
	return FromSlice(a.data)
}

// Slice borrows the backing storage for read access. Callers must not
// mutate the returned slice while the array is in use.
// Complexity: O(1).
func (a *Dense[T]) Slice() []T {
	return a.data
}
