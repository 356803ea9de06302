// Package coproduct implements indexed coproducts: segmented arrays
// encoding a "list of lists" as one flat payload plus a table of
// segment lengths (CSR-style, with the offsets derived by prefix sum
// and the sentinel carried in the table's declared target).
//
// An Indexed[F] pairs:
//
//   - Sources — a finite.Function whose table stores the n segment
//     lengths and whose target equals sum(lengths) + 1
//   - Values  — the concatenated payload of all n segments, any type
//     with a Len
//
// maintained under the invariant sum(lengths) == Values.Len(). All
// constructors (FromSemifinite, New, Singleton) validate it and
// return ErrInvalidCoproduct instead of producing a broken value.
//
// Operations: Flatmap composes one level of nesting (a segmented-sum
// coarsening); when the payload is itself a finite.Function, Tensor
// forms the horizontal direct sum, MapValues postcomposes the
// payload, and Initial is the empty coproduct. MapIndexes and
// IndexedValues are reserved surface and return ErrNotImplemented.
//
// Concurrency: an Indexed is immutable after construction and safe
// for concurrent readers.
package coproduct
