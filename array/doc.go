// Package array provides the reference array backend for openhg:
// owned, mutable, flat-slice sequences with the random-access and
// prefix-sum primitives the rest of the library is written against.
//
// Two concrete types cover the whole contract:
//
//   - Dense[T] — a generic ordered sequence of T with construction
//     (Empty, Fill, FromSlice), bounds-checked access (Get, GetRange,
//     SetRange), concatenation, and random-access reads/writes
//     (Gather, Scatter).
//
//   - Natural — a Dense-shaped sequence of non-negative ints used for
//     index tables, adding the numeric kernel: Max, Sum, QuotRem,
//     MulConstantAdd, CumulativeSum, Arange, Repeat, SegmentedSum and
//     elementwise arithmetic.
//
// The operation set of these two types is the capability contract an
// alternative backend must satisfy; higher layers (finite, coproduct,
// lax) use nothing else. Backend selection is a build-time decision —
// this package ships the sequential in-memory reference and its tests
// assume deterministic, integer-exact execution.
//
// Concurrency: an array requires exclusive access while mutated
// (single writer); concurrent readers are safe only in the absence of
// a writer. No internal locking is performed.
//
// Errors: all user-triggered failures are reported as the package
// sentinels in errors.go (ErrOutOfRange, ErrLengthMismatch,
// ErrInvalidRange, ErrDivisionByZero), matched via errors.Is.
package array
