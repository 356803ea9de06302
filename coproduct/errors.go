// SPDX-License-Identifier: MIT
// Package coproduct: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// coproduct package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is.

package coproduct

import "errors"

var (
	// ErrInvalidCoproduct indicates that a segmented array could not be
	// constructed: the segment-length sum disagrees with the payload
	// length, a segment length is negative, or a supplied offsets mapping
	// declares a codomain inconsistent with its own sum.
	ErrInvalidCoproduct = errors.New("coproduct: segment lengths inconsistent with payload")

	// ErrNotImplemented marks an intentionally unsupported operation on the
	// coproduct surface (MapIndexes, IndexedValues) — reserved extension
	// points with no defined semantics yet.
	ErrNotImplemented = errors.New("coproduct: operation not implemented")
)
