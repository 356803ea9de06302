// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the array
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package array

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "array: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the method boundary — callers still match
// with errors.Is.

var (
	// ErrOutOfRange indicates that an index is outside [0, Len).
	// Public indexers (Get/Gather/Scatter) MUST return this, not panic.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrLengthMismatch indicates two arrays (or an array and a range) were
	// expected to have equal length but differ, e.g. elementwise Add/Sub,
	// SetRange, Repeat counts vs. values.
	ErrLengthMismatch = errors.New("array: length mismatch")

	// ErrInvalidRange indicates a malformed extent: Arange with stop < start,
	// Fill or Repeat with a negative count, or GetRange/SetRange bounds that
	// do not satisfy 0 ≤ lo ≤ hi ≤ Len.
	ErrInvalidRange = errors.New("array: invalid range")

	// ErrDivisionByZero indicates QuotRem was called with divisor zero.
	ErrDivisionByZero = errors.New("array: division by zero")
)
