// SPDX-License-Identifier: MIT
// Package finite: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the finite
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package finite

import "errors"

var (
	// ErrBadTarget indicates that a finite function could not be constructed:
	// the declared target is negative, or a table entry falls outside
	// [0, target).
	ErrBadTarget = errors.New("finite: table value outside target")

	// ErrDomainMismatch indicates that two finite functions were combined
	// along disagreeing ordinals, e.g. Compose(f, g) with f.Target() !=
	// g.Source(), or Coequalizer on maps that are not parallel.
	ErrDomainMismatch = errors.New("finite: domain mismatch")

	// ErrInconsistentMerge indicates that CoequalizerUniversal found two
	// identified positions carrying different values, so no merged array
	// exists.
	ErrInconsistentMerge = errors.New("finite: identified positions disagree")
)
