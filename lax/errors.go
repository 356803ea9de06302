// SPDX-License-Identifier: MIT
// Package lax: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the lax
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is.

package lax

import "errors"

var (
	// ErrNodeRange indicates that a NodeID handle does not address an
	// allocated node (id < 0 or id >= NodeCount).
	ErrNodeRange = errors.New("lax: node id out of range")

	// ErrEdgeRange indicates that an EdgeID handle does not address an
	// allocated edge (id < 0 or id >= EdgeCount).
	ErrEdgeRange = errors.New("lax: edge id out of range")
)
