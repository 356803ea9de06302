package finite

import (
	"fmt"

	"github.com/katalvlaran/openhg/array"
)

// Coequalizer computes the coequalizer of two parallel finite
// functions s, t : E → N, i.e. the coarsest q : N → K with q∘s = q∘t.
// Concretely: view each pair (s(e), t(e)) as an undirected edge over
// the target ordinal and collapse connected components, using a
// disjoint-set (union-find) with path compression and union by rank.
// Canonical representatives are numbered by first occurrence among
// the old ids, so q is surjective onto {0..K-1} and deterministic.
//
// Returns ErrDomainMismatch unless s and t are parallel (equal
// Source and equal Target). Always succeeds for parallel inputs.
//
// Complexity: O(N + E·α(N)) time, O(N) memory.
func Coequalizer(s, t *Function) (*Function, error) {
	// Validate that the two maps are parallel.
	if s.Source() != t.Source() || s.Target() != t.Target() {
		return nil, fmt.Errorf("Coequalizer with shapes %d→%d, %d→%d: %w",
			s.Source(), s.Target(), t.Source(), t.Target(), ErrDomainMismatch)
	}
	n := s.Target()

	// Initialize disjoint-set structures: parent[v] = v, rank 0.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges the components of each identified pair.
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	sv, tv := s.table.Slice(), t.table.Slice()
	for e := range sv {
		union(sv[e], tv[e])
	}

	// Number components by first occurrence among old ids: scanning
	// 0..n-1 in order guarantees the minimal old id of each component
	// receives the smallest fresh id.
	label := make([]int, n)
	for v := range label {
		label[v] = -1
	}
	next := 0
	table := array.EmptyNatural()
	for v := 0; v < n; v++ {
		root := find(v)
		if label[root] < 0 {
			label[root] = next
			next++
		}
		table.Append(label[root])
	}

	return &Function{table: table, target: next}, nil
}

// CoequalizerUniversal applies the universal property of a
// coequalizer q : N → K to an array of values indexed by the old
// ordinal N: it returns the unique array over K such that every old
// position i carries the value of its representative q(i).
//
// Returns ErrDomainMismatch if values.Len() != q.Source() or q is not
// surjective onto its target (some new id receives no value), and
// ErrInconsistentMerge if two positions identified by q carry
// different values.
//
// Complexity: O(N + K) time, O(K) memory.
func CoequalizerUniversal[T comparable](q *Function, values *array.Dense[T]) (*array.Dense[T], error) {
	if values.Len() != q.Source() {
		return nil, fmt.Errorf("CoequalizerUniversal with source %d, values len %d: %w",
			q.Source(), values.Len(), ErrDomainMismatch)
	}

	merged := make([]T, q.Target())
	seen := make([]bool, q.Target())
	vs := values.Slice()
	for i, j := range q.table.Slice() {
		if !seen[j] {
			merged[j] = vs[i]
			seen[j] = true
			continue
		}
		if merged[j] != vs[i] {
			return nil, fmt.Errorf("CoequalizerUniversal at old id %d: %w", i, ErrInconsistentMerge)
		}
	}
	for j, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("CoequalizerUniversal: new id %d unassigned: %w", j, ErrDomainMismatch)
		}
	}

	return array.FromSlice(merged), nil
}
