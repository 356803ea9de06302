package lax

import (
	"fmt"

	"github.com/katalvlaran/openhg/array"
	"github.com/katalvlaran/openhg/coproduct"
	"github.com/katalvlaran/openhg/finite"
	"github.com/katalvlaran/openhg/hypergraph"
)

// Quotient collapses all pending identifications into canonical
// nodes and returns the renumbering q from old node ids to new ones.
//
// Steps:
//  1. View the pending pairs as two parallel finite functions s, t
//     from the pair set into the node set.
//  2. Compute their coequalizer q (connected components, canonical
//     representatives by first occurrence among old ids).
//  3. Merge the node-label array through q's universal property;
//     identified nodes carrying different labels fail with
//     finite.ErrInconsistentMerge — label compatibility is a
//     precondition the caller establishes before finalizing.
//  4. Rewrite every adjacency entry's node ids through q in one pass.
//  5. Clear the pending relation.
//
// The label merge runs before any mutation, so a failed Quotient
// leaves the builder unchanged. Calling Quotient again without
// intervening Unify is a no-op returning the identity renumbering.
//
// Complexity: O(nodes + pairs·α(nodes) + total adjacency arity).
func (h *Hypergraph[O, A]) Quotient() (*finite.Function, error) {
	n := h.nodes.Len()

	left := array.EmptyNatural()
	right := array.EmptyNatural()
	for i := range h.pendingL {
		left.Append(int(h.pendingL[i]))
		right.Append(int(h.pendingR[i]))
	}
	s, err := finite.New(left, n)
	if err != nil {
		return nil, fmt.Errorf("Quotient: %w", err)
	}
	t, err := finite.New(right, n)
	if err != nil {
		return nil, fmt.Errorf("Quotient: %w", err)
	}

	q, err := finite.Coequalizer(s, t)
	if err != nil {
		return nil, fmt.Errorf("Quotient: %w", err)
	}

	// Merge labels first: on failure the builder must stay untouched.
	merged, err := finite.CoequalizerUniversal(q, h.nodes)
	if err != nil {
		return nil, fmt.Errorf("Quotient: %w", err)
	}

	// Single-pass remap of the full adjacency through q.
	qt := q.Table().Slice()
	for e := range h.adjacency {
		he := &h.adjacency[e]
		for i, v := range he.Sources {
			he.Sources[i] = NodeID(qt[v])
		}
		for i, v := range he.Targets {
			he.Targets[i] = NodeID(qt[v])
		}
	}

	h.nodes = merged
	h.pendingL, h.pendingR = nil, nil

	return q, nil
}

// ToHypergraph converts the builder into the canonical immutable
// record: for each direction it flattens the per-edge node lists in
// edge order into one indexed coproduct (segment length = arity,
// payload = node ids into the current node set) and bundles both with
// the label arrays. Run it after Quotient — any pending
// identifications are simply not reflected in the result.
//
// A node id out of range surfaces as a construction error from the
// coproduct layer's own invariant check.
//
// Complexity: O(nodes + edges + total adjacency arity).
func (h *Hypergraph[O, A]) ToHypergraph() (*hypergraph.Hypergraph[O, A], error) {
	sources, err := h.wireTable(func(he Hyperedge) []NodeID { return he.Sources })
	if err != nil {
		return nil, fmt.Errorf("ToHypergraph sources: %w", err)
	}
	targets, err := h.wireTable(func(he Hyperedge) []NodeID { return he.Targets })
	if err != nil {
		return nil, fmt.Errorf("ToHypergraph targets: %w", err)
	}

	return hypergraph.New(sources, targets, h.nodes.Clone(), h.edges.Clone())
}

// wireTable builds one direction's indexed coproduct from the
// adjacency: per-edge arities as segment lengths, flattened node ids
// as the payload mapping into the node set.
func (h *Hypergraph[O, A]) wireTable(side func(Hyperedge) []NodeID) (*coproduct.Functions, error) {
	lengths := array.EmptyNatural()
	flat := array.EmptyNatural()
	for _, he := range h.adjacency {
		ids := side(he)
		lengths.Append(len(ids))
		for _, v := range ids {
			flat.Append(int(v))
		}
	}

	values, err := finite.New(flat, h.nodes.Len())
	if err != nil {
		return nil, err
	}

	return coproduct.FromSemifinite(lengths, values)
}
