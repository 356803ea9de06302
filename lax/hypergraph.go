package lax

import (
	"fmt"

	"github.com/katalvlaran/openhg/array"
)

// NodeID is an opaque handle for a node (wire): the index of the node
// in the builder's append-only arena. Handles are never reused and
// allocation is monotonic within one builder.
type NodeID int

// EdgeID is an opaque handle for a hyperedge: the index of the edge
// in the builder's append-only arena.
type EdgeID int

// Hyperedge connects an ordered list of source nodes to an ordered
// list of target nodes. Arities are independent and unrestricted.
type Hyperedge struct {
	Sources []NodeID
	Targets []NodeID
}

// Interface is the freshly allocated source/target node lists of an
// operation, returned by NewOperation so callers can wire further
// edges to those nodes.
type Interface struct {
	Sources []NodeID
	Targets []NodeID
}

// Hypergraph is an incremental, un-quotiented ("lax") hypergraph:
// a collection of labeled nodes and hyperedges plus a pending
// identification relation applied later by Quotient. The node-label
// type O must be comparable because quotienting merges labels by
// equality; edge labels are unconstrained.
//
// The zero value is not ready for use; construct via New.
type Hypergraph[O comparable, A any] struct {
	nodes     *array.Dense[O] // node labels, index = NodeID
	edges     *array.Dense[A] // edge labels, index = EdgeID
	adjacency []Hyperedge     // one entry per edge, same index space
	pendingL  []NodeID        // left column of pending identifications
	pendingR  []NodeID        // right column, same length as pendingL
}

// New returns an empty builder with no nodes, edges or pending
// identifications.
// Complexity: O(1).
func New[O comparable, A any]() *Hypergraph[O, A] {
	return &Hypergraph[O, A]{
		nodes: array.Empty[O](),
		edges: array.Empty[A](),
	}
}

// NodeCount reports the number of allocated nodes.
// Complexity: O(1).
func (h *Hypergraph[O, A]) NodeCount() int {
	return h.nodes.Len()
}

// EdgeCount reports the number of allocated hyperedges.
// Complexity: O(1).
func (h *Hypergraph[O, A]) EdgeCount() int {
	return h.edges.Len()
}

// PendingCount reports the number of recorded identification pairs
// not yet applied by Quotient.
// Complexity: O(1).
func (h *Hypergraph[O, A]) PendingCount() int {
	return len(h.pendingL)
}

// NodeLabel returns the label of node v.
// Returns ErrNodeRange for an unallocated handle.
// Complexity: O(1).
func (h *Hypergraph[O, A]) NodeLabel(v NodeID) (O, error) {
	if err := h.checkNode(v); err != nil {
		var zero O
		return zero, err
	}
	label, _ := h.nodes.Get(int(v))

	return label, nil
}

// EdgeLabel returns the label of edge e.
// Returns ErrEdgeRange for an unallocated handle.
// Complexity: O(1).
func (h *Hypergraph[O, A]) EdgeLabel(e EdgeID) (A, error) {
	if err := h.checkEdge(e); err != nil {
		var zero A
		return zero, err
	}
	label, _ := h.edges.Get(int(e))

	return label, nil
}

// Adjacency returns a copy of edge e's source/target node lists.
// Returns ErrEdgeRange for an unallocated handle.
// Complexity: O(arity).
func (h *Hypergraph[O, A]) Adjacency(e EdgeID) (Hyperedge, error) {
	if err := h.checkEdge(e); err != nil {
		return Hyperedge{}, err
	}
	he := h.adjacency[e]

	return Hyperedge{
		Sources: append([]NodeID(nil), he.Sources...),
		Targets: append([]NodeID(nil), he.Targets...),
	}, nil
}

// NewNode appends a single node labeled w and returns its handle.
// Complexity: O(1) amortized.
func (h *Hypergraph[O, A]) NewNode(w O) NodeID {
	id := NodeID(h.nodes.Len())
	h.nodes.Append(w)

	return id
}

// NewEdge appends a single hyperedge labeled x whose source and
// target nodes are supplied by he; the node lists are copied. Every
// referenced node must already be allocated, else ErrNodeRange is
// returned and the builder is unchanged.
// Complexity: O(arity) amortized.
func (h *Hypergraph[O, A]) NewEdge(x A, he Hyperedge) (EdgeID, error) {
	for _, v := range he.Sources {
		if err := h.checkNode(v); err != nil {
			return 0, fmt.Errorf("NewEdge source: %w", err)
		}
	}
	for _, v := range he.Targets {
		if err := h.checkNode(v); err != nil {
			return 0, fmt.Errorf("NewEdge target: %w", err)
		}
	}
	id := EdgeID(h.edges.Len())
	h.edges.Append(x)
	h.adjacency = append(h.adjacency, Hyperedge{
		Sources: append([]NodeID(nil), he.Sources...),
		Targets: append([]NodeID(nil), he.Targets...),
	})

	return id, nil
}

// NewOperation appends a "singleton" operation: one fresh node per
// entry of sourceTypes and targetTypes (existing nodes are never
// reused), then one edge labeled x referencing exactly those nodes.
// Returns the edge handle and the freshly allocated interface.
// Complexity: O(arity) amortized.
func (h *Hypergraph[O, A]) NewOperation(x A, sourceTypes, targetTypes []O) (EdgeID, Interface) {
	sources := make([]NodeID, len(sourceTypes))
	for i, t := range sourceTypes {
		sources[i] = h.NewNode(t)
	}
	targets := make([]NodeID, len(targetTypes))
	for i, t := range targetTypes {
		targets[i] = h.NewNode(t)
	}

	id := EdgeID(h.edges.Len())
	h.edges.Append(x)
	h.adjacency = append(h.adjacency, Hyperedge{
		Sources: append([]NodeID(nil), sources...),
		Targets: append([]NodeID(nil), targets...),
	})

	return id, Interface{Sources: sources, Targets: targets}
}

// Unify records the identification (v, w) in the pending relation.
// No label-compatibility check is performed — identification is
// deferred by design so construction and type inference can proceed
// independently; unifying nodes with incompatible labels surfaces as
// finite.ErrInconsistentMerge at Quotient time.
// Returns ErrNodeRange for an unallocated handle.
// Complexity: O(1) amortized.
func (h *Hypergraph[O, A]) Unify(v, w NodeID) error {
	if err := h.checkNode(v); err != nil {
		return fmt.Errorf("Unify: %w", err)
	}
	if err := h.checkNode(w); err != nil {
		return fmt.Errorf("Unify: %w", err)
	}
	h.pendingL = append(h.pendingL, v)
	h.pendingR = append(h.pendingR, w)

	return nil
}

// AddEdgeSource allocates a new node labeled w and appends it to edge
// e's source list, supporting variable-arity hyperedges built
// incrementally. Returns ErrEdgeRange for an unallocated edge.
// Complexity: O(1) amortized.
func (h *Hypergraph[O, A]) AddEdgeSource(e EdgeID, w O) (NodeID, error) {
	if err := h.checkEdge(e); err != nil {
		return 0, fmt.Errorf("AddEdgeSource: %w", err)
	}
	v := h.NewNode(w)
	h.adjacency[e].Sources = append(h.adjacency[e].Sources, v)

	return v, nil
}

// AddEdgeTarget allocates a new node labeled w and appends it to edge
// e's target list. Returns ErrEdgeRange for an unallocated edge.
// Complexity: O(1) amortized.
func (h *Hypergraph[O, A]) AddEdgeTarget(e EdgeID, w O) (NodeID, error) {
	if err := h.checkEdge(e); err != nil {
		return 0, fmt.Errorf("AddEdgeTarget: %w", err)
	}
	v := h.NewNode(w)
	h.adjacency[e].Targets = append(h.adjacency[e].Targets, v)

	return v, nil
}

// checkNode validates a node handle against the arena.
func (h *Hypergraph[O, A]) checkNode(v NodeID) error {
	if v < 0 || int(v) >= h.nodes.Len() {
		return fmt.Errorf("node %d with count %d: %w", v, h.nodes.Len(), ErrNodeRange)
	}

	return nil
}

// checkEdge validates an edge handle against the arena.
func (h *Hypergraph[O, A]) checkEdge(e EdgeID) error {
	if e < 0 || int(e) >= h.edges.Len() {
		return fmt.Errorf("edge %d with count %d: %w", e, h.edges.Len(), ErrEdgeRange)
	}

	return nil
}
