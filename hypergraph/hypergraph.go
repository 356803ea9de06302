// Package hypergraph defines the canonical, immutable hypergraph
// record produced by finalizing a lax builder: two indexed coproducts
// (per-edge source and target wires) plus node and edge label arrays.

package hypergraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/openhg/array"
	"github.com/katalvlaran/openhg/coproduct"
)

// ErrInvalidHypergraph indicates that the supplied parts disagree:
// segment counts differ between directions or from the edge-label
// array, or a wire table's codomain differs from the node count.
var ErrInvalidHypergraph = errors.New("hypergraph: inconsistent parts")

// Hypergraph is a canonical open hypergraph: every hyperedge e
// connects the ordered node list Sources segment e to the ordered
// node list Targets segment e, and the label arrays assign one label
// per node and per edge. Immutable by convention — accessors hand out
// the stored structures, which callers must not mutate.
//
// Higher-level categorical operators (tensor/compose of whole
// hypergraphs) are out of scope at this layer.
type Hypergraph[O comparable, A any] struct {
	sources *coproduct.Functions // per-edge source wires, indices < NodeCount
	targets *coproduct.Functions // per-edge target wires, indices < NodeCount
	nodes   *array.Dense[O]      // node labels, index = node id
	edges   *array.Dense[A]      // edge labels, index = edge id
}

// New bundles the four parts into a canonical record after checking
// their shapes: both wire tables must have one segment per edge label
// and map into the node-label index space.
// Returns ErrInvalidHypergraph on any disagreement.
// Complexity: O(1).
func New[O comparable, A any](
	sources, targets *coproduct.Functions,
	nodes *array.Dense[O],
	edges *array.Dense[A],
) (*Hypergraph[O, A], error) {
	if sources.Len() != edges.Len() || targets.Len() != edges.Len() {
		return nil, fmt.Errorf("New with %d source, %d target segments for %d edges: %w",
			sources.Len(), targets.Len(), edges.Len(), ErrInvalidHypergraph)
	}
	if sources.Values().Target() != nodes.Len() || targets.Values().Target() != nodes.Len() {
		return nil, fmt.Errorf("New with wire codomains %d, %d for %d nodes: %w",
			sources.Values().Target(), targets.Values().Target(), nodes.Len(), ErrInvalidHypergraph)
	}

	return &Hypergraph[O, A]{sources: sources, targets: targets, nodes: nodes, edges: edges}, nil
}

// Sources returns the per-edge source-wire coproduct.
func (h *Hypergraph[O, A]) Sources() *coproduct.Functions { return h.sources }

// Targets returns the per-edge target-wire coproduct.
func (h *Hypergraph[O, A]) Targets() *coproduct.Functions { return h.targets }

// NodeLabels returns the node-label array (index = node id).
func (h *Hypergraph[O, A]) NodeLabels() *array.Dense[O] { return h.nodes }

// EdgeLabels returns the edge-label array (index = edge id).
func (h *Hypergraph[O, A]) EdgeLabels() *array.Dense[A] { return h.edges }

// NodeCount reports the number of nodes.
// Complexity: O(1).
func (h *Hypergraph[O, A]) NodeCount() int { return h.nodes.Len() }

// EdgeCount reports the number of hyperedges.
// Complexity: O(1).
func (h *Hypergraph[O, A]) EdgeCount() int { return h.edges.Len() }
