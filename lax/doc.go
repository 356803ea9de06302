// Package lax implements the incremental, un-quotiented hypergraph
// builder: nodes and hyperedges live in append-only arenas addressed
// by opaque NodeID/EdgeID handles, and node identifications are
// *recorded* (Unify) rather than applied, so construction and type
// inference can proceed independently.
//
// Lifecycle:
//
//	h := lax.New[string, string]()
//	x := h.NewNode("int")                   // allocate wires
//	e, iface, _ := h.NewOperation("add",    // fresh interface per call
//	        []string{"int", "int"}, []string{"int"})
//	h.Unify(x, iface.Sources[0])            // deferred identification
//	q, _ := h.Quotient()                    // collapse aliased nodes
//	g, _ := h.ToHypergraph()                // canonical record
//
// Quotient computes the coequalizer (connected components) of the
// pending pairs, merges labels through its universal property,
// rewrites every adjacency entry in one pass and clears the pending
// relation; a second call without intervening Unify is a no-op
// returning the identity. Label compatibility of identified nodes is
// a caller-established precondition — Unify never checks it, and an
// incompatible merge surfaces as finite.ErrInconsistentMerge at
// Quotient time, leaving the builder unchanged.
//
// Concurrency: a builder requires exclusive access while mutated
// (single writer); no internal locking is performed.
package lax
