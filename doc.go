// Package openhg is an in-memory algebra for open hypergraphs —
// diagrams whose hyperedges connect ordered lists of typed wires —
// built from composable, backend-agnostic array primitives.
//
// 🚀 What is openhg?
//
//	A small, dependency-light library that brings together:
//		• Array kernel: flat-slice sequences with gather/scatter,
//		  prefix sums and segmented reductions
//		• Finite functions: total maps between finite ordinals,
//		  with composition and coequalizers (connected components)
//		• Indexed coproducts: segmented "list of lists" arrays with
//		  flatmap, tensor and payload remapping
//		• Lax hypergraphs: an incremental builder with deferred node
//		  identification, quotienting and canonical conversion
//
// ✨ Why choose openhg?
//
//   - Explicit invariants – every constructor validates its structural
//     invariant and returns a sentinel error instead of a broken value
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – integer-exact arithmetic, first-occurrence
//     canonical numbering, reproducible quotients
//
// Under the hood, everything is organized under five subpackages:
//
//	array/      — reference array backend (Dense[T], Natural)
//	finite/     — finite functions, coequalizer & universal property
//	coproduct/  — indexed coproducts (segmented arrays)
//	lax/        — incremental hypergraph builder + quotient
//	hypergraph/ — the canonical, immutable hypergraph record
//
// Quick ASCII example:
//
//	    x0 ──┐
//	         ├──[ f ]──> y0
//	    x1 ──┘
//
//	one hyperedge f with two ordered source wires and one target wire.
//
// Dive into the package docs for full examples; construction flows
// bottom-up (arrays → coproducts → builder) and finalization is a
// single quotient-then-convert step.
//
//	go get github.com/katalvlaran/openhg
package openhg
