// Package finite implements total functions between finite ordinals
// {0..n-1} → {0..m-1}, the mapping layer the coproduct and lax
// packages are built on.
//
// A Function is a table of Source() values, each strictly below
// Target(). The package provides:
//
//   - Constructors: New (validated), Identity, Constant, Initial
//   - Composition: Compose(f, g) = g ∘ f in diagram order
//   - Coequalizer(s, t): the coarsest map q with q∘s = q∘t, computed
//     as connected components over the pair graph (union-find with
//     path compression), representatives numbered by first occurrence
//   - CoequalizerUniversal(q, values): the unique array over q's
//     codomain consistent with q's identifications, failing with
//     ErrInconsistentMerge when identified positions disagree
//
// Coequalizers are what turn a pending node-identification relation
// into a canonical renumbering; see package lax for the consumer.
//
// Concurrency: a Function is immutable after construction and safe
// for concurrent readers.
package finite
