// File: finite/coequalizer_test.go
package finite_test

import (
	"testing"

	"github.com/katalvlaran/openhg/array"
	"github.com/katalvlaran/openhg/finite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parallel builds two parallel maps E → target from their tables.
func parallel(t *testing.T, left, right []int, target int) (*finite.Function, *finite.Function) {
	t.Helper()
	s, err := finite.New(array.NaturalOf(left...), target)
	require.NoError(t, err)
	tt, err := finite.New(array.NaturalOf(right...), target)
	require.NoError(t, err)

	return s, tt
}

// TestCoequalizer_TwoPairs verifies the canonical 4-node case: pairs
// (0,1) and (2,3) collapse into exactly 2 components with
// representatives numbered by first occurrence: q = [0,0,1,1].
func TestCoequalizer_TwoPairs(t *testing.T) {
	s, tt := parallel(t, []int{0, 2}, []int{1, 3}, 4)

	q, err := finite.Coequalizer(s, tt)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Target())
	assert.Equal(t, []int{0, 0, 1, 1}, q.Table().Slice())
}

// TestCoequalizer_Chain verifies transitive collapse: pairs (0,1),
// (1,2) merge {0,1,2} while 3 stays alone — q = [0,0,0,1].
func TestCoequalizer_Chain(t *testing.T) {
	s, tt := parallel(t, []int{0, 1}, []int{1, 2}, 4)

	q, err := finite.Coequalizer(s, tt)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Target())
	assert.Equal(t, []int{0, 0, 0, 1}, q.Table().Slice())
}

// TestCoequalizer_FirstOccurrenceOrder pins representative numbering:
// identifying (3,1) must still number components by the smallest old
// id encountered while scanning 0..n-1, giving q = [0,1,2,1].
func TestCoequalizer_FirstOccurrenceOrder(t *testing.T) {
	s, tt := parallel(t, []int{3}, []int{1}, 4)

	q, err := finite.Coequalizer(s, tt)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Target())
	assert.Equal(t, []int{0, 1, 2, 1}, q.Table().Slice())
}

// TestCoequalizer_NoPairs verifies the degenerate case: with no pairs
// the coequalizer is the identity.
func TestCoequalizer_NoPairs(t *testing.T) {
	s, tt := parallel(t, nil, nil, 3)

	q, err := finite.Coequalizer(s, tt)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Target())
	assert.Equal(t, []int{0, 1, 2}, q.Table().Slice())
}

// TestCoequalizer_SelfPairs verifies that reflexive pairs (v,v)
// collapse nothing.
func TestCoequalizer_SelfPairs(t *testing.T) {
	s, tt := parallel(t, []int{1, 2}, []int{1, 2}, 3)

	q, err := finite.Coequalizer(s, tt)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, q.Table().Slice())
}

// TestCoequalizer_Coherence verifies the defining property q∘s = q∘t
// on a denser pair graph.
func TestCoequalizer_Coherence(t *testing.T) {
	s, tt := parallel(t, []int{0, 4, 2, 5}, []int{4, 2, 0, 3}, 6)

	q, err := finite.Coequalizer(s, tt)
	require.NoError(t, err)

	qs, err := finite.Compose(s, q)
	require.NoError(t, err)
	qt, err := finite.Compose(tt, q)
	require.NoError(t, err)
	assert.Equal(t, qs.Table().Slice(), qt.Table().Slice(), "q∘s must equal q∘t pointwise")
}

// TestCoequalizer_NotParallel ensures shape disagreements are
// rejected.
func TestCoequalizer_NotParallel(t *testing.T) {
	s, err := finite.New(array.NaturalOf(0), 2)
	require.NoError(t, err)
	tt, err := finite.New(array.NaturalOf(0, 1), 2)
	require.NoError(t, err)

	_, err = finite.Coequalizer(s, tt)
	assert.ErrorIs(t, err, finite.ErrDomainMismatch)
}

// TestCoequalizerUniversal_Merge verifies label merging through the
// universal property: equal labels on identified positions survive,
// in representative order.
func TestCoequalizerUniversal_Merge(t *testing.T) {
	s, tt := parallel(t, []int{0, 2}, []int{1, 3}, 4)
	q, err := finite.Coequalizer(s, tt)
	require.NoError(t, err)

	labels := array.FromSlice([]string{"a", "a", "b", "b"})
	merged, err := finite.CoequalizerUniversal(q, labels)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, merged.Slice())
}

// TestCoequalizerUniversal_Inconsistent ensures disagreeing labels on
// identified positions are reported, not silently picked.
func TestCoequalizerUniversal_Inconsistent(t *testing.T) {
	s, tt := parallel(t, []int{0}, []int{1}, 2)
	q, err := finite.Coequalizer(s, tt)
	require.NoError(t, err)

	_, err = finite.CoequalizerUniversal(q, array.FromSlice([]string{"a", "b"}))
	assert.ErrorIs(t, err, finite.ErrInconsistentMerge)
}

// TestCoequalizerUniversal_ShapeChecks covers the length and
// surjectivity validations.
func TestCoequalizerUniversal_ShapeChecks(t *testing.T) {
	q, err := finite.Identity(3)
	require.NoError(t, err)

	_, err = finite.CoequalizerUniversal(q, array.FromSlice([]string{"a"}))
	assert.ErrorIs(t, err, finite.ErrDomainMismatch)

	// A non-surjective q leaves a new id unassigned.
	skip, err := finite.New(array.NaturalOf(0, 2), 3)
	require.NoError(t, err)
	_, err = finite.CoequalizerUniversal(skip, array.FromSlice([]string{"a", "b"}))
	assert.ErrorIs(t, err, finite.ErrDomainMismatch)
}
