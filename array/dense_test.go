// File: array/dense_test.go
package array_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/openhg/array"
)

// TestDense_Construction covers Empty, Fill, FromSlice and the
// negative-count failure of Fill.
func TestDense_Construction(t *testing.T) {
	if n := array.Empty[string]().Len(); n != 0 {
		t.Fatalf("Empty length = %d; want 0", n)
	}

	filled, err := array.Fill("x", 3)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		v, err := filled.Get(i)
		if err != nil || v != "x" {
			t.Errorf("filled[%d] = (%q, %v); want (\"x\", nil)", i, v, err)
		}
	}

	if _, err = array.Fill("x", -1); !errors.Is(err, array.ErrInvalidRange) {
		t.Errorf("Fill(-1) error = %v; want ErrInvalidRange", err)
	}

	src := []int{1, 2, 3}
	a := array.FromSlice(src)
	src[0] = 99 // the array must own a copy
	if v, _ := a.Get(0); v != 1 {
		t.Errorf("FromSlice aliased its input: got %d; want 1", v)
	}
}

// TestDense_GetOutOfRange ensures out-of-domain indices are reported.
func TestDense_GetOutOfRange(t *testing.T) {
	a := array.FromSlice([]int{1, 2, 3})
	if _, err := a.Get(3); !errors.Is(err, array.ErrOutOfRange) {
		t.Errorf("Get(3) error = %v; want ErrOutOfRange", err)
	}
	if _, err := a.Get(-1); !errors.Is(err, array.ErrOutOfRange) {
		t.Errorf("Get(-1) error = %v; want ErrOutOfRange", err)
	}
}

// TestDense_Ranges covers GetRange/SetRange including the
// LengthMismatch and InvalidRange failures.
func TestDense_Ranges(t *testing.T) {
	a := array.FromSlice([]int{0, 1, 2, 3, 4})

	mid, err := a.GetRange(1, 4)
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}
	want := []int{1, 2, 3}
	for i, w := range want {
		if v, _ := mid.Get(i); v != w {
			t.Errorf("mid[%d] = %d; want %d", i, v, w)
		}
	}

	if _, err = a.GetRange(3, 2); !errors.Is(err, array.ErrInvalidRange) {
		t.Errorf("GetRange(3,2) error = %v; want ErrInvalidRange", err)
	}
	if _, err = a.GetRange(0, 6); !errors.Is(err, array.ErrInvalidRange) {
		t.Errorf("GetRange(0,6) error = %v; want ErrInvalidRange", err)
	}

	if err = a.SetRange(1, 3, array.FromSlice([]int{8, 9})); err != nil {
		t.Fatalf("SetRange failed: %v", err)
	}
	if v, _ := a.Get(1); v != 8 {
		t.Errorf("a[1] = %d after SetRange; want 8", v)
	}
	if v, _ := a.Get(2); v != 9 {
		t.Errorf("a[2] = %d after SetRange; want 9", v)
	}

	err = a.SetRange(1, 3, array.FromSlice([]int{8}))
	if !errors.Is(err, array.ErrLengthMismatch) {
		t.Errorf("short SetRange error = %v; want ErrLengthMismatch", err)
	}
}

// TestDense_Concatenate verifies a-then-b ordering and input
// preservation.
func TestDense_Concatenate(t *testing.T) {
	a := array.FromSlice([]int{1, 2})
	b := array.FromSlice([]int{3})

	c := a.Concatenate(b)
	if c.Len() != 3 {
		t.Fatalf("concat length = %d; want 3", c.Len())
	}
	for i, w := range []int{1, 2, 3} {
		if v, _ := c.Get(i); v != w {
			t.Errorf("c[%d] = %d; want %d", i, v, w)
		}
	}
	if a.Len() != 2 || b.Len() != 1 {
		t.Errorf("inputs modified: lens %d, %d; want 2, 1", a.Len(), b.Len())
	}
}

// TestDense_Gather verifies random-access reads, result length and
// the out-of-range failure.
func TestDense_Gather(t *testing.T) {
	a := array.FromSlice([]string{"a", "b", "c"})

	g, err := a.Gather(array.NaturalOf(2, 0, 2, 1))
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for i, w := range []string{"c", "a", "c", "b"} {
		if v, _ := g.Get(i); v != w {
			t.Errorf("g[%d] = %q; want %q", i, v, w)
		}
	}

	if _, err = a.Gather(array.NaturalOf(3)); !errors.Is(err, array.ErrOutOfRange) {
		t.Errorf("Gather(3) error = %v; want ErrOutOfRange", err)
	}
}

// TestDense_Scatter pins the literal scatter contract: for each index
// i in idx, a[i] = v[i] — the value is read from v at the *target*
// index, not paired positionally with idx. With idx [2,0] and
// v [10,20,30], positions 2 and 0 must become 30 and 10 (a positional
// pairing would have written 10 and 20 instead).
func TestDense_Scatter(t *testing.T) {
	a := array.FromSlice([]int{0, 0, 0})
	v := array.FromSlice([]int{10, 20, 30})

	if err := a.Scatter(array.NaturalOf(2, 0), v); err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}
	for i, w := range []int{10, 0, 30} {
		if got, _ := a.Get(i); got != w {
			t.Errorf("a[%d] = %d; want %d", i, got, w)
		}
	}
}

// TestDense_Scatter_NoPartialWrites ensures a failed scatter leaves
// the receiver unchanged: indices are validated up front.
func TestDense_Scatter_NoPartialWrites(t *testing.T) {
	a := array.FromSlice([]int{1, 2, 3})
	v := array.FromSlice([]int{9, 9, 9})

	err := a.Scatter(array.NaturalOf(0, 7), v)
	if !errors.Is(err, array.ErrOutOfRange) {
		t.Fatalf("Scatter error = %v; want ErrOutOfRange", err)
	}
	for i, w := range []int{1, 2, 3} {
		if got, _ := a.Get(i); got != w {
			t.Errorf("a[%d] = %d after failed Scatter; want %d", i, got, w)
		}
	}
}

// TestDense_AppendClone covers the append-only growth path used by
// the lax arenas and deep-copy semantics of Clone.
func TestDense_AppendClone(t *testing.T) {
	a := array.Empty[int]()
	for i := 0; i < 4; i++ {
		a.Append(i * i)
	}
	if a.Len() != 4 {
		t.Fatalf("length after appends = %d; want 4", a.Len())
	}

	c := a.Clone()
	a.Append(100)
	if c.Len() != 4 {
		t.Errorf("clone length = %d after source append; want 4", c.Len())
	}
	if v, _ := c.Get(3); v != 9 {
		t.Errorf("clone[3] = %d; want 9", v)
	}
}
