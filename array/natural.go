// Package array: Natural is the index-array specialization of the
// reference backend, carrying the numeric kernel (prefix sums,
// segmented reductions, elementwise arithmetic) that the finite,
// coproduct and lax packages are built on.

package array

import "fmt"

// Natural is an owned, mutable, ordered sequence of non-negative
// ints, used wherever the library manipulates indices, segment
// lengths or offsets. Construct via EmptyNatural, NaturalOf,
// FillNatural or Arange. Operations that produce index material
// (CumulativeSum, Arange, Repeat) keep all values non-negative given
// non-negative inputs; constructors validate counts but individual
// element writes are the caller's responsibility.
type Natural struct {
	data []int // flat backing storage
}

// EmptyNatural returns a new Natural of length zero.
// Complexity: O(1).
func EmptyNatural() *Natural {
	return &Natural{}
}

// NaturalOf returns a new Natural holding a copy of xs.
// Complexity: O(len(xs)).
func NaturalOf(xs ...int) *Natural {
	data := make([]int, len(xs))
	copy(data, xs)

	return &Natural{data: data}
}

// FillNatural returns a new Natural of length n with every element x.
// Returns ErrInvalidRange if n < 0.
// Complexity: O(n).
func FillNatural(x, n int) (*Natural, error) {
	if n < 0 {
		return nil, fmt.Errorf("FillNatural(%d): %w", n, ErrInvalidRange)
	}
	data := make([]int, n)
	for i := range data {
		data[i] = x
	}

	return &Natural{data: data}, nil
}

// Arange returns the contiguous increasing sequence
// [start, start+1, ..., stop-1] of length stop-start.
// Returns ErrInvalidRange if stop < start.
// Complexity: O(stop-start).
func Arange(start, stop int) (*Natural, error) {
	if stop < start {
		return nil, fmt.Errorf("Arange(%d, %d): %w", start, stop, ErrInvalidRange)
	}
	data := make([]int, stop-start)
	for i := range data {
		data[i] = start + i
	}

	return &Natural{data: data}, nil
}

// Len reports the number of elements.
// Complexity: O(1).
func (a *Natural) Len() int {
	return len(a.data)
}

// Get retrieves the element at index i.
// Returns ErrOutOfRange if i is outside [0, Len).
// Complexity: O(1).
func (a *Natural) Get(i int) (int, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("Get(%d) with len %d: %w", i, len(a.data), ErrOutOfRange)
	}

	return a.data[i], nil
}

// GetRange returns a copy of the contiguous subrange [lo, hi).
// Returns ErrInvalidRange unless 0 ≤ lo ≤ hi ≤ Len.
// Complexity: O(hi-lo).
func (a *Natural) GetRange(lo, hi int) (*Natural, error) {
	if lo < 0 || hi < lo || hi > len(a.data) {
		return nil, fmt.Errorf("GetRange(%d, %d) with len %d: %w", lo, hi, len(a.data), ErrInvalidRange)
	}

	return NaturalOf(a.data[lo:hi]...), nil
}

// SetRange overwrites the contiguous subrange [lo, hi) with the
// elements of v. Returns ErrInvalidRange on malformed bounds and
// ErrLengthMismatch unless v.Len() == hi-lo. The receiver is
// unchanged on failure.
// Complexity: O(hi-lo).
func (a *Natural) SetRange(lo, hi int, v *Natural) error {
	if lo < 0 || hi < lo || hi > len(a.data) {
		return fmt.Errorf("SetRange(%d, %d) with len %d: %w", lo, hi, len(a.data), ErrInvalidRange)
	}
	if v.Len() != hi-lo {
		return fmt.Errorf("SetRange(%d, %d) with value len %d: %w", lo, hi, v.Len(), ErrLengthMismatch)
	}
	copy(a.data[lo:hi], v.data)

	return nil
}

// Concatenate returns a new Natural holding the elements of a
// followed by the elements of b.
// Complexity: O(a.Len() + b.Len()).
func (a *Natural) Concatenate(b *Natural) *Natural {
	data := make([]int, 0, len(a.data)+len(b.data))
	data = append(data, a.data...)
	data = append(data, b.data...)

	return &Natural{data: data}
}

// Gather returns a new Natural r with r[k] = a[idx[k]] for every k.
// Returns ErrOutOfRange if any index is outside [0, Len).
// Complexity: O(idx.Len()).
func (a *Natural) Gather(idx *Natural) (*Natural, error) {
	data := make([]int, idx.Len())
	for k, i := range idx.data {
		if i < 0 || i >= len(a.data) {
			return nil, fmt.Errorf("Gather index %d with len %d: %w", i, len(a.data), ErrOutOfRange)
		}
		data[k] = a.data[i]
	}

	return &Natural{data: data}, nil
}

// Scatter writes a[i] = v[i] for every i in idx, reading the value
// from v at the *target* index (see Dense.Scatter for the full
// contract). All indices are validated before the first write.
// Complexity: O(idx.Len()).
func (a *Natural) Scatter(idx *Natural, v *Natural) error {
	for _, i := range idx.data {
		if i < 0 || i >= len(a.data) {
			return fmt.Errorf("Scatter index %d with len %d: %w", i, len(a.data), ErrOutOfRange)
		}
		if i >= v.Len() {
			return fmt.Errorf("Scatter index %d with value len %d: %w", i, v.Len(), ErrOutOfRange)
		}
	}
	for _, i := range idx.data {
		a.data[i] = v.data[i]
	}

	return nil
}

// Append pushes one element onto the end of the array.
// Complexity: O(1) amortized.
func (a *Natural) Append(x int) {
	a.data = append(a.data, x)
}

// Clone returns a deep copy of the array.
// Complexity: O(Len).
func (a *Natural) Clone() *Natural {
	return NaturalOf(a.data...)
}

// Slice borrows the backing storage for read access. Callers must not
// mutate the returned slice while the array is in use.
// Complexity: O(1).
func (a *Natural) Slice() []int {
	return a.data
}

// Max returns the maximum element and true, or (0, false) when the
// array is empty.
// Complexity: O(Len).
func (a *Natural) Max() (int, bool) {
	if len(a.data) == 0 {
		return 0, false
	}
	m := a.data[0]
	for _, x := range a.data[1:] {
		if x > m {
			m = x
		}
	}

	return m, true
}

// Sum returns the sum of all elements (0 when empty).
// Complexity: O(Len).
func (a *Natural) Sum() int {
	s := 0
	for _, x := range a.data {
		s += x
	}

	return s
}

// QuotRem performs elementwise integer division by d, returning the
// quotients and remainders as two new arrays.
// Returns ErrDivisionByZero if d == 0.
// Complexity: O(Len).
func (a *Natural) QuotRem(d int) (*Natural, *Natural, error) {
	if d == 0 {
		return nil, nil, fmt.Errorf("QuotRem: %w", ErrDivisionByZero)
	}
	q := make([]int, len(a.data))
	r := make([]int, len(a.data))
	for i, s := range a.data {
		q[i] = s / d
		r[i] = s % d
	}

	return &Natural{data: q}, &Natural{data: r}, nil
}

// MulConstantAdd returns the elementwise combination a[i]*c + x[i].
// Returns ErrLengthMismatch unless x.Len() == Len.
// Complexity: O(Len).
func (a *Natural) MulConstantAdd(c int, x *Natural) (*Natural, error) {
	if x.Len() != len(a.data) {
		return nil, fmt.Errorf("MulConstantAdd with lens %d, %d: %w", len(a.data), x.Len(), ErrLengthMismatch)
	}
	data := make([]int, len(a.data))
	for i, s := range a.data {
		data[i] = s*c + x.data[i]
	}

	return &Natural{data: data}, nil
}

// CumulativeSum returns the exclusive prefix sums of the array: the
// result has length Len+1, starts at 0, and ends with the total sum.
// For non-negative inputs the result is non-decreasing, which makes
// it a valid offsets table for segmented structures.
//
//	NaturalOf(1, 2, 3, 4).CumulativeSum()  // [0, 1, 3, 6, 10]
//
// Complexity: O(Len).
func (a *Natural) CumulativeSum() *Natural {
	data := make([]int, 0, len(a.data)+1)
	acc := 0
	for _, x := range a.data {
		data = append(data, acc)
		acc += x
	}
	data = append(data, acc) // trailing total

	return &Natural{data: data}
}

// Repeat treats the receiver as per-value counts and expands
// values[i] into counts[i] consecutive copies; the result length is
// Sum(). Returns ErrLengthMismatch unless values.Len() == Len, and
// ErrInvalidRange if any count is negative.
//
//	NaturalOf(1, 2, 0, 3).Repeat(NaturalOf(5, 6, 7, 8))  // [5, 6, 6, 8, 8, 8]
//
// Complexity: O(Len + Sum()).
func (a *Natural) Repeat(values *Natural) (*Natural, error) {
	if values.Len() != len(a.data) {
		return nil, fmt.Errorf("Repeat with lens %d, %d: %w", len(a.data), values.Len(), ErrLengthMismatch)
	}
	var data []int
	for i, k := range a.data {
		if k < 0 {
			return nil, fmt.Errorf("Repeat count %d at %d: %w", k, i, ErrInvalidRange)
		}
		for j := 0; j < k; j++ {
			data = append(data, values.data[i])
		}
	}

	return &Natural{data: data}, nil
}

// SegmentedSum treats the receiver as a table of segment lengths
// partitioning x, and returns the per-segment sums: result[i] is the
// sum of the a[i] consecutive elements of x belonging to segment i.
// The result length equals Len. Returns ErrLengthMismatch unless
// Sum() == x.Len(), and ErrInvalidRange if any segment length is
// negative.
// Complexity: O(Len + x.Len()).
func (a *Natural) SegmentedSum(x *Natural) (*Natural, error) {
	if a.Sum() != x.Len() {
		return nil, fmt.Errorf("SegmentedSum with total %d, value len %d: %w", a.Sum(), x.Len(), ErrLengthMismatch)
	}
	data := make([]int, len(a.data))
	pos := 0
	for i, n := range a.data {
		if n < 0 {
			return nil, fmt.Errorf("SegmentedSum length %d at %d: %w", n, i, ErrInvalidRange)
		}
		s := 0
		for j := 0; j < n; j++ {
			s += x.data[pos]
			pos++
		}
		data[i] = s
	}

	return &Natural{data: data}, nil
}

// Add returns the elementwise sum a[i] + b[i].
// Returns ErrLengthMismatch unless b.Len() == Len.
// Complexity: O(Len).
func (a *Natural) Add(b *Natural) (*Natural, error) {
	if b.Len() != len(a.data) {
		return nil, fmt.Errorf("Add with lens %d, %d: %w", len(a.data), b.Len(), ErrLengthMismatch)
	}
	data := make([]int, len(a.data))
	for i, x := range a.data {
		data[i] = x + b.data[i]
	}

	return &Natural{data: data}, nil
}

// Sub returns the elementwise difference a[i] - b[i].
// Returns ErrLengthMismatch unless b.Len() == Len.
// Complexity: O(Len).
func (a *Natural) Sub(b *Natural) (*Natural, error) {
	if b.Len() != len(a.data) {
		return nil, fmt.Errorf("Sub with lens %d, %d: %w", len(a.data), b.Len(), ErrLengthMismatch)
	}
	data := make([]int, len(a.data))
	for i, x := range a.data {
		data[i] = x - b.data[i]
	}

	return &Natural{data: data}, nil
}

// AddConst returns the scalar broadcast c + a[i].
// Complexity: O(Len).
func (a *Natural) AddConst(c int) *Natural {
	data := make([]int, len(a.data))
	for i, x := range a.data {
		data[i] = x + c
	}

	return &Natural{data: data}
}
