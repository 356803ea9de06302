package finite

import (
	"fmt"

	"github.com/katalvlaran/openhg/array"
)

// Function is a total map between finite ordinals {0..Source-1} →
// {0..Target-1}, stored as a table of Source values each strictly
// below Target. Immutable after construction; construct via New,
// Identity, Constant or Initial.
type Function struct {
	table  *array.Natural // table[i] is the image of i
	target int            // codomain size; every table entry < target
}

// New constructs a finite function from a table and a declared target.
// The table is cloned, so later mutation of the argument does not
// affect the function. Returns ErrBadTarget if target < 0 or any
// table entry falls outside [0, target).
// Complexity: O(Source).
func New(table *array.Natural, target int) (*Function, error) {
	if target < 0 {
		return nil, fmt.Errorf("New with target %d: %w", target, ErrBadTarget)
	}
	for i, x := range table.Slice() {
		if x < 0 || x >= target {
			return nil, fmt.Errorf("New: table[%d] = %d with target %d: %w", i, x, target, ErrBadTarget)
		}
	}

	return &Function{table: table.Clone(), target: target}, nil
}

// Identity returns the identity function on {0..n-1}.
// Returns ErrBadTarget if n < 0.
// Complexity: O(n).
func Identity(n int) (*Function, error) {
	table, err := array.Arange(0, n)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadTarget)
	}

	return &Function{table: table, target: n}, nil
}

// Constant returns the function {0..source-1} → {0..target-1} sending
// every element to value. Returns ErrBadTarget if source or target is
// negative, or if source > 0 and value is outside [0, target).
// Complexity: O(source).
func Constant(source, target, value int) (*Function, error) {
	if source < 0 || target < 0 {
		return nil, fmt.Errorf("Constant(%d, %d, %d): %w", source, target, value, ErrBadTarget)
	}
	if source > 0 && (value < 0 || value >= target) {
		return nil, fmt.Errorf("Constant(%d, %d, %d): %w", source, target, value, ErrBadTarget)
	}
	table, err := array.FillNatural(value, source)
	if err != nil {
		return nil, fmt.Errorf("Constant(%d, %d, %d): %w", source, target, value, ErrBadTarget)
	}

	return &Function{table: table, target: target}, nil
}

// Initial returns the unique function from the empty ordinal into
// {0..target-1}. Returns ErrBadTarget if target < 0.
// Complexity: O(1).
func Initial(target int) (*Function, error) {
	return Constant(0, target, 0)
}

// Source reports the domain size.
// Complexity: O(1).
func (f *Function) Source() int {
	return f.table.Len()
}

// Len aliases Source, letting a Function serve as an indexed-coproduct
// payload (one payload element per domain position).
// Complexity: O(1).
func (f *Function) Len() int {
	return f.table.Len()
}

// Target reports the codomain size.
// Complexity: O(1).
func (f *Function) Target() int {
	return f.target
}

// Table borrows the underlying value table for read access.
// Complexity: O(1).
func (f *Function) Table() *array.Natural {
	return f.table
}

// Apply evaluates the function at i.
// Returns array.ErrOutOfRange if i is outside [0, Source).
// Complexity: O(1).
func (f *Function) Apply(i int) (int, error) {
	return f.table.Get(i)
}

// Compose returns the diagram-order composite f;g, i.e. the function
// sending i to g(f(i)). Returns ErrDomainMismatch unless f.Target()
// == g.Source().
// Complexity: O(f.Source()).
func Compose(f, g *Function) (*Function, error) {
	if f.Target() != g.Source() {
		return nil, fmt.Errorf("Compose with target %d, source %d: %w", f.Target(), g.Source(), ErrDomainMismatch)
	}
	// f's table is an index array into g's table, so composition is a gather.
	table, err := g.table.Gather(f.table)
	if err != nil {
		return nil, fmt.Errorf("Compose: %w", err)
	}

	return &Function{table: table, target: g.target}, nil
}
