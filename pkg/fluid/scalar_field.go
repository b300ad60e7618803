package fluid

import "fmt"

// ScalarField is a read-only snapshot of one scalar quantity over the grid,
// detached from the solver's storage. Taking a snapshot after Step returns is
// the consumer handoff: the next Step never touches it.
type ScalarField struct {
	n      int
	values []float64
}

// Size returns the grid side length.
func (s ScalarField) Size() int { return s.n }

// Value returns the field value at cell (x, y).
func (s ScalarField) Value(x, y int) (float64, error) {
	if x < 0 || x >= s.n {
		return 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", s.n-1)
	}
	if y < 0 || y >= s.n {
		return 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", s.n-1)
	}
	return s.values[x+y*s.n], nil
}

// Values returns the snapshot's cells in row-major order, offset x + y*Size.
// The slice belongs to the snapshot and is safe to read until discarded.
func (s ScalarField) Values() []float64 { return s.values }
