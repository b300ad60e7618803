package fluid

import "fmt"

// VectorField is a read-only snapshot of both velocity components, detached
// from the solver's storage.
type VectorField struct {
	n                int
	valuesX, valuesY []float64
}

// Size returns the grid side length.
func (v VectorField) Size() int { return v.n }

// Value returns the (x, y) velocity components at a cell.
func (v VectorField) Value(x, y int) (float64, float64, error) {
	if x < 0 || x >= v.n {
		return 0.0, 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", v.n-1)
	}
	if y < 0 || y >= v.n {
		return 0.0, 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", v.n-1)
	}
	idx := x + y*v.n
	return v.valuesX[idx], v.valuesY[idx], nil
}
