package fluid

// bound selects the edge rule applied after an interior pass: plain copy of
// the adjacent interior value for scalar quantities, sign-flipped on the two
// edges perpendicular to a velocity component so flow never crosses a wall.
type bound int

const (
	boundDensity bound = iota
	boundVelX
	boundVelY
)

// setBoundary rewrites the boundary ring of x from its interior neighbors.
// Corners become the average of their two adjacent edge cells.
func (f *Fluid) setBoundary(b bound, x []float64) {
	n := f.n
	for i := 1; i < n-1; i++ {
		top := x[f.ix(i, 1)]
		bottom := x[f.ix(i, n-2)]
		if b == boundVelY {
			top, bottom = -top, -bottom
		}
		x[f.ix(i, 0)] = top
		x[f.ix(i, n-1)] = bottom
	}
	for j := 1; j < n-1; j++ {
		left := x[f.ix(1, j)]
		right := x[f.ix(n-2, j)]
		if b == boundVelX {
			left, right = -left, -right
		}
		x[f.ix(0, j)] = left
		x[f.ix(n-1, j)] = right
	}

	x[f.ix(0, 0)] = 0.5 * (x[f.ix(1, 0)] + x[f.ix(0, 1)])
	x[f.ix(0, n-1)] = 0.5 * (x[f.ix(1, n-1)] + x[f.ix(0, n-2)])
	x[f.ix(n-1, 0)] = 0.5 * (x[f.ix(n-2, 0)] + x[f.ix(n-1, 1)])
	x[f.ix(n-1, n-1)] = 0.5 * (x[f.ix(n-2, n-1)] + x[f.ix(n-1, n-2)])
}
