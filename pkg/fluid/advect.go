package fluid

import "math"

// advect transports d0 into d along the velocity field (velocX, velocY): each
// interior cell traces backward by dt scaled to interior cells, clamps the
// traced position into [0.5, n-1.5] so the bilinear stencil stays inside the
// boundary ring, and resamples d0 there. Rows are independent (only the d0
// snapshot is read), so they run in parallel.
func (f *Fluid) advect(b bound, d, d0, velocX, velocY []float64, dt float64) {
	n := f.n
	dt0 := dt * float64(n-2)
	lo := 0.5
	hi := float64(n) - 1.5

	parallelRange(1, n-1, func(j int) {
		row := j * n
		for i := 1; i < n-1; i++ {
			idx := row + i
			x := float64(i) - dt0*velocX[idx]
			y := float64(j) - dt0*velocY[idx]
			if x < lo {
				x = lo
			} else if x > hi {
				x = hi
			}
			if y < lo {
				y = lo
			} else if y > hi {
				y = hi
			}

			i0 := int(math.Floor(x))
			i1 := i0 + 1
			j0 := int(math.Floor(y))
			j1 := j0 + 1

			s1 := x - float64(i0)
			s0 := 1 - s1
			t1 := y - float64(j0)
			t0 := 1 - t1

			d[idx] = s0*(t0*d0[f.ix(i0, j0)]+t1*d0[f.ix(i0, j1)]) +
				s1*(t0*d0[f.ix(i1, j0)]+t1*d0[f.ix(i1, j1)])
		}
	})
	f.setBoundary(b, d)
}
