package fluid

// linearSolve relaxes x toward the solution of the neighbor-coupled implicit
// system x[i,j] = (x0[i,j] + a*sum4(x)) / c with a fixed budget of n
// Gauss-Seidel sweeps, re-applying the boundary rule after every sweep. The
// sweep runs in place, so each cell picks up neighbor values already updated
// this sweep. The fixed iteration count bounds the per-step cost; it is a
// convergence proxy, not a convergence test.
func (f *Fluid) linearSolve(b bound, x, x0 []float64, a, c float64) {
	n := f.n
	cRecip := 1.0 / c
	for sweep := 0; sweep < n; sweep++ {
		for j := 1; j < n-1; j++ {
			row := j * n
			for i := 1; i < n-1; i++ {
				idx := row + i
				x[idx] = (x0[idx] + a*(x[idx+1]+x[idx-1]+x[idx+n]+x[idx-n])) * cRecip
			}
		}
		f.setBoundary(b, x)
	}
}

// diffuse spreads x0 into x by solving the implicit heat equation with rate
// diff. a scales with the interior cell count, so the same rate behaves
// consistently across grid sizes; a of zero makes the solve an identity pass.
func (f *Fluid) diffuse(b bound, x, x0 []float64, diff, dt float64) {
	a := dt * diff * float64(f.n-2) * float64(f.n-2)
	f.linearSolve(b, x, x0, a, 1+4*a)
}

// project removes the divergent component of the velocity field: build the
// discrete divergence, relax the pressure Poisson system against it, then
// subtract the pressure gradient. p and div are caller-provided workspace;
// their prior contents are discarded.
func (f *Fluid) project(velocX, velocY, p, div []float64) {
	n := f.n
	nf := float64(n)

	parallelRange(1, n-1, func(j int) {
		row := j * n
		for i := 1; i < n-1; i++ {
			idx := row + i
			div[idx] = -0.5 * (velocX[idx+1] - velocX[idx-1] + velocY[idx+n] - velocY[idx-n]) / nf
			p[idx] = 0
		}
	})
	f.setBoundary(boundDensity, div)
	f.setBoundary(boundDensity, p)

	f.linearSolve(boundDensity, p, div, 1, 6)

	parallelRange(1, n-1, func(j int) {
		row := j * n
		for i := 1; i < n-1; i++ {
			idx := row + i
			velocX[idx] -= 0.5 * (p[idx+1] - p[idx-1]) * nf
			velocY[idx] -= 0.5 * (p[idx+n] - p[idx-n]) * nf
		}
	})
	f.setBoundary(boundVelX, velocX)
	f.setBoundary(boundVelY, velocY)
}
