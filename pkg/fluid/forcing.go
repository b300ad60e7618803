package fluid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AddDensity adds amount to the density at cell (x, y). Out-of-range
// coordinates are clamped to the nearest cell.
func (f *Fluid) AddDensity(x, y int, amount float64) {
	f.density[f.ix(f.clampCoord(x), f.clampCoord(y))] += amount
}

// AddVelocity adds (amountX, amountY) to the velocity at cell (x, y).
// Out-of-range coordinates are clamped to the nearest cell.
func (f *Fluid) AddVelocity(x, y int, amountX, amountY float64) {
	idx := f.ix(f.clampCoord(x), f.clampCoord(y))
	f.vx[idx] += amountX
	f.vy[idx] += amountY
}

// AddDensityRadius splats amount over a disc centered at (cx, cy) with
// Gaussian falloff.
func (f *Fluid) AddDensityRadius(cx, cy int, amount float64, radius int) {
	f.splat(cx, cy, radius, func(idx int, weight float64) {
		f.density[idx] += amount * weight
	})
}

// AddVelocityRadius splats a velocity impulse over a disc centered at
// (cx, cy) with Gaussian falloff.
func (f *Fluid) AddVelocityRadius(cx, cy int, amountX, amountY float64, radius int) {
	f.splat(cx, cy, radius, func(idx int, weight float64) {
		f.vx[idx] += amountX * weight
		f.vy[idx] += amountY * weight
	})
}

// splat visits every cell within radius of (cx, cy) with a Gaussian weight,
// exp(-3) at the rim so the edge lands at roughly 5% strength. Cells outside
// the grid are skipped rather than clamped, so a splat near a wall loses the
// part that would fall outside.
func (f *Fluid) splat(cx, cy, radius int, apply func(idx int, weight float64)) {
	if radius <= 0 {
		apply(f.ix(f.clampCoord(cx), f.clampCoord(cy)), 1)
		return
	}
	r2 := float64(radius * radius)
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= f.n || y < 0 || y >= f.n {
				continue
			}
			dx := float64(x - cx)
			dy := float64(y - cy)
			dist2 := dx*dx + dy*dy
			if dist2 > r2 {
				continue
			}
			apply(f.ix(x, y), math.Exp(-3.0*dist2/r2))
		}
	}
}

// FadeDensity scales the whole density field by factor, clamped into [0, 1].
// Drivers call this once per frame to keep injected smoke from accumulating
// forever.
func (f *Fluid) FadeDensity(factor float64) {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	floats.Scale(factor, f.density)
}

func (f *Fluid) clampCoord(v int) int {
	if v < 0 {
		return 0
	}
	if v >= f.n {
		return f.n - 1
	}
	return v
}
