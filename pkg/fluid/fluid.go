package fluid

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Fluid is a 2D incompressible "stable fluids" solver on a square n×n grid.
// Rows and columns 0 and n-1 form the boundary ring; every interior update
// runs over [1, n-2]. Diffusion and the pressure solve use an implicit
// relaxation and advection never samples outside a clamped domain, so a step
// cannot diverge no matter how large the timestep is.
//
// A Fluid is the sole mutator of its own storage. Step must not run
// concurrently with anything reading the fields; take a Density or Velocity
// snapshot after Step returns and hand that to consumers instead.
type Fluid struct {
	n int

	diffusion float64
	viscosity float64

	density, density0 []float64
	vx, vx0           []float64
	vy, vy0           []float64

	observer func(StepStats)
}

// New allocates a solver for a size×size grid with the given diffusion and
// viscosity rates. The scheme needs a boundary ring around at least one
// interior cell, so size must be 3 or larger. Fields are zero-initialized and
// live for the solver's lifetime; they are never reallocated.
func New(size int, diffusion, viscosity float64) (*Fluid, error) {
	if size < 3 {
		return nil, fmt.Errorf("grid size must be at least 3, got %d", size)
	}
	cells := size * size
	return &Fluid{
		n:         size,
		diffusion: diffusion,
		viscosity: viscosity,
		density:   make([]float64, cells),
		density0:  make([]float64, cells),
		vx:        make([]float64, cells),
		vx0:       make([]float64, cells),
		vy:        make([]float64, cells),
		vy0:       make([]float64, cells),
	}, nil
}

// Size returns the grid side length.
func (f *Fluid) Size() int { return f.n }

// ix maps grid coordinates to the linear offset shared by every field slice.
// Callers clamp coordinates into [0, n-1] before calling.
func (f *Fluid) ix(x, y int) int { return x + y*f.n }

func fill[T any](slice []T, val T) {
	for i := range slice {
		slice[i] = val
	}
}

// Step advances velocity and density by dt: diffuse velocity, project,
// self-advect velocity, project again, then diffuse and advect density
// through the settled velocity field. The scratch buffers are overwritten
// freely within the call and hold nothing of value between calls.
func (f *Fluid) Step(dt float64) {
	var start time.Time
	if f.observer != nil {
		start = time.Now()
	}

	copy(f.vx0, f.vx)
	copy(f.vy0, f.vy)
	f.diffuse(boundVelX, f.vx, f.vx0, f.viscosity, dt)
	f.diffuse(boundVelY, f.vy, f.vy0, f.viscosity, dt)

	// The first projection clobbers vx0/vy0 as pressure and divergence
	// workspace, so the advection snapshot is taken afterwards.
	f.project(f.vx, f.vy, f.vx0, f.vy0)

	copy(f.vx0, f.vx)
	copy(f.vy0, f.vy)
	f.advect(boundVelX, f.vx, f.vx0, f.vx0, f.vy0, dt)
	f.advect(boundVelY, f.vy, f.vy0, f.vx0, f.vy0, dt)

	f.project(f.vx, f.vy, f.vx0, f.vy0)

	copy(f.density0, f.density)
	f.diffuse(boundDensity, f.density, f.density0, f.diffusion, dt)
	copy(f.density0, f.density)
	f.advect(boundDensity, f.density, f.density0, f.vx, f.vy, dt)

	if f.observer != nil {
		f.observer(StepStats{
			TotalDensity:  floats.Sum(f.density),
			MaxDivergence: f.MaxDivergence(),
			MaxSpeed:      f.maxSpeed(),
			Duration:      time.Since(start),
		})
	}
}

// Reset zeroes every field and scratch buffer.
func (f *Fluid) Reset() {
	fill(f.density, 0)
	fill(f.density0, 0)
	fill(f.vx, 0)
	fill(f.vx0, 0)
	fill(f.vy, 0)
	fill(f.vy0, 0)
}
