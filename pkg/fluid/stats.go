package fluid

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// StepStats summarizes one completed Step for an installed observer.
type StepStats struct {
	// TotalDensity is the density summed over every cell.
	TotalDensity float64
	// MaxDivergence is the largest interior divergence magnitude left after
	// the final projection.
	MaxDivergence float64
	// MaxSpeed is the largest velocity magnitude on the grid.
	MaxSpeed float64
	// Duration is the wall-clock time the step took.
	Duration time.Duration
}

// SetObserver installs fn to run at the end of every Step with that step's
// statistics; nil removes the hook. Statistics are computed only while an
// observer is installed, keeping instrumentation out of the numerical path.
func (f *Fluid) SetObserver(fn func(StepStats)) { f.observer = fn }

// TotalDensity sums the density over every cell.
func (f *Fluid) TotalDensity() float64 { return floats.Sum(f.density) }

// MaxDivergence returns the largest interior divergence magnitude, measured
// with the same discrete operator the projection step solves against.
func (f *Fluid) MaxDivergence() float64 {
	n := f.n
	nf := float64(n)
	maxDiv := 0.0
	for j := 1; j < n-1; j++ {
		row := j * n
		for i := 1; i < n-1; i++ {
			idx := row + i
			div := math.Abs(-0.5 * (f.vx[idx+1] - f.vx[idx-1] + f.vy[idx+n] - f.vy[idx-n]) / nf)
			if div > maxDiv {
				maxDiv = div
			}
		}
	}
	return maxDiv
}

func (f *Fluid) maxSpeed() float64 {
	maxSq := 0.0
	for i := range f.vx {
		sq := f.vx[i]*f.vx[i] + f.vy[i]*f.vy[i]
		if sq > maxSq {
			maxSq = sq
		}
	}
	return math.Sqrt(maxSq)
}
