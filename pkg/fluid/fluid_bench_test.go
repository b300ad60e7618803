package fluid

import "testing"

func newBenchFluid(b *testing.B) *Fluid {
	b.Helper()
	f, err := New(128, 0.0001, 0.0001)
	if err != nil {
		b.Fatal(err)
	}
	return f
}

func BenchmarkStep(b *testing.B) {
	f := newBenchFluid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step(0.1)
	}
}

// Sustained jet along the left wall, the worst case for advection spread.
func BenchmarkStepWithJet(b *testing.B) {
	f := newBenchFluid(b)
	n := f.Size()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := n/2 - 20; j < n/2+20; j++ {
			f.AddDensity(1, j, 1)
			f.AddVelocity(1, j, 0.05, 0)
		}
		f.Step(0.1)
	}
}

func BenchmarkProject(b *testing.B) {
	f := newBenchFluid(b)
	seedRadialField(f)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.project(f.vx, f.vy, f.vx0, f.vy0)
	}
}
