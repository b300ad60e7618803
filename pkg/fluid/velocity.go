package fluid

// Velocity returns a snapshot copy of both velocity components.
func (f *Fluid) Velocity() VectorField {
	valuesX := make([]float64, len(f.vx))
	copy(valuesX, f.vx)
	valuesY := make([]float64, len(f.vy))
	copy(valuesY, f.vy)
	return VectorField{
		n:       f.n,
		valuesX: valuesX,
		valuesY: valuesY,
	}
}
