package fluid

// Density returns a snapshot copy of the density field. Values are unbounded;
// clamping to a displayable range is the consumer's concern.
func (f *Fluid) Density() ScalarField {
	values := make([]float64, len(f.density))
	copy(values, f.density)
	return ScalarField{n: f.n, values: values}
}
