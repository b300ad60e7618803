package main

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/colorgrad"
)

// buildPalette samples the named gradient into a fixed lookup table so the
// per-pixel cost in Draw is a single index.
func buildPalette(name string) ([]color.RGBA, error) {
	grad, err := gradientByName(name)
	if err != nil {
		return nil, err
	}
	pal := make([]color.RGBA, 0, paletteSize)
	for _, c := range grad.Colors(paletteSize) {
		r, g, b, a := c.RGBA()
		pal = append(pal, color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		})
	}
	return pal, nil
}

// gradientByName maps a flag value to a gradient. The classic ramp blends
// blue through red, the scheme the simulation has always rendered with.
func gradientByName(name string) (colorgrad.Gradient, error) {
	switch name {
	case "classic":
		return colorgrad.NewGradient().
			HtmlColors("#000004", "#0000ff", "#ff0000").
			Build()
	case "viridis":
		return colorgrad.Viridis(), nil
	case "inferno":
		return colorgrad.Inferno(), nil
	case "magma":
		return colorgrad.Magma(), nil
	case "plasma":
		return colorgrad.Plasma(), nil
	default:
		return colorgrad.Gradient{}, fmt.Errorf("unknown gradient %q", name)
	}
}
