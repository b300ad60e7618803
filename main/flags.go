package main

import "flag"

// Command-line flags controlling the grid, the simulation constants, and
// optional runtime features.
var (
	// sizeFlag sets the square grid side length in cells.
	sizeFlag = flag.Int("size", defaultGridSize, "grid side length in cells (minimum 3)")

	// diffusionFlag sets the density diffusion rate.
	diffusionFlag = flag.Float64("diffusion", defaultDiffusion, "density diffusion rate")

	// viscosityFlag sets the velocity diffusion rate.
	viscosityFlag = flag.Float64("viscosity", defaultViscosity, "velocity viscosity")

	// dtFlag sets the fixed simulation timestep advanced per tick.
	dtFlag = flag.Float64("dt", defaultDt, "simulation timestep per tick")

	// fadeFlag sets the per-tick density retention factor; 1 disables fading.
	fadeFlag = flag.Float64("fade", defaultFade, "density retention per tick (0-1, 1 disables fading)")

	// emitterFlag toggles the wandering center emitter.
	emitterFlag = flag.Bool("emitter", true, "inject density and a wandering velocity impulse at the grid center")

	// turbScaleFlag scales the emitter impulse magnitude.
	turbScaleFlag = flag.Float64("turb-scale", defaultTurbScale, "emitter impulse strength")

	// turbSpeedFlag controls how quickly the emitter direction wanders.
	turbSpeedFlag = flag.Float64("turb-speed", defaultTurbSpeed, "emitter direction wander speed")

	// gradientFlag selects the density color ramp.
	gradientFlag = flag.String("gradient", "classic", "color ramp: classic, viridis, inferno, magma, plasma")

	// debugFlag enables the FPS, mass, and step timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, TPS, and step timing overlay")

	// listenFlag enables the websocket density stream on the given address.
	listenFlag = flag.String("listen", "", "serve density frames over websocket on this address (e.g. :8080)")
)
