package main

import "time"

// Defaults and fixed tuning values for the interactive driver. Flag values
// override the defaults; the rest are compile-time constants.
const (
	defaultGridSize  = 256
	defaultDiffusion = 0.00002
	defaultViscosity = 0.00005
	defaultDt        = 0.1
	defaultFade      = 0.995
	defaultTurbScale = 0.2
	defaultTurbSpeed = 1.0

	windowScale = 3

	// Mouse brush: density splat per tick while pressed, velocity scaled from
	// the drag delta in cells.
	brushRadius  = 3
	brushDensity = 80.0
	dragScale    = 0.01

	// Center emitter footprint and output per tick.
	emitterRadius  = 2
	emitterDensity = 30.0

	paletteSize = 256

	// A stream client that cannot take a frame within this window is dropped
	// rather than allowed to stall the tick.
	streamWriteTimeout = time.Second

	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
	perlinSeed    = 1789
)
