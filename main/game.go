package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"fluidsim/pkg/fluid"
)

// Game owns the solver, the pixel buffer handed to ebiten, and the input
// state mapping the pointer onto grid cells.
type Game struct {
	sim  *fluid.Fluid
	size int
	dt   float64

	palette []color.RGBA
	pixels  []byte

	prevMouseX int
	prevMouseY int
	mouseDown  bool

	noise  *perlin.Perlin
	noiseT float64

	stats  fluid.StepStats
	server *streamServer
}

func newGame(sim *fluid.Fluid, palette []color.RGBA, server *streamServer) *Game {
	g := &Game{
		sim:     sim,
		size:    sim.Size(),
		dt:      *dtFlag,
		palette: palette,
		pixels:  make([]byte, sim.Size()*sim.Size()*4),
		noise:   perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, perlinSeed),
		server:  server,
	}
	sim.SetObserver(func(s fluid.StepStats) { g.stats = s })
	return g
}

// Update applies forcing from input and the emitter, advances the simulation
// one timestep, and hands the finished frame to the stream server.
func (g *Game) Update() error {
	g.handleMouse()
	if *emitterFlag {
		g.runEmitter()
	}

	g.sim.Step(g.dt)

	if *fadeFlag < 1 {
		g.sim.FadeDensity(*fadeFlag)
	}
	if g.server != nil {
		g.server.Broadcast(g.sim.Density())
	}
	return nil
}

// handleMouse turns a pressed cursor into a density splat and the drag delta
// into a velocity impulse. The window layout matches the grid, so cursor
// coordinates are grid coordinates; the solver clamps strays.
func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if pressed {
		g.sim.AddDensityRadius(x, y, brushDensity, brushRadius)
		if g.mouseDown {
			dx := float64(x-g.prevMouseX) * dragScale
			dy := float64(y-g.prevMouseY) * dragScale
			if dx != 0 || dy != 0 {
				g.sim.AddVelocityRadius(x, y, dx, dy, brushRadius)
			}
		}
	}

	g.prevMouseX, g.prevMouseY = x, y
	g.mouseDown = pressed
}

// runEmitter feeds the center source: a steady density puff plus a velocity
// impulse whose heading wanders through perlin noise, which keeps the plume
// curling instead of shooting out straight.
func (g *Game) runEmitter() {
	g.noiseT += *turbSpeedFlag * g.dt
	angle := g.noise.Noise1D(g.noiseT) * 2 * math.Pi
	impulse := *turbScaleFlag

	c := g.size / 2
	g.sim.AddDensityRadius(c, c, emitterDensity, emitterRadius)
	g.sim.AddVelocityRadius(c, c, math.Cos(angle)*impulse, math.Sin(angle)*impulse, emitterRadius)
}

// Draw maps density through the palette into the pixel buffer and blits it.
// Density is unbounded inside the solver; [0,1] clamping happens here, at the
// render boundary.
func (g *Game) Draw(screen *ebiten.Image) {
	values := g.sim.Density().Values()
	for i, v := range values {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		c := g.palette[int(v*float64(paletteSize-1))]
		base := i * 4
		g.pixels[base] = c.R
		g.pixels[base+1] = c.G
		g.pixels[base+2] = c.B
		g.pixels[base+3] = c.A
	}
	screen.WritePixels(g.pixels)

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nStep: %.2f ms\nMass: %.1f\nMax div: %.6f\nMax speed: %.4f",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.stats.Duration.Seconds()*1000, g.stats.TotalDensity,
			g.stats.MaxDivergence, g.stats.MaxSpeed)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size, one pixel per grid cell.
func (g *Game) Layout(_, _ int) (int, int) { return g.size, g.size }
