package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"fluidsim/pkg/fluid"
)

func main() {
	flag.Parse()

	sim, err := fluid.New(*sizeFlag, *diffusionFlag, *viscosityFlag)
	if err != nil {
		log.Fatal(err)
	}
	palette, err := buildPalette(*gradientFlag)
	if err != nil {
		log.Fatal(err)
	}

	var server *streamServer
	if *listenFlag != "" {
		server = newStreamServer(sim.Size())
		server.listen(*listenFlag)
	}

	ebiten.SetWindowSize(sim.Size()*windowScale, sim.Size()*windowScale)
	ebiten.SetWindowTitle("FluidSim")

	if err := ebiten.RunGame(newGame(sim, palette, server)); err != nil {
		log.Fatal(err)
	}
}
