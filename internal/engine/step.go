// Package engine implements the cellular-automaton timestep, the
// deterministic risk surface, the Monte Carlo ensemble, and the summary
// statistics that together drive the bushfire grid.
package engine

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/redgum-labs/firesim/internal/spread"
	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/weather"
)

// ErrInvalidWeather is returned by Step when the weather record fails its
// own bounds validation; the grid is left untouched.
var ErrInvalidWeather = errors.New("engine: invalid weather")

// Step advances the grid by one synchronous, double-buffered timestep under
// the given weather and dt. Every source cell's read state comes from the
// grid as it stood at the start of the call; writes land in a private
// write buffer that is only swapped into the grid once every cell has been
// processed, so no step observes a partial update. Workers bounds the
// number of cells processed concurrently, defaulting to runtime.NumCPU()
// when <= 0.
func Step(g *terrain.Grid, w weather.Condition, dt float64, workers int) error {
	if err := w.Validate(); err != nil {
		return errors.Join(ErrInvalidWeather, err)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	readOnly := g.Cells()
	n := len(readOnly)
	writeBuf := make([]terrain.Cell, n)
	copy(writeBuf, readOnly)

	ignite := make([]atomic.Bool, n)

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx := 0; idx < n; idx++ {
		source := readOnly[idx]
		if !source.IsIgnited {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, source terrain.Cell) {
			defer wg.Done()
			defer func() { <-sem }()

			x := idx % g.Width
			y := idx / g.Width

			consumed := spread.ConsumptionPerTimestep(source.FuelLoad) * dt
			fuelRemaining := source.FuelRemaining - consumed
			if fuelRemaining < 0 {
				fuelRemaining = 0
			}
			burnIntensity := spread.BurnIntensity(source.FuelLoad, fuelRemaining)

			writeBuf[idx].FuelRemaining = fuelRemaining
			writeBuf[idx].BurnIntensity = burnIntensity
			if fuelRemaining < terrain.FuelExtinguishThreshold {
				// A cell that burns out consumes its residual fuel.
				writeBuf[idx].FuelRemaining = 0
				writeBuf[idx].IsIgnited = false
				writeBuf[idx].BurnIntensity = 0
			}

			for _, nb := range g.Neighbours(x, y) {
				nIdx := g.Index(nb[0], nb[1])
				neighbour := readOnly[nIdx]
				if neighbour.IsIgnited || neighbour.FuelRemaining <= terrain.FuelExtinguishThreshold {
					continue
				}
				bearing := terrain.Bearing(x, y, nb[0], nb[1])
				elevDelta := neighbour.Elevation - source.Elevation
				rate := spread.Rate(neighbour, bearing, elevDelta, w)
				p := spread.IgnitionProbability(rate, dt)
				if g.RNG().Float64() < p {
					ignite[nIdx].Store(true)
				}
			}
		}(idx, source)
	}

	wg.Wait()

	for idx := range writeBuf {
		if ignite[idx].Load() {
			writeBuf[idx].IsIgnited = true
		}
		writeBuf[idx].EnforceInvariants()
	}

	copy(readOnly, writeBuf)
	return nil
}
