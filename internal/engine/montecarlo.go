package engine

import (
	"runtime"
	"sync"

	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/weather"
)

// MonteCarloTrialSteps is the fixed number of timesteps run per trial.
const MonteCarloTrialSteps = 100

// MonteCarloDT is the fixed timestep length used by every trial.
const MonteCarloDT = 0.1

// MonteCarloOptions configures MonteCarlo's concurrency and observability.
type MonteCarloOptions struct {
	// Workers bounds the number of trials run concurrently; <=0 defaults to
	// runtime.NumCPU().
	Workers int
	// Progress, when non-nil, is invoked after each trial completes with
	// the number of trials done so far and the total trial count. Callers
	// needing a visual indicator (cmd/firesweep) supply their own bar here
	// rather than the engine importing one.
	Progress func(done, total int)
}

// MonteCarlo runs n independent trials, each starting from a deep clone of
// the owning grid seeded with the trial index, igniting a uniformly random
// (scenario, ignition) pair drawn from the trial's own PRNG, and running
// MonteCarloTrialSteps timesteps. It returns the fraction of trials in
// which each cell ended burned (fuel_remaining < terrain.BurnedThreshold).
//
// Aggregation uses trial-local shadow buffers, each summed and divided by n
// in a final sequential reduction, rather than a per-cell atomic float add.
// Each trial steps its clone single-threaded and the buffers are summed in
// trial-index order, so the result does not depend on how trials were
// scheduled, and no shared accumulator is contended across trials.
func MonteCarlo(g *terrain.Grid, scenarios []weather.Condition, ignitions [][2]int, n int, opts MonteCarloOptions) []float64 {
	size := g.Width * g.Height
	accumulator := make([]float64, size)
	if n <= 0 || len(scenarios) == 0 || len(ignitions) == 0 {
		return accumulator
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	shadows := make([][]float64, n)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	var doneCount int
	var doneMu sync.Mutex

	for t := 0; t < n; t++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(t int) {
			defer wg.Done()
			defer func() { <-sem }()

			shadows[t] = runTrial(g, scenarios, ignitions, t)

			if opts.Progress != nil {
				doneMu.Lock()
				doneCount++
				opts.Progress(doneCount, n)
				doneMu.Unlock()
			}
		}(t)
	}
	wg.Wait()

	for _, shadow := range shadows {
		for i, v := range shadow {
			accumulator[i] += v
		}
	}
	for i := range accumulator {
		accumulator[i] /= float64(n)
	}
	return accumulator
}

func runTrial(g *terrain.Grid, scenarios []weather.Condition, ignitions [][2]int, trial int) []float64 {
	clone := g.Clone()
	clone.RNG().Seed(int64(trial))

	scenario := scenarios[clone.RNG().Intn(len(scenarios))]
	ignition := ignitions[clone.RNG().Intn(len(ignitions))]
	clone.Ignite(ignition[0], ignition[1])

	for step := 0; step < MonteCarloTrialSteps; step++ {
		// A single-threaded trial owns its clone exclusively; Step's own
		// internal parallelism is over cells within this one trial, not
		// across trials, so workers=1 here avoids oversubscribing when many
		// trials already run concurrently.
		if err := Step(clone, scenario, MonteCarloDT, 1); err != nil {
			break
		}
	}

	shadow := make([]float64, clone.Width*clone.Height)
	for i, cell := range clone.Cells() {
		if cell.FuelRemaining < terrain.BurnedThreshold {
			shadow[i] = 1
		}
	}
	return shadow
}
