// Command firesweep runs a Monte Carlo sweep across a generated weather
// scenario batch and a grid of candidate ignition points, reporting the
// top burn-probability cells at the end, in the "Top 5 results" style of
// cmd/lava-sweep's report. It is a demo/analysis harness, not part of the
// library's normative surface.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/gosuri/uiprogress"

	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/bushfire"
	"github.com/redgum-labs/firesim/pkg/weather"
)

func main() {
	width := flag.Int("width", 40, "grid width")
	height := flag.Int("height", 40, "grid height")
	seed := flag.Int64("seed", 1, "grid PRNG seed")
	trials := flag.Int("trials", 2000, "Monte Carlo trial count")
	scenarioCount := flag.Int("scenarios", 8, "weather scenario batch size")
	ignitionStep := flag.Int("ignition-step", 10, "spacing, in cells, of candidate ignition points")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent trial workers")
	flag.Parse()

	sim := bushfire.New(*width, *height, *seed, bushfire.WithWorkers(*workers))

	n := *width * *height
	elevations := make([]float64, n)
	fuelLoads := make([]float64, n)
	vegetations := make([]terrain.Vegetation, n)
	for i := range vegetations {
		fuelLoads[i] = 12
		vegetations[i] = terrain.Dense
	}
	if err := sim.InitializeFromData(elevations, fuelLoads, vegetations); err != nil {
		fmt.Println("terrain initialisation failed:", err)
		return
	}

	scenarios := weather.GenerateScenarios(*seed, *scenarioCount)

	var ignitions [][2]int
	for y := 0; y < *height; y += *ignitionStep {
		for x := 0; x < *width; x += *ignitionStep {
			ignitions = append(ignitions, [2]int{x, y})
		}
	}

	fmt.Printf("Sweeping %d trials across %d scenarios and %d ignition candidates (%d workers)\n",
		*trials, len(scenarios), len(ignitions), *workers)

	uiprogress.Start()
	progress := make(chan string)
	bar := uiprogress.AddBar(*trials).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-progress
	})

	start := time.Now()
	surface := sim.MonteCarlo(scenarios, ignitions, *trials, func(done, total int) {
		progress <- fmt.Sprintf("trial %d/%d", done, total)
		bar.Incr()
	})
	uiprogress.Stop()
	elapsed := time.Since(start)

	type cellRisk struct {
		x, y int
		risk float64
	}
	ranked := make([]cellRisk, 0, len(surface))
	for idx, risk := range surface {
		ranked = append(ranked, cellRisk{x: idx % *width, y: idx / *width, risk: risk})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].risk > ranked[j].risk })

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(ranked) && i < 5; i++ {
		r := ranked[i]
		fmt.Printf("%2d) (%d,%d) burn_probability=%.3f\n", i+1, r.x, r.y, r.risk)
	}
}
