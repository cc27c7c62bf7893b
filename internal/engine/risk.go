package engine

import (
	"math"

	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/danger"
	"github.com/redgum-labs/firesim/pkg/weather"
)

// RiskSurface computes the deterministic, distance-decayed risk field for
// the given weather and set of ignition seed points. It is sequential by
// design: no randomness and no per-trial work, just an elementwise-max
// accumulation across seeds over the grid's current terrain.
func RiskSurface(g *terrain.Grid, w weather.Condition, ignitions [][2]int) []float64 {
	cells := g.Cells()
	surface := make([]float64, len(cells))

	base := danger.ForestFDI(w.TemperatureC, w.HumidityPct, w.WindSpeedKph, w.DroughtFactor()) / 100

	for _, seed := range ignitions {
		sx, sy := seed[0], seed[1]
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				idx := g.Index(x, y)
				cell := cells[idx]

				dx := float64(x - sx)
				dy := float64(y - sy)
				d := math.Sqrt(dx*dx + dy*dy)
				decay := math.Exp(-d / 50)
				fuel := cell.FuelLoad / 20
				veg := cell.Vegetation.RiskWeight()

				cellRisk := base * decay * fuel * veg
				if cellRisk > surface[idx] {
					surface[idx] = cellRisk
				}
			}
		}
	}
	return surface
}
