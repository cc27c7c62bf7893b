package engine

import "github.com/redgum-labs/firesim/internal/terrain"

// TotalBurnedArea returns the hectares of cells with
// fuel_remaining < terrain.BurnedThreshold, computed over the authoritative
// grid.
func TotalBurnedArea(g *terrain.Grid) float64 {
	count := 0
	for _, c := range g.Cells() {
		if c.FuelRemaining < terrain.BurnedThreshold {
			count++
		}
	}
	return float64(count) * terrain.HectaresPerCell
}

// MaxIntensity returns the maximum burn_intensity across all cells.
func MaxIntensity(g *terrain.Grid) float64 {
	max := 0.0
	for _, c := range g.Cells() {
		if c.BurnIntensity > max {
			max = c.BurnIntensity
		}
	}
	return max
}

// PerimeterCount returns the number of ignited cells (active) and, of
// those, the number with at least one non-ignited 8-neighbour (perimeter).
func PerimeterCount(g *terrain.Grid) (active, perimeter int) {
	cells := g.Cells()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := cells[g.Index(x, y)]
			if !c.IsIgnited {
				continue
			}
			active++
			for _, nb := range g.Neighbours(x, y) {
				if !cells[g.Index(nb[0], nb[1])].IsIgnited {
					perimeter++
					break
				}
			}
		}
	}
	return active, perimeter
}

// BurnIntensity returns the burn_intensity of every cell in row-major order.
func BurnIntensity(g *terrain.Grid) []float64 {
	cells := g.Cells()
	out := make([]float64, len(cells))
	for i, c := range cells {
		out[i] = c.BurnIntensity
	}
	return out
}

// BurnedAreas returns, for every cell in row-major order, whether its
// fuel_remaining has dropped below terrain.BurnedThreshold.
func BurnedAreas(g *terrain.Grid) []bool {
	cells := g.Cells()
	out := make([]bool, len(cells))
	for i, c := range cells {
		out[i] = c.FuelRemaining < terrain.BurnedThreshold
	}
	return out
}

// FuelRemaining returns the fuel_remaining of every cell in row-major
// order.
func FuelRemaining(g *terrain.Grid) []float64 {
	cells := g.Cells()
	out := make([]float64, len(cells))
	for i, c := range cells {
		out[i] = c.FuelRemaining
	}
	return out
}
