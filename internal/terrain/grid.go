// Package terrain implements the bushfire grid: a rectangular array of
// cells with terrain and burn state, row-major addressing, an 8-connected
// Moore neighbourhood, and slope derivation from elevation data.
package terrain

import (
	"errors"
	"math"

	"github.com/redgum-labs/firesim/internal/rng"
)

// CellSizeM is the fixed edge length of a grid cell, in metres.
const CellSizeM = 30.0

// HectaresPerCell converts a cell count to hectares (CELL_SIZE_M² / 10000).
const HectaresPerCell = CellSizeM * CellSizeM / 10000.0

// ErrSizeMismatch is returned by InitializeFromData when an input slice's
// length disagrees with the grid's cell count.
var ErrSizeMismatch = errors.New("terrain: input length does not match grid dimensions")

// Grid is a width x height array of cells addressed in row-major order.
type Grid struct {
	Width, Height int
	cells         []Cell
	rng           *rng.RNG
}

// New allocates a grid of default-constructed cells with an independent,
// deterministically seeded PRNG.
func New(width, height int, seed int64) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = defaultCell()
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
		rng:    rng.New(seed),
	}
}

// Cells exposes the backing slice directly so the engine can process it
// without copying.
func (g *Grid) Cells() []Cell { return g.cells }

// RNG exposes the grid's owned PRNG; confined to callers acting as the
// grid's single logical owner (the timestep/Monte Carlo engine).
func (g *Grid) RNG() *rng.RNG { return g.rng }

// Index returns the linear slice index for coordinates (x, y). Callers must
// ensure the coordinates are in range.
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// InBounds reports whether (x, y) addresses a cell in the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). Callers must ensure the coordinates are in
// range.
func (g *Grid) At(x, y int) Cell { return g.cells[g.Index(x, y)] }

// Clone returns a deep copy of the grid with its own PRNG state, used by the
// Monte Carlo engine to run an independent trial from a shared terrain.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  cells,
		rng:    rng.New(0), // caller reseeds per trial
	}
}

// InitializeFromData populates elevation, fuel load and vegetation from
// three row-major sequences of length Width*Height, resetting burn state and
// deriving slope from the neighbouring elevation deltas. It fails with
// ErrSizeMismatch (and leaves the grid untouched) if any sequence's length
// disagrees with the grid's cell count.
func (g *Grid) InitializeFromData(elevations, fuelLoads []float64, vegetations []Vegetation) error {
	n := g.Width * g.Height
	if len(elevations) != n || len(fuelLoads) != n || len(vegetations) != n {
		return ErrSizeMismatch
	}

	for i := range g.cells {
		g.cells[i].Elevation = elevations[i]
		g.cells[i].FuelLoad = fuelLoads[i]
		g.cells[i].Vegetation = vegetations[i]
		g.cells[i].FuelRemaining = 1
		g.cells[i].IsIgnited = false
		g.cells[i].BurnIntensity = 0
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			maxAbsDelta := 0.0
			for _, n := range g.Neighbours(x, y) {
				delta := math.Abs(elevations[g.Index(n[0], n[1])] - elevations[idx])
				if delta > maxAbsDelta {
					maxAbsDelta = delta
				}
			}
			g.cells[idx].Slope = math.Atan(maxAbsDelta/CellSizeM) * 180 / math.Pi
		}
	}
	return nil
}

// Ignite idempotently sets is_ignited on the cell at (x, y). Out-of-range
// coordinates are silently ignored (spec's soft OutOfRange behaviour).
func (g *Grid) Ignite(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)].IsIgnited = true
}

// Neighbours returns the up-to-8 in-bounds coordinates in the Moore
// neighbourhood of (x, y), clipped at the grid edges. Order is unspecified.
func (g *Grid) Neighbours(x, y int) [][2]int {
	out := make([][2]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.Height {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.Width {
				continue
			}
			out = append(out, [2]int{nx, ny})
		}
	}
	return out
}

// Bearing returns the direction, in degrees, from (x,y) to the neighbour
// (nx,ny) as atan2(Δy,Δx): 0 points along +x, 90 along +y (the next row),
// with results in (-180,180]. This is the angle the spread kernel's
// wind-effect term compares against the wind direction.
func Bearing(x, y, nx, ny int) float64 {
	dx := float64(nx - x)
	dy := float64(ny - y)
	return math.Atan2(dy, dx) * 180 / math.Pi
}
