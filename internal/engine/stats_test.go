package engine

import (
	"testing"

	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/weather"
)

func TestTotalBurnedAreaNonDecreasingAcrossSteps(t *testing.T) {
	g := uniformGrid(6, 6, 4, terrain.Dense, 10)
	g.Ignite(3, 3)
	w := weather.Condition{TemperatureC: 38, HumidityPct: 20, WindSpeedKph: 30, FuelMoisture: 5}

	prev := TotalBurnedArea(g)
	for step := 0; step < 80; step++ {
		if err := Step(g, w, 0.1, 4); err != nil {
			t.Fatalf("Step: %v", err)
		}
		curr := TotalBurnedArea(g)
		if curr < prev {
			t.Fatalf("TotalBurnedArea decreased at step %d: %v -> %v", step, prev, curr)
		}
		prev = curr
	}
}

func TestMaxIntensityBoundByFuelLoad(t *testing.T) {
	g := uniformGrid(5, 5, 5, terrain.Dense, 18)
	g.Ignite(2, 2)
	w := weather.Condition{TemperatureC: 40, HumidityPct: 15, WindSpeedKph: 35, FuelMoisture: 4}

	for step := 0; step < 40; step++ {
		if err := Step(g, w, 0.1, 4); err != nil {
			t.Fatalf("Step: %v", err)
		}
		if got := MaxIntensity(g); got > 18*0.1+1e-9 {
			t.Fatalf("MaxIntensity = %v, exceeds fuel_load*0.1 bound", got)
		}
	}
}

func TestPerimeterCountNeverExceedsActive(t *testing.T) {
	g := uniformGrid(6, 6, 6, terrain.Dense, 12)
	g.Ignite(3, 3)
	w := weather.Condition{TemperatureC: 38, HumidityPct: 20, WindSpeedKph: 25, FuelMoisture: 5}

	for step := 0; step < 30; step++ {
		if err := Step(g, w, 0.1, 4); err != nil {
			t.Fatalf("Step: %v", err)
		}
		active, perimeter := PerimeterCount(g)
		if perimeter > active {
			t.Fatalf("perimeter %d exceeds active %d at step %d", perimeter, active, step)
		}
	}
}

func TestPerimeterCountSingleIgnitedCellIsItsOwnPerimeter(t *testing.T) {
	g := uniformGrid(5, 5, 1, terrain.Moderate, 10)
	g.Ignite(2, 2)

	active, perimeter := PerimeterCount(g)
	if active != 1 || perimeter != 1 {
		t.Errorf("active=%d perimeter=%d, want 1,1 for a single isolated ignited cell", active, perimeter)
	}
}

func TestBurnedAreasMatchesThreshold(t *testing.T) {
	g := uniformGrid(2, 2, 1, terrain.Moderate, 10)
	cells := g.Cells()
	cells[0].FuelRemaining = terrain.BurnedThreshold - 0.01
	cells[1].FuelRemaining = terrain.BurnedThreshold + 0.01

	got := BurnedAreas(g)
	if !got[0] {
		t.Error("cell 0 below BurnedThreshold should be reported burned")
	}
	if got[1] {
		t.Error("cell 1 above BurnedThreshold should not be reported burned")
	}
}

func TestFuelRemainingAndBurnIntensityLengthMatchesGrid(t *testing.T) {
	g := uniformGrid(4, 3, 1, terrain.Moderate, 10)
	if got := len(FuelRemaining(g)); got != 12 {
		t.Errorf("len(FuelRemaining) = %d, want 12", got)
	}
	if got := len(BurnIntensity(g)); got != 12 {
		t.Errorf("len(BurnIntensity) = %d, want 12", got)
	}
}
