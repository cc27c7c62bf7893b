package engine

import (
	"math"
	"testing"

	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/danger"
	"github.com/redgum-labs/firesim/pkg/weather"
)

func TestRiskSurfaceArgmaxAtSeed(t *testing.T) {
	g := uniformGrid(7, 7, 1, terrain.Dense, 20)
	w := weather.Condition{TemperatureC: 35, HumidityPct: 20, WindSpeedKph: 30, RainfallMm: 0}

	surface := RiskSurface(g, w, [][2]int{{3, 3}})
	seedIdx := g.Index(3, 3)

	for i, v := range surface {
		if v > surface[seedIdx]+1e-12 {
			t.Errorf("cell %d risk %v exceeds seed risk %v", i, v, surface[seedIdx])
		}
	}
}

func TestRiskSurfaceNonIncreasingAlongRay(t *testing.T) {
	g := uniformGrid(10, 1, 1, terrain.Dense, 20)
	w := weather.Condition{TemperatureC: 35, HumidityPct: 20, WindSpeedKph: 30}

	surface := RiskSurface(g, w, [][2]int{{0, 0}})
	for x := 1; x < 10; x++ {
		if surface[g.Index(x, 0)] > surface[g.Index(x-1, 0)]+1e-12 {
			t.Errorf("risk increased with distance at x=%d: %v > %v", x, surface[g.Index(x, 0)], surface[g.Index(x-1, 0)])
		}
	}
}

func TestRiskSurfaceExactValueAtSeed(t *testing.T) {
	g := uniformGrid(3, 3, 1, terrain.Dense, 20)
	w := weather.Condition{TemperatureC: 35, HumidityPct: 20, WindSpeedKph: 30, RainfallMm: 0}

	surface := RiskSurface(g, w, [][2]int{{1, 1}})

	base := danger.ForestFDI(w.TemperatureC, w.HumidityPct, w.WindSpeedKph, w.DroughtFactor()) / 100
	want := base * math.Exp(0) * (20.0 / 20) * terrain.Dense.RiskWeight()
	got := surface[g.Index(1, 1)]
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("risk at seed = %v, want %v", got, want)
	}
}

func TestRiskSurfaceUnionIsElementwiseMax(t *testing.T) {
	g := uniformGrid(6, 6, 1, terrain.Dense, 20)
	w := weather.Condition{TemperatureC: 35, HumidityPct: 20, WindSpeedKph: 30}

	a := RiskSurface(g, w, [][2]int{{0, 0}})
	b := RiskSurface(g, w, [][2]int{{5, 5}})
	union := RiskSurface(g, w, [][2]int{{0, 0}, {5, 5}})

	for i := range union {
		want := math.Max(a[i], b[i])
		if math.Abs(union[i]-want) > 1e-12 {
			t.Errorf("cell %d union risk = %v, want max(%v,%v)=%v", i, union[i], a[i], b[i], want)
		}
	}
}

func TestRiskSurfaceEmptyIgnitionsIsZero(t *testing.T) {
	g := uniformGrid(3, 3, 1, terrain.Dense, 20)
	w := weather.Default()
	surface := RiskSurface(g, w, nil)
	for i, v := range surface {
		if v != 0 {
			t.Errorf("cell %d = %v, want 0 with no ignition seeds", i, v)
		}
	}
}
