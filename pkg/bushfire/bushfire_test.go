package bushfire

import (
	"testing"

	"github.com/redgum-labs/firesim/internal/logging"
	"github.com/redgum-labs/firesim/internal/metrics"
	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/weather"
	"go.opentelemetry.io/otel/trace"
)

func flatTerrain(width, height int, veg terrain.Vegetation, fuelLoad float64) (elevations, fuelLoads []float64, vegetations []terrain.Vegetation) {
	n := width * height
	elevations = make([]float64, n)
	fuelLoads = make([]float64, n)
	vegetations = make([]terrain.Vegetation, n)
	for i := range vegetations {
		fuelLoads[i] = fuelLoad
		vegetations[i] = veg
	}
	return
}

func TestSimulatorInitializeFromDataSizeMismatch(t *testing.T) {
	sim := New(3, 3, 1)
	err := sim.InitializeFromData(make([]float64, 2), make([]float64, 9), make([]terrain.Vegetation, 9))
	if err != ErrSizeMismatch {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
}

func TestSimulatorIgniteAndStep(t *testing.T) {
	sim := New(5, 5, 1)
	elevations, fuelLoads, vegetations := flatTerrain(5, 5, terrain.Dense, 15)
	if err := sim.InitializeFromData(elevations, fuelLoads, vegetations); err != nil {
		t.Fatalf("InitializeFromData: %v", err)
	}
	sim.Ignite(2, 2)

	w := weather.Condition{TemperatureC: 35, HumidityPct: 20, WindSpeedKph: 20, FuelMoisture: 5}
	if err := sim.Step(w, 0.1); err != nil {
		t.Fatalf("Step: %v", err)
	}

	if sim.TotalBurnedArea() < 0 {
		t.Error("TotalBurnedArea should never be negative")
	}
	active, _ := sim.PerimeterCount()
	if active < 1 {
		t.Error("expected at least one active cell after igniting and stepping")
	}
}

func TestSimulatorStepRejectsInvalidWeather(t *testing.T) {
	sim := New(3, 3, 1)
	if err := sim.Step(weather.Condition{TemperatureC: 1000}, 0.1); err == nil {
		t.Fatal("Step should reject invalid weather")
	}
}

func TestSimulatorRiskSurfaceLength(t *testing.T) {
	sim := New(4, 4, 1)
	elevations, fuelLoads, vegetations := flatTerrain(4, 4, terrain.Moderate, 10)
	if err := sim.InitializeFromData(elevations, fuelLoads, vegetations); err != nil {
		t.Fatalf("InitializeFromData: %v", err)
	}
	surface := sim.RiskSurface(weather.Default(), [][2]int{{1, 1}})
	if len(surface) != 16 {
		t.Errorf("len(RiskSurface) = %d, want 16", len(surface))
	}
}

func TestSimulatorMonteCarloWithProgress(t *testing.T) {
	sim := New(4, 4, 1, WithWorkers(2))
	elevations, fuelLoads, vegetations := flatTerrain(4, 4, terrain.Dense, 12)
	if err := sim.InitializeFromData(elevations, fuelLoads, vegetations); err != nil {
		t.Fatalf("InitializeFromData: %v", err)
	}

	scenarios := weather.GenerateScenarios(3, 4)
	var calls int
	surface := sim.MonteCarlo(scenarios, [][2]int{{0, 0}}, 6, func(done, total int) { calls++ })

	if len(surface) != 16 {
		t.Errorf("len(MonteCarlo) = %d, want 16", len(surface))
	}
	if calls != 6 {
		t.Errorf("progress called %d times, want 6", calls)
	}
}

func TestSimulatorWithLoggerOptionDoesNotPanic(t *testing.T) {
	sim := New(3, 3, 1, WithLogger(logging.New(logging.Config{Level: "debug", Format: "json"})))
	_ = sim.InitializeFromData(make([]float64, 1), nil, nil) // deliberate mismatch, exercises the Warn path
}

func TestSimulatorWithMetricsOptionRecordsStep(t *testing.T) {
	collector := metrics.New()
	sim := New(3, 3, 1, WithMetrics(collector))
	elevations, fuelLoads, vegetations := flatTerrain(3, 3, terrain.Moderate, 10)
	if err := sim.InitializeFromData(elevations, fuelLoads, vegetations); err != nil {
		t.Fatalf("InitializeFromData: %v", err)
	}
	sim.Ignite(1, 1)

	if err := sim.Step(weather.Default(), 0.1); err != nil {
		t.Fatalf("Step: %v", err)
	}

	families, err := collector.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == "firesim_steps_total" {
			if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 1 {
				t.Errorf("firesim_steps_total = %v, want 1 after one Step", got)
			}
			return
		}
	}
	t.Error("firesim_steps_total not found in the collector's registry")
}

func TestSimulatorWithTracerOptionDoesNotPanic(t *testing.T) {
	sim := New(3, 3, 1, WithTracer(trace.NewNoopTracerProvider().Tracer("test")))
	elevations, fuelLoads, vegetations := flatTerrain(3, 3, terrain.Moderate, 10)
	if err := sim.InitializeFromData(elevations, fuelLoads, vegetations); err != nil {
		t.Fatalf("InitializeFromData: %v", err)
	}
	sim.Ignite(1, 1)

	if err := sim.Step(weather.Default(), 0.1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	sim.MonteCarlo([]weather.Condition{weather.Default()}, [][2]int{{1, 1}}, 2, nil)
}

func TestSimulatorStatAccessorsCoverGrid(t *testing.T) {
	sim := New(3, 2, 1)
	elevations, fuelLoads, vegetations := flatTerrain(3, 2, terrain.Moderate, 10)
	if err := sim.InitializeFromData(elevations, fuelLoads, vegetations); err != nil {
		t.Fatalf("InitializeFromData: %v", err)
	}

	if got := len(sim.BurnIntensity()); got != 6 {
		t.Errorf("len(BurnIntensity) = %d, want 6", got)
	}
	if got := len(sim.BurnedAreas()); got != 6 {
		t.Errorf("len(BurnedAreas) = %d, want 6", got)
	}
	if got := len(sim.FuelRemaining()); got != 6 {
		t.Errorf("len(FuelRemaining) = %d, want 6", got)
	}
	if got := sim.MaxIntensity(); got != 0 {
		t.Errorf("MaxIntensity on unignited grid = %v, want 0", got)
	}
}
