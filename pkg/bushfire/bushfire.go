// Package bushfire is the public facade over the terrain grid, spread
// physics, timestep engine, risk surface and Monte Carlo ensemble: the
// external surface a host numerical runtime links against.
package bushfire

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/redgum-labs/firesim/internal/engine"
	"github.com/redgum-labs/firesim/internal/logging"
	"github.com/redgum-labs/firesim/internal/metrics"
	"github.com/redgum-labs/firesim/internal/telemetry"
	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/weather"
)

// ErrSizeMismatch is returned by InitializeFromData when an input array's
// length disagrees with the simulator's grid dimensions.
var ErrSizeMismatch = terrain.ErrSizeMismatch

// ErrInvalidWeather is returned by Step when the weather record fails its
// bounds validation; the grid is left untouched.
var ErrInvalidWeather = engine.ErrInvalidWeather

// Simulator wraps a terrain grid and exposes the bushfire engine's
// operations: initialisation, ignition, the timestep, the deterministic
// risk surface, the Monte Carlo ensemble, and the derived statistics.
type Simulator struct {
	grid *terrain.Grid

	workers int
	logger  logging.Logger
	metrics *metrics.Collector
	tracer  trace.Tracer
}

// Option configures optional cross-cutting concerns on a Simulator,
// defaulting to no-ops so the facade has no required third-party
// dependency at the call site.
type Option func(*Simulator)

// WithLogger attaches a structured logger for size-mismatch, invalid
// weather, and Monte Carlo lifecycle events.
func WithLogger(l logging.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithMetrics attaches a Prometheus collector; the Simulator updates it
// after every Step and MonteCarlo call.
func WithMetrics(m *metrics.Collector) Option {
	return func(s *Simulator) { s.metrics = m }
}

// WithTracer attaches an OpenTelemetry tracer that wraps Step and
// MonteCarlo in spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Simulator) { s.tracer = t }
}

// WithWorkers bounds the concurrency used internally by Step and
// MonteCarlo; <=0 (the default) defers to runtime.NumCPU() at call time.
func WithWorkers(n int) Option {
	return func(s *Simulator) { s.workers = n }
}

// New allocates a width x height grid of default-constructed cells with an
// independent PRNG seeded from seed.
func New(width, height int, seed int64, opts ...Option) *Simulator {
	s := &Simulator{
		grid:   terrain.New(width, height, seed),
		logger: logging.Noop(),
		tracer: telemetry.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitializeFromData populates elevation, fuel load and vegetation from
// three row-major sequences of length width*height, resetting burn state
// and deriving slope. Fails with ErrSizeMismatch and leaves the grid
// untouched if any sequence's length disagrees with the grid's dimensions.
func (s *Simulator) InitializeFromData(elevations, fuelLoads []float64, vegetations []terrain.Vegetation) error {
	if err := s.grid.InitializeFromData(elevations, fuelLoads, vegetations); err != nil {
		s.logger.Warn("terrain initialisation size mismatch",
			logging.Int("elevations", len(elevations)),
			logging.Int("fuel_loads", len(fuelLoads)),
			logging.Int("vegetations", len(vegetations)),
			logging.Int("expected", s.grid.Width*s.grid.Height),
		)
		return err
	}
	return nil
}

// Ignite idempotently ignites the cell at (x, y); out-of-range coordinates
// are silently ignored.
func (s *Simulator) Ignite(x, y int) { s.grid.Ignite(x, y) }

// Step advances the simulation by one synchronous timestep under the given
// weather. It rejects invalid weather with ErrInvalidWeather without
// mutating the grid.
func (s *Simulator) Step(w weather.Condition, dt float64) error {
	_, span := s.tracer.Start(context.Background(), "bushfire.Step")
	defer span.End()

	start := time.Now()
	err := engine.Step(s.grid, w, dt, s.workers)
	elapsed := time.Since(start)

	if err != nil {
		s.logger.Warn("step rejected", logging.String("reason", err.Error()))
		if s.metrics != nil {
			s.metrics.RejectedWeather.Inc()
		}
		return err
	}

	if s.metrics != nil {
		s.metrics.StepsTotal.Inc()
		s.metrics.StepDuration.Observe(elapsed.Seconds())
		active, _ := engine.PerimeterCount(s.grid)
		s.metrics.ActiveFireCells.Set(float64(active))
		s.metrics.TotalBurnedHectares.Set(engine.TotalBurnedArea(s.grid))
	}
	return nil
}

// RiskSurface computes the deterministic, distance-decayed risk field for
// the given weather and ignition seed points.
func (s *Simulator) RiskSurface(w weather.Condition, ignitions [][2]int) []float64 {
	return engine.RiskSurface(s.grid, w, ignitions)
}

// MonteCarlo runs n independent trials over the given scenario and
// ignition candidates, returning the per-cell burn-probability surface.
func (s *Simulator) MonteCarlo(scenarios []weather.Condition, ignitions [][2]int, n int, progress func(done, total int)) []float64 {
	_, span := s.tracer.Start(context.Background(), "bushfire.MonteCarlo")
	defer span.End()

	start := time.Now()
	surface := engine.MonteCarlo(s.grid, scenarios, ignitions, n, engine.MonteCarloOptions{
		Workers:  s.workers,
		Progress: progress,
	})
	elapsed := time.Since(start)

	s.logger.Info("monte carlo run complete",
		logging.Int("trials", n),
		logging.String("elapsed", elapsed.String()),
	)
	if s.metrics != nil {
		s.metrics.MonteCarloTrials.Add(float64(n))
		s.metrics.MonteCarloDuration.Observe(elapsed.Seconds())
	}
	return surface
}

// BurnIntensity returns burn_intensity for every cell, row-major.
func (s *Simulator) BurnIntensity() []float64 { return engine.BurnIntensity(s.grid) }

// BurnedAreas returns whether each cell has burned, row-major.
func (s *Simulator) BurnedAreas() []bool { return engine.BurnedAreas(s.grid) }

// FuelRemaining returns fuel_remaining for every cell, row-major.
func (s *Simulator) FuelRemaining() []float64 { return engine.FuelRemaining(s.grid) }

// TotalBurnedArea returns the burned area in hectares.
func (s *Simulator) TotalBurnedArea() float64 { return engine.TotalBurnedArea(s.grid) }

// MaxIntensity returns the maximum burn_intensity across all cells.
func (s *Simulator) MaxIntensity() float64 { return engine.MaxIntensity(s.grid) }

// PerimeterCount returns the active ignited-cell count and the subset of
// those cells with at least one non-ignited 8-neighbour.
func (s *Simulator) PerimeterCount() (active, perimeter int) { return engine.PerimeterCount(s.grid) }
