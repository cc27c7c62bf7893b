// Package metrics defines the Prometheus collectors a bushfire Simulator
// registers on its own private registry. Nothing in this module starts an
// HTTP listener; a host embedding the Simulator can scrape the registry
// returned by Collector.Registry through its own server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector bundles the counters and gauges the Simulator updates as it
// runs steps and Monte Carlo trials.
type Collector struct {
	registry *prometheus.Registry

	StepsTotal          prometheus.Counter
	StepDuration        prometheus.Histogram
	MonteCarloTrials    prometheus.Counter
	MonteCarloDuration  prometheus.Histogram
	RejectedWeather     prometheus.Counter
	ActiveFireCells     prometheus.Gauge
	TotalBurnedHectares prometheus.Gauge
}

// New registers a fresh set of collectors on a private registry, isolated
// from prometheus.DefaultRegisterer so multiple Simulators never collide.
func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		StepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "firesim_steps_total",
			Help: "Total number of timesteps executed.",
		}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "firesim_step_duration_seconds",
			Help:    "Wall-clock duration of a single timestep.",
			Buckets: prometheus.DefBuckets,
		}),
		MonteCarloTrials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "firesim_montecarlo_trials_total",
			Help: "Total number of Monte Carlo trials executed.",
		}),
		MonteCarloDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "firesim_montecarlo_duration_seconds",
			Help:    "Wall-clock duration of a Monte Carlo run.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}),
		RejectedWeather: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "firesim_rejected_weather_total",
			Help: "Total number of Step calls rejected for invalid weather.",
		}),
		ActiveFireCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "firesim_active_fire_cells",
			Help: "Number of currently ignited cells, as of the last Step.",
		}),
		TotalBurnedHectares: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "firesim_total_burned_hectares",
			Help: "Total burned area in hectares, as of the last Step.",
		}),
	}

	reg.MustRegister(
		c.StepsTotal,
		c.StepDuration,
		c.MonteCarloTrials,
		c.MonteCarloDuration,
		c.RejectedWeather,
		c.ActiveFireCells,
		c.TotalBurnedHectares,
	)
	return c
}

// Registry returns the private Prometheus registry a host can scrape.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }
