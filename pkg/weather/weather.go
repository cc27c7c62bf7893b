// Package weather defines the validated weather record consumed by the
// bushfire engine and a batch scenario generator used for Monte Carlo
// analysis.
package weather

import (
	"errors"

	"github.com/maseology/montecarlo/smpln"

	"github.com/redgum-labs/firesim/internal/rng"
)

// ErrInvalid is returned by Validate when a Condition falls outside the
// physically plausible bounds the engine requires.
var ErrInvalid = errors.New("weather: condition out of bounds")

// Condition is a single, immutable weather record.
type Condition struct {
	TemperatureC float64 // air temperature, °C
	HumidityPct  float64 // relative humidity, %
	WindSpeedKph float64 // km/h
	WindDirDeg   float64 // degrees, 0=N increasing clockwise
	RainfallMm   float64 // mm / 24h
	FuelMoisture float64 // %
}

// Default returns the engine's default condition.
func Default() Condition {
	return Condition{
		TemperatureC: 20,
		HumidityPct:  50,
		WindSpeedKph: 10,
		WindDirDeg:   0,
		RainfallMm:   0,
		FuelMoisture: 10,
	}
}

// Validate checks the condition against the bounds the engine requires,
// returning ErrInvalid wrapped with detail when violated.
func (c Condition) Validate() error {
	if c.TemperatureC < -50 || c.TemperatureC > 60 {
		return errors.Join(ErrInvalid, errors.New("temperature out of [-50,60]"))
	}
	if c.HumidityPct < 0 || c.HumidityPct > 100 {
		return errors.Join(ErrInvalid, errors.New("humidity out of [0,100]"))
	}
	if c.WindSpeedKph < 0 || c.WindSpeedKph > 200 {
		return errors.Join(ErrInvalid, errors.New("wind speed out of [0,200]"))
	}
	return nil
}

// DroughtFactor derives the drought factor used by the forest FDI from 24h
// rainfall, clamped so the FDI's logarithm term stays defined.
func (c Condition) DroughtFactor() float64 {
	d := 10 - c.RainfallMm/10
	if d < 1 {
		return 1
	}
	return d
}

// GenerateScenarios produces n validated scenarios from a seed, spreading
// the five independent dimensions (temperature, humidity, wind speed, wind
// direction, rainfall) across a Latin Hypercube design so the batch covers
// the parameter space rather than clumping under naive per-draw uniform
// sampling; fuel moisture is then derived from the (adjusted) humidity.
func GenerateScenarios(seed int64, n int) []Condition {
	if n <= 0 {
		return nil
	}
	const dims = 5
	g := rng.New(seed)
	design := smpln.NewLHC(g.Source(), n, dims, false)

	out := make([]Condition, n)
	for k := 0; k < n; k++ {
		temp := lerp(design.U[0][k], 15, 45)
		humidity := lerp(design.U[1][k], 20, 80)
		wind := lerp(design.U[2][k], 5, 50)
		dir := lerp(design.U[3][k], 0, 360)
		rain := lerp(design.U[4][k], 0, 20)

		adjustedHumidity := humidity * (50 - temp) / 50
		if adjustedHumidity < 10 {
			adjustedHumidity = 10
		}
		fuelMoisture := 0.3 * adjustedHumidity
		if fuelMoisture < 5 {
			fuelMoisture = 5
		}

		out[k] = Condition{
			TemperatureC: temp,
			HumidityPct:  adjustedHumidity,
			WindSpeedKph: wind,
			WindDirDeg:   dir,
			RainfallMm:   rain,
			FuelMoisture: fuelMoisture,
		}
	}
	return out
}

func lerp(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}
