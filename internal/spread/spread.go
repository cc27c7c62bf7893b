// Package spread implements the pure spread-rate physics the timestep
// engine evaluates per source cell and per candidate neighbour: fuel,
// moisture, wind and slope effects combined into a spread rate, the fuel
// consumed per timestep, and the resulting burn intensity.
package spread

import (
	"math"

	"github.com/redgum-labs/firesim/internal/terrain"
	"github.com/redgum-labs/firesim/pkg/weather"
)

// MoistureEffect returns the fuel-moisture dampening multiplier applied to
// spread rate.
func MoistureEffect(fuelMoisturePct float64) float64 {
	return math.Exp(-0.05 * fuelMoisturePct)
}

// WindEffect returns the wind-alignment term for spread along a bearing
// (degrees, as returned by terrain.Bearing) from the source cell toward a
// candidate neighbour, given the wind's speed (km/h) and direction
// (degrees). The term depends only on the difference between the two
// angles. A neighbour lying upwind of the wind vector contributes zero,
// never a negative term.
func WindEffect(bearingDeg, windSpeedKph, windDirDeg float64) float64 {
	directionDiff := bearingDeg - windDirDeg
	return (windSpeedKph / 10) * math.Max(0, math.Cos(directionDiff*math.Pi/180))
}

// SlopeEffect returns the slope term for spread from a source cell to a
// neighbour, from the elevation delta (neighbour minus source, in metres)
// over the fixed cell spacing. Kept in this algebraic form by intent; see
// DESIGN.md for the open question this simplification raises.
func SlopeEffect(elevationDeltaM float64) float64 {
	return 2 * elevationDeltaM / terrain.CellSizeM
}

// Rate computes the spread rate, in metres/minute, of fire advancing from
// an ignited source cell toward a candidate neighbour at the given bearing
// and elevation delta, under the given weather. The fuel multiplier and
// fuel_remaining terms are the candidate neighbour's, not the igniting
// source's — the neighbour governs how readily it catches, matching the
// original engine's calculate_spread_rate(orig_neighbor, ...) call.
func Rate(neighbour terrain.Cell, bearingDeg, elevationDeltaM float64, w weather.Condition) float64 {
	return 0.1 *
		neighbour.Vegetation.FuelMultiplier() *
		MoistureEffect(w.FuelMoisture) *
		(1 + WindEffect(bearingDeg, w.WindSpeedKph, w.WindDirDeg)) *
		(1 + SlopeEffect(elevationDeltaM)) *
		neighbour.FuelRemaining
}

// IgnitionProbability maps a spread rate to the probability that the
// neighbour ignites within a timestep of length dt, per the timestep
// engine's fixed 0.1 scaling.
func IgnitionProbability(rateMPerMin, dt float64) float64 {
	return math.Min(1, rateMPerMin*dt*0.1)
}

// ConsumptionPerTimestep returns the fraction of fuel_remaining consumed
// per unit dt while a cell is ignited.
func ConsumptionPerTimestep(fuelLoad float64) float64 {
	const base = 0.02
	return base * (1 + fuelLoad/20)
}

// BurnIntensity returns the updated burn_intensity for a cell with the
// given fuel_load and fuel_remaining.
func BurnIntensity(fuelLoad, fuelRemaining float64) float64 {
	return fuelLoad * (1 - fuelRemaining) * 0.1
}
