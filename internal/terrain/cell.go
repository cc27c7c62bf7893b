package terrain

// Vegetation enumerates the fuel-type classes a cell can carry.
type Vegetation uint8

const (
	Sparse Vegetation = iota
	Moderate
	Dense
	Extreme
)

// FuelMultiplier returns the spread-rate multiplier associated with the
// vegetation class.
func (v Vegetation) FuelMultiplier() float64 {
	switch v {
	case Sparse:
		return 0.5
	case Dense:
		return 2.0
	case Extreme:
		return 4.0
	default:
		return 1.0
	}
}

// RiskWeight returns the vegetation weight used by the deterministic risk
// surface (spec §4.4).
func (v Vegetation) RiskWeight() float64 {
	switch v {
	case Sparse:
		return 0.3
	case Dense:
		return 0.9
	case Extreme:
		return 1.0
	default:
		return 0.6
	}
}

// FuelExtinguishThreshold is the fuel_remaining floor below which a cell
// can no longer sustain ignition.
const FuelExtinguishThreshold = 0.01

// BurnedThreshold is the fuel_remaining ceiling below which a cell counts
// as burned for statistics and Monte Carlo classification (spec §4.5/§4.6).
const BurnedThreshold = 0.9

// Cell is one CELL_SIZE_M x CELL_SIZE_M patch of terrain with independent
// fuel and burn state.
type Cell struct {
	Elevation     float64 // metres
	Slope         float64 // degrees, derived
	Aspect        float64 // degrees, 0=N clockwise
	Vegetation    Vegetation
	FuelLoad      float64 // tonnes/hectare
	IsIgnited     bool
	BurnIntensity float64
	FuelRemaining float64 // in [0,1]
}

// defaultCell returns a cell in its default-constructed state.
func defaultCell() Cell {
	return Cell{
		Vegetation:    Moderate,
		FuelLoad:      10,
		IsIgnited:     false,
		BurnIntensity: 0,
		FuelRemaining: 1,
	}
}

// EnforceInvariants clamps FuelRemaining to [0,1] and extinguishes a cell
// whose fuel has dropped below the threshold, matching the data model's
// invariants. Exported so the timestep engine can apply it to its write
// buffer before swapping it into the grid.
func (c *Cell) EnforceInvariants() {
	if c.FuelRemaining < 0 {
		c.FuelRemaining = 0
	}
	if c.FuelRemaining > 1 {
		c.FuelRemaining = 1
	}
	if c.FuelRemaining < FuelExtinguishThreshold {
		c.IsIgnited = false
		c.BurnIntensity = 0
	}
}
