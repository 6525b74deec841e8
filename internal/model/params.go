package model

// SimParams defines the physical and economic parameters of the battery.
// Units:
// - CapacityKWh: kWh
// - MaxPowerW: W (applies to both charge and discharge)
// - SoCMinPct/SoCMaxPct: percent of capacity, 0..100
// - ExportCoeff: 0..1, export revenue relative to the spot price
//   (accounts for grid fees on exported energy)
type SimParams struct {
	CapacityKWh float64 `json:"capacity_kwh"`
	MaxPowerW   float64 `json:"max_power_w"`
	SoCMinPct   float64 `json:"soc_min_pct"`
	SoCMaxPct   float64 `json:"soc_max_pct"`
	ExportCoeff float64 `json:"export_coeff"`
}

// DefaultSimParams is the fallback parameter set used when a request
// carries no usable parameters: a 10 kWh / 5 kW battery cycled between
// 10% and 90% SoC, exporting at 80% of spot.
func DefaultSimParams() SimParams {
	return SimParams{
		CapacityKWh: 10,
		MaxPowerW:   5000,
		SoCMinPct:   10,
		SoCMaxPct:   90,
		ExportCoeff: 0.8,
	}
}

// Bounds is the absolute operating envelope derived from SimParams,
// with SoC limits converted from percentages to Wh. All strategies
// consume Bounds rather than SimParams so percentage-to-energy
// conversion happens exactly once.
type Bounds struct {
	MaxPowerW    float64
	SoCMinWh     float64
	SoCMaxWh     float64
	InitialSoCWh float64
	ExportCoeff  float64
}

// Bounds converts the percentage SoC limits to Wh. Initial SoC is pinned
// to the minimum so stored energy is explainable purely by simulated
// charging, never by free starting inventory.
func (p SimParams) Bounds() Bounds {
	capacityWh := p.CapacityKWh * 1000
	minWh := capacityWh * p.SoCMinPct / 100
	maxWh := capacityWh * p.SoCMaxPct / 100
	return Bounds{
		MaxPowerW:    p.MaxPowerW,
		SoCMinWh:     minWh,
		SoCMaxWh:     maxWh,
		InitialSoCWh: minWh,
		ExportCoeff:  p.ExportCoeff,
	}
}
