package analysis

import (
	"battery-sim/internal/model"
	"battery-sim/internal/sim"
)

// CapacityPoint is the outcome of one capacity in a sweep. MaxPowerW is
// derived from the capacity and C-rate, everything else from the base
// parameter set.
type CapacityPoint struct {
	CapacityKWh   float64 `json:"capacity_kwh"`
	MaxPowerW     float64 `json:"max_power_w"`
	BaselineCost  float64 `json:"baseline_cost"`
	HeuristicCost float64 `json:"heuristic_cost"`
	SelfCost      float64 `json:"self_consumption_cost"`
	OptimalCost   float64 `json:"optimal_cost"`

	// OptimalSavings is baseline − optimal cost; MarginalSavings is the
	// optimal-savings delta per added kWh relative to the previous (smaller)
	// capacity in the sweep, 0 for the first point.
	OptimalSavings  float64 `json:"optimal_savings"`
	MarginalSavings float64 `json:"marginal_savings_per_kwh"`
}

// SweepCapacities reruns the full simulation for each capacity, sizing max
// power as capacity × cRate (in kW per kWh). Capacities must be sorted
// ascending for MarginalSavings to be meaningful.
func SweepCapacities(days []model.DayRecord, base model.SimParams, capacitiesKWh []float64, cRate float64) []CapacityPoint {
	engine := sim.New()
	points := make([]CapacityPoint, 0, len(capacitiesKWh))

	for i, capKWh := range capacitiesKWh {
		params := base
		params.CapacityKWh = capKWh
		if cRate > 0 {
			params.MaxPowerW = capKWh * cRate * 1000
		}

		res := engine.Run(days, params)
		pt := CapacityPoint{
			CapacityKWh:    capKWh,
			MaxPowerW:      params.MaxPowerW,
			BaselineCost:   res.NoBatteryCost,
			HeuristicCost:  res.Heuristic.TotalCost,
			SelfCost:       res.SelfConsume.TotalCost,
			OptimalCost:    res.Optimal.TotalCost,
			OptimalSavings: res.NoBatteryCost - res.Optimal.TotalCost,
		}
		if i > 0 {
			prev := points[i-1]
			dCap := capKWh - prev.CapacityKWh
			if dCap > 0 {
				pt.MarginalSavings = (pt.OptimalSavings - prev.OptimalSavings) / dCap
			}
		}
		points = append(points, pt)
	}
	return points
}
