package strategy

import "battery-sim/internal/model"

// SelfConsumption charges only from excess PV (net load negative, the
// house is exporting) and discharges to offset grid import. It never
// imports from the grid to charge and ignores prices entirely.
type SelfConsumption struct{}

func (SelfConsumption) Name() string { return "self_consumption" }

func (SelfConsumption) Run(tl model.Timeline, b model.Bounds) model.StrategyResult {
	t := tl.Hours()
	socKWh := make([]float64, 0, t)
	currentSoC := b.InitialSoCWh
	totalCost := 0.0

	for i := 0; i < t; i++ {
		nl := tl.NetLoadW[i]

		var charge, discharge float64
		if nl < 0 {
			// Excess PV: divert to the battery instead of exporting.
			charge = min3(-nl, b.MaxPowerW, b.SoCMaxWh-currentSoC)
		} else {
			// Net consumption: discharge to reduce grid import.
			discharge = min3(nl, b.MaxPowerW, currentSoC-b.SoCMinWh)
		}

		currentSoC += charge - discharge
		socKWh = append(socKWh, currentSoC/1000)
		totalCost += model.HourCost(nl, charge, discharge, tl.PriceKWh[i], b.ExportCoeff)
	}

	return model.StrategyResult{SoCKWh: socKWh, TotalCost: totalCost}
}
