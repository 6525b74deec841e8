package strategy

import "battery-sim/internal/model"

// Arbitrage is the P33/P67 daily-percentile heuristic: charge at max power
// when the price is in the cheapest third of its day, discharge at max
// power when it is in the most expensive third, hold otherwise. Unlike
// self-consumption it will import from the grid to charge.
//
// Thresholds are computed per calendar day even on multi-day ranges, never
// across day boundaries.
type Arbitrage struct{}

func (Arbitrage) Name() string { return "heuristic" }

func (Arbitrage) Run(tl model.Timeline, b model.Bounds) model.StrategyResult {
	t := tl.Hours()
	socKWh := make([]float64, 0, t)
	currentSoC := b.InitialSoCWh
	totalCost := 0.0

	// Pre-compute thresholds per day and map each hour to its day index.
	thresholds := make([][2]float64, len(tl.DayStarts))
	hourDay := make([]int, t)
	for i, start := range tl.DayStarts {
		end := tl.DayEnd(i)
		p33, p67 := DailyPercentiles(tl.PriceKWh[start:end])
		thresholds[i] = [2]float64{p33, p67}
		for h := start; h < end; h++ {
			hourDay[h] = i
		}
	}

	for i := 0; i < t; i++ {
		price := tl.PriceKWh[i]
		th := thresholds[hourDay[i]]

		var charge, discharge float64
		switch {
		case price <= th[0]:
			// Cheap hour: charge as much as power and headroom allow.
			// The comparison is inclusive, so a price equal to both
			// thresholds (p33 == p67) takes the charge branch.
			charge = min3(b.MaxPowerW, b.SoCMaxWh-currentSoC)
		case price >= th[1]:
			// Expensive hour: discharge as much as possible.
			discharge = min3(b.MaxPowerW, currentSoC-b.SoCMinWh)
		default:
			// Mid-price: hold.
		}

		currentSoC += charge - discharge
		socKWh = append(socKWh, currentSoC/1000)
		totalCost += model.HourCost(tl.NetLoadW[i], charge, discharge, price, b.ExportCoeff)
	}

	return model.StrategyResult{SoCKWh: socKWh, TotalCost: totalCost}
}

// min3 returns the smallest of the values, floored at 0.
func min3(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	if m < 0 {
		return 0
	}
	return m
}
