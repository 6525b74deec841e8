package main

import (
	"flag"
	"fmt"
	"math"

	"battery-sim/internal/analysis"
	"battery-sim/internal/model"
	"battery-sim/internal/sim"
)

// Demo:
// - Build a synthetic multi-day household profile (evening peak, midday PV,
//   duck-curve prices)
// - Run all three strategies plus the baseline
// - Print an hour-by-hour excerpt and the savings comparison
func main() {
	numDays := flag.Int("days", 3, "Number of synthetic days to simulate")
	capacity := flag.Float64("capacity", 10, "Battery capacity in kWh")
	maxPower := flag.Float64("max-power", 5000, "Max charge/discharge power in W")
	flag.Parse()

	days := syntheticDays(*numDays)

	params := model.DefaultSimParams()
	params.CapacityKWh = *capacity
	params.MaxPowerW = *maxPower

	res := sim.New().Run(days, params)

	fmt.Printf("Simulated %d hours over %d synthetic days\n", res.Hours, len(days))
	fmt.Printf("Battery: %.1f kWh, %.1f kW, SoC %.0f-%.0f%%, export coeff %.2f\n\n",
		params.CapacityKWh, params.MaxPowerW/1000, params.SoCMinPct, params.SoCMaxPct, params.ExportCoeff)

	rows := sim.BuildTrace(days, res, params)
	for i := 0; i < minInt(24, len(rows)); i++ {
		r := rows[i]
		fmt.Printf("h=%02d load=%7.0fW price=%.3f  heur=%5.2f self=%5.2f opt=%5.2f kWh  %s\n",
			r.Index, r.NetLoadW, r.PriceKWh,
			r.HeuristicSoCKWh, r.SelfConsumeSoCKWh, r.OptimalSoCKWh,
			r.OptimalAction)
	}

	fmt.Printf("\n%-18s %12s %12s %8s\n", "strategy", "cost", "savings", "pct")
	for _, s := range analysis.Compare(res) {
		fmt.Printf("%-18s %12.2f %12.2f %7.1f%%\n", s.Name, s.TotalCost, s.Savings, s.SavingsPct)
	}
	fmt.Printf("%-18s %12.2f\n", "no battery", res.NoBatteryCost)
}

// syntheticDays builds a plausible household: base load with morning and
// evening peaks, midday PV surplus, and a duck-curve price shape.
func syntheticDays(n int) []model.DayRecord {
	days := make([]model.DayRecord, 0, n)
	for d := 0; d < n; d++ {
		netLoad := make([]float64, 24)
		price := make([]float64, 24)
		for h := 0; h < 24; h++ {
			load := 400.0
			load += 800 * peak(float64(h), 7, 2)   // morning peak
			load += 1500 * peak(float64(h), 19, 3) // evening peak
			pv := 3000 * peak(float64(h), 13, 3)
			netLoad[h] = load - pv

			price[h] = 0.45 + 0.25*peak(float64(h), 19, 3) + 0.10*peak(float64(h), 8, 2) - 0.20*peak(float64(h), 13, 3)
		}
		days = append(days, model.DayRecord{
			Date:     fmt.Sprintf("2024-06-%02d", d+1),
			NetLoadW: netLoad,
			PriceKWh: price,
		})
	}
	return days
}

// peak is a gaussian bump centered at c with width w, in [0,1].
func peak(h, c, w float64) float64 {
	return math.Exp(-((h - c) * (h - c)) / (2 * w * w))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
