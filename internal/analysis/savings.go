package analysis

import (
	"sort"

	"battery-sim/internal/model"
)

// StrategySavings summarizes one strategy against the no-battery baseline.
type StrategySavings struct {
	Name       string  `json:"name"`
	TotalCost  float64 `json:"total_cost"`
	Savings    float64 `json:"savings"`     // baseline − strategy cost
	SavingsPct float64 `json:"savings_pct"` // relative to |baseline|, 0 when baseline is 0
}

// Compare summarizes all strategies in a result, sorted descending by
// savings so the best dispatch comes first.
func Compare(res model.SimResult) []StrategySavings {
	baseline := res.NoBatteryCost
	out := []StrategySavings{
		summarize("heuristic", res.Heuristic.TotalCost, baseline),
		summarize("self_consumption", res.SelfConsume.TotalCost, baseline),
		summarize("optimal", res.Optimal.TotalCost, baseline),
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Savings > out[j].Savings
	})
	return out
}

func summarize(name string, cost, baseline float64) StrategySavings {
	s := StrategySavings{
		Name:      name,
		TotalCost: cost,
		Savings:   baseline - cost,
	}
	if baseline != 0 {
		abs := baseline
		if abs < 0 {
			abs = -abs
		}
		s.SavingsPct = s.Savings / abs * 100
	}
	return s
}
