package sim

import (
	"battery-sim/internal/model"
	"battery-sim/internal/strategy"
)

// Engine runs the three dispatch strategies plus the no-battery baseline
// over one multi-day input and assembles the combined result. One call is
// one complete, deterministic computation; no state survives between runs.
type Engine struct {
	strategies []strategy.Strategy
}

func New() *Engine {
	return &Engine{
		strategies: []strategy.Strategy{
			strategy.Arbitrage{},
			strategy.SelfConsumption{},
			strategy.Optimal{},
		},
	}
}

// Run flattens the days into a contiguous timeline, derives the absolute
// SoC envelope from the percentage parameters, and executes every strategy
// independently on the same inputs. An empty day list yields an empty
// result with all costs zero.
func (e *Engine) Run(days []model.DayRecord, params model.SimParams) model.SimResult {
	tl := model.Flatten(days)
	b := params.Bounds()

	byName := make(map[string]model.StrategyResult, len(e.strategies))
	for _, s := range e.strategies {
		byName[s.Name()] = s.Run(tl, b)
	}

	return model.SimResult{
		Hours:         tl.Hours(),
		Dates:         tl.Dates,
		NetLoadW:      tl.NetLoadW,
		PriceKWh:      tl.PriceKWh,
		Heuristic:     byName["heuristic"],
		SelfConsume:   byName["self_consumption"],
		Optimal:       byName["optimal"],
		NoBatteryCost: BaselineCost(tl, params.ExportCoeff),
	}
}

// BaselineCost is the total cost with no battery at all: the cost model
// applied with zero charge and discharge at every hour.
func BaselineCost(tl model.Timeline, exportCoeff float64) float64 {
	total := 0.0
	for i := 0; i < tl.Hours(); i++ {
		total += model.HourCost(tl.NetLoadW[i], 0, 0, tl.PriceKWh[i], exportCoeff)
	}
	return total
}
