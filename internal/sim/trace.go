package sim

import "battery-sim/internal/model"

// TraceRow is one hour of combined output. This is the primary artifact
// for "what happened" in a simulation run: the inputs alongside every
// strategy's SoC and the optimal strategy's derived action.
type TraceRow struct {
	Index int
	Date  string

	NetLoadW float64
	PriceKWh float64

	HeuristicSoCKWh   float64
	SelfConsumeSoCKWh float64
	OptimalSoCKWh     float64

	OptimalAction model.Action
}

// BuildTrace assembles per-hour rows from a simulation result. Each row
// carries its day's date label. The optimal action is recovered from
// consecutive SoC deltas, the first hour's delta taken against the initial
// SoC (the minimum usable level).
func BuildTrace(days []model.DayRecord, res model.SimResult, params model.SimParams) []TraceRow {
	tl := model.Flatten(days)
	rows := make([]TraceRow, 0, res.Hours)
	prevSoCWh := params.Bounds().InitialSoCWh

	for i := 0; i < res.Hours; i++ {
		date := ""
		for d, start := range tl.DayStarts {
			if i >= start && i < tl.DayEnd(d) {
				date = tl.Dates[d]
				break
			}
		}

		optSoCWh := res.Optimal.SoCKWh[i] * 1000
		rows = append(rows, TraceRow{
			Index:             i,
			Date:              date,
			NetLoadW:          res.NetLoadW[i],
			PriceKWh:          res.PriceKWh[i],
			HeuristicSoCKWh:   res.Heuristic.SoCKWh[i],
			SelfConsumeSoCKWh: res.SelfConsume.SoCKWh[i],
			OptimalSoCKWh:     res.Optimal.SoCKWh[i],
			OptimalAction:     model.ActionFromDeltaWh(optSoCWh - prevSoCWh),
		})
		prevSoCWh = optSoCWh
	}
	return rows
}
