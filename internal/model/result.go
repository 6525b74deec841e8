package model

// StrategyResult is the outcome of one dispatch strategy: the SoC after
// each hour (kWh, one entry per timeline hour) and the net electricity
// cost over the whole period (positive = net expenditure).
type StrategyResult struct {
	SoCKWh    []float64 `json:"soc_kwh"`
	TotalCost float64   `json:"total_cost"`
}

// SimResult is the complete simulation output. The flattened net load and
// price series are echoed back so a client can co-plot them with the SoC
// traces without re-deriving the timeline.
type SimResult struct {
	Hours         int            `json:"hours"`
	Dates         []string       `json:"dates"`
	NetLoadW      []float64      `json:"net_load_w"`
	PriceKWh      []float64      `json:"price_kwh"`
	Heuristic     StrategyResult `json:"heuristic"`
	SelfConsume   StrategyResult `json:"self_consumption"`
	Optimal       StrategyResult `json:"optimal"`
	NoBatteryCost float64        `json:"no_battery_cost"`
}
