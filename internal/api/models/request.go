package models

import "encoding/json"

// SimulateRequest represents the request body for running a simulation.
// Days and Params are kept raw so the handler can apply the kernel's
// permissive decoding: an unparseable days array degrades to zero days and
// unparseable or absent params degrade to the default parameter set, never
// to a reported failure.
type SimulateRequest struct {
	Days   json.RawMessage `json:"days"`
	Params json.RawMessage `json:"params"`

	// BatteryFile optionally names a preset under examples/batteries
	// (filename without extension); explicit params override preset fields.
	BatteryFile string `json:"battery_file,omitempty"`
}

// CompareRequest represents a capacity-sweep request: the same day data
// simulated once per capacity, with max power sized by C-rate.
type CompareRequest struct {
	Days   json.RawMessage `json:"days"`
	Params json.RawMessage `json:"params"`

	CapacitiesKWh []float64 `json:"capacities_kwh" binding:"required"`
	CRate         float64   `json:"c_rate,omitempty"` // kW per kWh; 0 keeps params.max_power_w
}

// PricesRequest holds the query parameters for fetching day-ahead prices.
type PricesRequest struct {
	Zone      string  `form:"zone" binding:"required"`
	StartDate string  `form:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string  `form:"end_date" binding:"required"`   // YYYY-MM-DD
	FXRate    float64 `form:"fx_rate,omitempty"`             // EUR multiplier, default 1
}
