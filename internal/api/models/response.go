package models

// StrategyInfo describes one dispatch strategy for discovery endpoints.
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters,omitempty"`
}

// ParameterInfo describes a strategy or battery parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// BatteryInfo represents a battery preset.
type BatteryInfo struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	File  string       `json:"file"`
	Specs BatterySpecs `json:"specs"`
}

// BatterySpecs contains headline battery specifications.
type BatterySpecs struct {
	CapacityKWh float64 `json:"capacity_kwh"`
	MaxPowerW   float64 `json:"max_power_w"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
