package model

// Action is a human-friendly operating mode for one hour.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// ActionFromDeltaWh classifies an hour by its SoC delta.
func ActionFromDeltaWh(deltaWh float64) Action {
	switch {
	case deltaWh > 0:
		return ActionCharging
	case deltaWh < 0:
		return ActionDischarging
	default:
		return ActionIdle
	}
}
