package model

// HourCost computes the grid cost for one hour given net load and battery
// action, all in W (Wh over a one-hour slot):
//
//	cost = (importW × price − exportW × price × exportCoeff) / 1000
//
// The /1000 converts Wh to kWh to match the price unit. chargeW and
// dischargeW are assumed non-negative and mutually exclusive; callers
// enforce power limits and SoC bounds, this function does not clamp.
func HourCost(netLoadW, chargeW, dischargeW, priceKWh, exportCoeff float64) float64 {
	net := netLoadW + chargeW - dischargeW
	imp := 0.0
	if net > 0 {
		imp = net
	}
	exp := 0.0
	if net < 0 {
		exp = -net
	}
	return (imp*priceKWh - exp*priceKWh*exportCoeff) / 1000
}
