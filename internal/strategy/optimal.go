package strategy

import (
	"math"

	"battery-sim/internal/model"
)

// socBins is the SoC discretization resolution for the optimizer.
// 200 bins gives 50 Wh steps on a 10 kWh battery; quantization error is
// bounded by half a bin. Resolution/runtime tradeoffs are a single-point
// change here.
const socBins = 200

// Optimal finds the minimum-cost schedule over the whole timeline by
// backward dynamic programming on a discretized SoC grid.
//
//  1. Discretize [SoCMin, SoCMax] into socBins levels.
//  2. Backward sweep: for each hour from T-1 down to 0 and each bin s,
//     pick the transition s→s2 minimizing hourCost(s→s2) + value[s2],
//     considering only bins reachable within one hour at max power.
//  3. Forward trace: from the bin nearest the initial SoC, follow the
//     recorded policy to reconstruct the optimal SoC path and cost.
//
// Complexity: O(T × socBins × reachable window). Within the discretized
// state space this is exact, not a heuristic: the value table covers every
// achievable schedule, including doing nothing.
type Optimal struct{}

func (Optimal) Name() string { return "optimal" }

func (Optimal) Run(tl model.Timeline, b model.Bounds) model.StrategyResult {
	t := tl.Hours()
	if t == 0 {
		return model.StrategyResult{SoCKWh: []float64{}, TotalCost: 0}
	}

	socRange := b.SoCMaxWh - b.SoCMinWh
	if socRange <= 0 {
		// Degenerate battery: no usable capacity, hold at the floor.
		socKWh := make([]float64, t)
		total := 0.0
		for i := 0; i < t; i++ {
			total += model.HourCost(tl.NetLoadW[i], 0, 0, tl.PriceKWh[i], b.ExportCoeff)
			socKWh[i] = b.SoCMinWh / 1000
		}
		return model.StrategyResult{SoCKWh: socKWh, TotalCost: total}
	}

	binWh := socRange / socBins

	binToWh := func(bin int) float64 { return b.SoCMinWh + float64(bin)*binWh }
	whToBin := func(wh float64) int {
		bin := int(math.Round((wh - b.SoCMinWh) / binWh))
		if bin < 0 {
			return 0
		}
		if bin > socBins {
			return socBins
		}
		return bin
	}

	// Bins reachable in one hour, bounded by the power limit.
	maxBinDelta := int(math.Ceil(b.MaxPowerW / binWh))

	inf := math.MaxFloat64 / 2

	// valueNext[s] = min cost from hour t+1 to the end starting at bin s;
	// valueCurr is the row being filled. Two rolling rows suffice for the
	// backward sweep, so value memory stays linear in socBins rather than
	// T × socBins.
	valueNext := make([]float64, socBins+1)
	valueCurr := make([]float64, socBins+1)

	// policy[hour][s] = destination bin chosen at hour from bin s.
	policy := make([][]uint16, t)
	for h := range policy {
		policy[h] = make([]uint16, socBins+1)
	}

	// Terminal value: zero at the horizon regardless of final SoC.

	for hour := t - 1; hour >= 0; hour-- {
		nl := tl.NetLoadW[hour]
		price := tl.PriceKWh[hour]

		for s := 0; s <= socBins; s++ {
			socWh := binToWh(s)
			bestCost := inf
			bestNext := uint16(s)

			sLo := s - maxBinDelta
			if sLo < 0 {
				sLo = 0
			}
			sHi := s + maxBinDelta
			if sHi > socBins {
				sHi = socBins
			}

			for s2 := sLo; s2 <= sHi; s2++ {
				delta := binToWh(s2) - socWh // positive = charging

				var charge, discharge float64
				if delta >= 0 {
					charge = delta
				} else {
					discharge = -delta
				}

				cost := model.HourCost(nl, charge, discharge, price, b.ExportCoeff) + valueNext[s2]
				if cost < bestCost {
					bestCost = cost
					bestNext = uint16(s2)
				}
			}

			valueCurr[s] = bestCost
			policy[hour][s] = bestNext
		}

		valueCurr, valueNext = valueNext, valueCurr
	}

	// Forward trace: follow the policy from the initial bin.
	socKWh := make([]float64, 0, t)
	currentBin := whToBin(b.InitialSoCWh)
	totalCost := 0.0

	for hour := 0; hour < t; hour++ {
		nextBin := int(policy[hour][currentBin])
		delta := binToWh(nextBin) - binToWh(currentBin)

		var charge, discharge float64
		if delta >= 0 {
			charge = delta
		} else {
			discharge = -delta
		}

		totalCost += model.HourCost(tl.NetLoadW[hour], charge, discharge, tl.PriceKWh[hour], b.ExportCoeff)
		socKWh = append(socKWh, binToWh(nextBin)/1000)
		currentBin = nextBin
	}

	return model.StrategyResult{SoCKWh: socKWh, TotalCost: totalCost}
}
