package strategy

import "sort"

// DailyPercentiles computes the P33/P67 price thresholds for one day.
//
// Index convention: idx = (n-1) * pct / 100 with integer truncation.
// This deliberately differs from numpy-style linear interpolation; the
// threshold is always an actual price from the day, and downstream
// results depend on matching this exact formula.
func DailyPercentiles(prices []float64) (p33, p67 float64) {
	n := len(prices)
	if n == 0 {
		return 0, 0
	}
	sorted := make([]float64, n)
	copy(sorted, prices)
	sort.Float64s(sorted)

	idx33 := (n - 1) * 33 / 100
	idx67 := (n - 1) * 67 / 100
	return sorted[idx33], sorted[idx67]
}
