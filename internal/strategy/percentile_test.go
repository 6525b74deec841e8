package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyPercentiles(t *testing.T) {
	tests := []struct {
		name    string
		prices  []float64
		wantP33 float64
		wantP67 float64
	}{
		{
			name:   "five values",
			prices: []float64{5, 1, 3, 2, 4},
			// sorted [1 2 3 4 5]: idx33 = 4*33/100 = 1, idx67 = 4*67/100 = 2
			wantP33: 2,
			wantP67: 3,
		},
		{
			name:    "single value",
			prices:  []float64{0.42},
			wantP33: 0.42,
			wantP67: 0.42,
		},
		{
			name:    "two values",
			prices:  []float64{2, 1},
			wantP33: 1,
			wantP67: 1,
		},
		{
			name:    "flat prices",
			prices:  []float64{0.5, 0.5, 0.5, 0.5},
			wantP33: 0.5,
			wantP67: 0.5,
		},
		{
			name:    "empty day",
			prices:  nil,
			wantP33: 0,
			wantP67: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p33, p67 := DailyPercentiles(tt.prices)
			assert.InDelta(t, tt.wantP33, p33, 1e-12)
			assert.InDelta(t, tt.wantP67, p67, 1e-12)
		})
	}
}

func TestDailyPercentilesTwentyFourHours(t *testing.T) {
	prices := make([]float64, 24)
	for i := range prices {
		prices[i] = float64(24 - i) // descending, sorted is 1..24
	}
	p33, p67 := DailyPercentiles(prices)
	// idx33 = 23*33/100 = 7, idx67 = 23*67/100 = 15 (truncating division)
	assert.InDelta(t, 8, p33, 1e-12)
	assert.InDelta(t, 16, p67, 1e-12)
}

func TestDailyPercentilesDoesNotMutateInput(t *testing.T) {
	prices := []float64{3, 1, 2}
	DailyPercentiles(prices)
	assert.Equal(t, []float64{3, 1, 2}, prices)
}
