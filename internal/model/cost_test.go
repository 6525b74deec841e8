package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourCost(t *testing.T) {
	tests := []struct {
		name        string
		netLoadW    float64
		chargeW     float64
		dischargeW  float64
		priceKWh    float64
		exportCoeff float64
		want        float64
	}{
		{
			name:     "pure import",
			netLoadW: 1000, priceKWh: 0.5, exportCoeff: 0.8,
			want: 0.5,
		},
		{
			name:     "pure export pays coefficient of spot",
			netLoadW: -1000, priceKWh: 0.5, exportCoeff: 0.8,
			want: -0.4,
		},
		{
			name:     "charging adds to import",
			netLoadW: 1000, chargeW: 500, priceKWh: 1, exportCoeff: 0.8,
			want: 1.5,
		},
		{
			name:     "discharge fully offsets import",
			netLoadW: 1000, dischargeW: 1000, priceKWh: 1, exportCoeff: 0.8,
			want: 0,
		},
		{
			name:     "discharge beyond load exports the remainder",
			netLoadW: 500, dischargeW: 1500, priceKWh: 1, exportCoeff: 0.5,
			want: -0.5,
		},
		{
			name:     "charging from PV surplus reduces export revenue",
			netLoadW: -2000, chargeW: 1000, priceKWh: 1, exportCoeff: 0.8,
			want: -0.8,
		},
		{
			name:     "zero net is free",
			netLoadW: -1000, chargeW: 1000, priceKWh: 2, exportCoeff: 1,
			want: 0,
		},
		{
			name:     "negative price import is revenue",
			netLoadW: 1000, priceKWh: -0.1, exportCoeff: 0.8,
			want: -0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourCost(tt.netLoadW, tt.chargeW, tt.dischargeW, tt.priceKWh, tt.exportCoeff)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}
