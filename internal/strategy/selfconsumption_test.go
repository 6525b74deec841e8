package strategy

import (
	"testing"

	"battery-sim/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSelfConsumptionStoresSurplusOffsetsImport(t *testing.T) {
	// Hour 0 imports with an empty battery (nothing to discharge), hour 1
	// has 1 kW of PV surplus that goes into the battery instead of export.
	tl := model.Flatten([]model.DayRecord{{
		Date:     "2024-01-01",
		NetLoadW: []float64{1000, -1000},
		PriceKWh: []float64{0.5, 0.5},
	}})
	b := fullRangeBounds(2000, 1000, 1)

	res := SelfConsumption{}.Run(tl, b)

	assert.Equal(t, []float64{0, 1}, res.SoCKWh)
	assert.InDelta(t, 0.5, res.TotalCost, 1e-9)
}

func TestSelfConsumptionNeverChargesFromGrid(t *testing.T) {
	// All-import profile with a rock-bottom price. Arbitrage would buy;
	// self-consumption must not, so SoC never rises above the floor.
	tl := model.Flatten([]model.DayRecord{{
		Date:     "2024-01-01",
		NetLoadW: []float64{500, 500, 500, 500},
		PriceKWh: []float64{0.01, 0.01, 0.01, 0.01},
	}})
	b := fullRangeBounds(5000, 2000, 0.8)

	res := SelfConsumption{}.Run(tl, b)

	for i, soc := range res.SoCKWh {
		assert.Zero(t, soc, "hour %d", i)
	}
	assert.InDelta(t, 4*500*0.01/1000, res.TotalCost, 1e-9)
}

func TestSelfConsumptionIgnoresPrices(t *testing.T) {
	days := []model.DayRecord{{
		Date:     "2024-01-01",
		NetLoadW: []float64{-2000, 1500, -500, 3000},
		PriceKWh: []float64{0.1, 0.9, 0.5, 0.3},
	}}
	flat := []model.DayRecord{{
		Date:     "2024-01-01",
		NetLoadW: days[0].NetLoadW,
		PriceKWh: []float64{1, 1, 1, 1},
	}}
	b := fullRangeBounds(5000, 2000, 0.8)

	a := SelfConsumption{}.Run(model.Flatten(days), b)
	c := SelfConsumption{}.Run(model.Flatten(flat), b)

	assert.Equal(t, a.SoCKWh, c.SoCKWh, "dispatch must not depend on price")
}

func TestSelfConsumptionPowerAndCapacityLimits(t *testing.T) {
	// 3 kW of surplus against a 1 kW inverter: only 1 kWh stored per hour,
	// and the ceiling cuts the last charge short.
	tl := model.Flatten([]model.DayRecord{{
		Date:     "2024-01-01",
		NetLoadW: []float64{-3000, -3000, -3000},
		PriceKWh: []float64{0.5, 0.5, 0.5},
	}})
	b := fullRangeBounds(2500, 1000, 1)

	res := SelfConsumption{}.Run(tl, b)

	assert.Equal(t, []float64{1, 2, 2.5}, res.SoCKWh)
}

func TestSelfConsumptionDischargeLimitedByStoredEnergy(t *testing.T) {
	tl := model.Flatten([]model.DayRecord{{
		Date:     "2024-01-01",
		NetLoadW: []float64{-800, 2000},
		PriceKWh: []float64{0.5, 0.5},
	}})
	b := fullRangeBounds(5000, 2000, 1)

	res := SelfConsumption{}.Run(tl, b)

	// Only the 800 Wh stored in hour 0 is available in hour 1.
	assert.Equal(t, []float64{0.8, 0}, res.SoCKWh)
	assert.InDelta(t, (2000-800)*0.5/1000, res.TotalCost, 1e-9)
}
