package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"battery-sim/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrace(t *testing.T) {
	days := []model.DayRecord{
		{
			Date:     "2024-03-01",
			NetLoadW: []float64{0, 0},
			PriceKWh: []float64{1, 10},
		},
		{
			Date:     "2024-03-02",
			NetLoadW: []float64{500, 500},
			PriceKWh: []float64{0.5, 0.5},
		},
	}
	params := model.DefaultSimParams()
	res := New().Run(days, params)

	rows := BuildTrace(days, res, params)

	require.Len(t, rows, 4)
	assert.Equal(t, "2024-03-01", rows[0].Date)
	assert.Equal(t, "2024-03-01", rows[1].Date)
	assert.Equal(t, "2024-03-02", rows[2].Date)
	assert.Equal(t, 3, rows[3].Index)
	assert.InDelta(t, 500, rows[2].NetLoadW, 1e-9)

	// The first hour's action is relative to the initial SoC (the floor):
	// the price spike in hour 1 makes charging in hour 0 optimal.
	assert.Equal(t, model.ActionCharging, rows[0].OptimalAction)
	assert.Equal(t, model.ActionDischarging, rows[1].OptimalAction)

	// Actions must be consistent with the SoC trace.
	prev := params.Bounds().InitialSoCWh / 1000
	for _, r := range rows {
		assert.Equal(t, model.ActionFromDeltaWh((r.OptimalSoCKWh-prev)*1000), r.OptimalAction, "hour %d", r.Index)
		prev = r.OptimalSoCKWh
	}
}

func TestBuildTraceEmpty(t *testing.T) {
	params := model.DefaultSimParams()
	res := New().Run(nil, params)
	assert.Empty(t, BuildTrace(nil, res, params))
}

func TestWriteTraceCSV(t *testing.T) {
	days := []model.DayRecord{{
		Date:     "2024-03-01",
		NetLoadW: []float64{600, -2000, 1200},
		PriceKWh: []float64{0.30, 0.10, 0.60},
	}}
	params := model.DefaultSimParams()
	res := New().Run(days, params)
	rows := BuildTrace(days, res, params)

	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, WriteTraceCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + 3 hours

	assert.Equal(t, []string{
		"index",
		"date",
		"net_load_w",
		"price_kwh",
		"soc_heuristic_kwh",
		"soc_self_consumption_kwh",
		"soc_optimal_kwh",
		"optimal_action",
	}, records[0])

	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "2024-03-01", records[1][1])
	assert.Equal(t, "600.000000", records[1][2])
}
