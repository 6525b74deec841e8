package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"battery-sim/internal/analysis"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/compare", NewCompareHandler(testLogger()).Compare)
	return router
}

func TestCompareSweep(t *testing.T) {
	router := compareRouter()

	body := `{
		"days": [
			{"date": "2024-01-01", "net_load_w": [600, -2000, -3000, 1200, 2400, 1800], "price_kwh": [0.30, 0.10, 0.05, 0.60, 0.80, 0.70]}
		],
		"capacities_kwh": [5, 10],
		"c_rate": 0.5
	}`
	w := postJSON(t, router, "/api/v1/compare", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Points []analysis.CapacityPoint `json:"points"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 2)

	assert.InDelta(t, 2500, resp.Points[0].MaxPowerW, 1e-9)
	assert.InDelta(t, 5000, resp.Points[1].MaxPowerW, 1e-9)
	assert.InDelta(t, resp.Points[0].BaselineCost, resp.Points[1].BaselineCost, 1e-9)
	assert.Zero(t, resp.Points[0].MarginalSavings)
}

func TestCompareRequiresCapacities(t *testing.T) {
	router := compareRouter()

	w := postJSON(t, router, "/api/v1/compare", `{"days": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestCompareMalformedDaysYieldsEmptyPoints(t *testing.T) {
	router := compareRouter()

	body := `{"days": 42, "capacities_kwh": [10]}`
	w := postJSON(t, router, "/api/v1/compare", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Points []analysis.CapacityPoint `json:"points"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 1)
	assert.Zero(t, resp.Points[0].BaselineCost)
	assert.Zero(t, resp.Points[0].OptimalCost)
}
