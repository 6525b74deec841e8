package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"battery-sim/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStrategies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/strategies", NewStrategyHandler().ListStrategies)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Strategies []models.StrategyInfo `json:"strategies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Strategies, 3)

	names := make([]string, len(resp.Strategies))
	for i, s := range resp.Strategies {
		names[i] = s.Name
		assert.NotEmpty(t, s.Description)
	}
	assert.Equal(t, []string{"heuristic", "self_consumption", "optimal"}, names)
}
