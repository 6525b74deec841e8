package handlers

import (
	"net/http"

	"battery-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles strategy discovery requests.
type StrategyHandler struct{}

func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "heuristic",
			Description: "Daily P33/P67 price arbitrage. Charges at max power in the cheapest third of each day, discharges in the most expensive third. Can import from the grid to charge.",
		},
		{
			Name:        "self_consumption",
			Description: "Stores excess PV production and discharges to offset grid import. Never imports from the grid to charge; ignores prices.",
		},
		{
			Name:        "optimal",
			Description: "Perfect-foresight minimum-cost schedule via backward dynamic programming over a 200-bin SoC grid. Exact within the discretization.",
		},
	}

	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
