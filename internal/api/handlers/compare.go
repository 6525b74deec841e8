package handlers

import (
	"encoding/json"
	"net/http"

	"battery-sim/internal/analysis"
	"battery-sim/internal/api/models"
	"battery-sim/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CompareHandler handles capacity-sweep requests.
type CompareHandler struct {
	log *logrus.Logger
}

func NewCompareHandler(log *logrus.Logger) *CompareHandler {
	return &CompareHandler{log: log}
}

// Compare handles POST /api/v1/compare: one simulation per capacity with
// max power sized by C-rate, summarized against the baseline.
func (h *CompareHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	days := decodeDays(req.Days, h.log)

	// Same permissive layering as /simulate: bad params keep defaults.
	base := model.DefaultSimParams()
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &base); err != nil {
			base = model.DefaultSimParams()
			h.log.WithError(err).Warn("compare: unparseable params, keeping defaults")
		}
	}

	points := analysis.SweepCapacities(days, base, req.CapacitiesKWh, req.CRate)

	c.JSON(http.StatusOK, gin.H{"points": points})
}
