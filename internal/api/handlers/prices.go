package handlers

import (
	"fmt"
	"net/http"
	"time"

	"battery-sim/internal/api/models"
	"battery-sim/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PricesHandler proxies day-ahead spot price lookups.
type PricesHandler struct {
	log *logrus.Logger
}

func NewPricesHandler(log *logrus.Logger) *PricesHandler {
	return &PricesHandler{log: log}
}

// GetPrices handles GET /api/v1/prices.
func (h *PricesHandler) GetPrices(c *gin.Context) {
	var req models.PricesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if !data.KnownZone(req.Zone) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_ZONE",
				Message: fmt.Sprintf("unsupported bidding zone %q", req.Zone),
			},
		})
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DATE",
				Message: "start_date must be YYYY-MM-DD",
			},
		})
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DATE",
				Message: "end_date must be YYYY-MM-DD",
			},
		})
		return
	}

	client := data.NewPriceClient("", req.FXRate)
	days, err := client.FetchRange(req.Zone, start, end)
	if err != nil {
		if apiErr, ok := err.(*data.PriceAPIError); ok {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    apiErr.Code,
					Message: apiErr.Message,
					Details: map[string]interface{}{
						"status_code": apiErr.StatusCode,
						"retry_after": apiErr.RetryAfter,
					},
				},
			})
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PRICE_FETCH_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"zone":  req.Zone,
		"days":  days,
		"count": len(days),
	})
}

// ListZones handles GET /api/v1/zones.
func (h *PricesHandler) ListZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"zones": data.BiddingZones})
}
