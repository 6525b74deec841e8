package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"battery-sim/internal/api/models"
	"battery-sim/internal/config"
	"battery-sim/internal/model"
	"battery-sim/internal/sim"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SimulateHandler handles simulation requests.
type SimulateHandler struct {
	log        *logrus.Logger
	batteryDir string
}

// NewSimulateHandler creates a simulation handler. Battery presets are
// resolved from BATTERY_DIR or ./examples/batteries.
func NewSimulateHandler(log *logrus.Logger) *SimulateHandler {
	return &SimulateHandler{
		log:        log,
		batteryDir: resolveBatteryDir(),
	}
}

// Simulate handles POST /api/v1/simulate.
//
// The kernel never fails outward: an unparseable request body or days
// array yields an empty-day result, and unparseable or absent params fall
// back to the defaults (optionally seeded from a named preset). The
// response is the complete simulation result.
func (h *SimulateHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("simulate: malformed request body, using empty input")
	}

	days := decodeDays(req.Days, h.log)
	params := h.decodeParams(req.Params, req.BatteryFile)

	res := sim.New().Run(days, params)

	h.log.WithFields(logrus.Fields{
		"days":  len(days),
		"hours": res.Hours,
	}).Info("simulation complete")

	c.JSON(http.StatusOK, res)
}

// decodeDays parses the raw days array, degrading to zero days on failure.
func decodeDays(raw json.RawMessage, log *logrus.Logger) []model.DayRecord {
	if len(raw) == 0 {
		return nil
	}
	var days []model.DayRecord
	if err := json.Unmarshal(raw, &days); err != nil {
		log.WithError(err).Warn("simulate: unparseable days, treating as empty")
		return nil
	}
	return days
}

// decodeParams resolves the effective parameter set: defaults, overlaid by
// a named preset when given, overlaid by whatever fields the raw params
// carry. A JSON error leaves the previous layer intact.
func (h *SimulateHandler) decodeParams(raw json.RawMessage, batteryFile string) model.SimParams {
	params := model.DefaultSimParams()

	if batteryFile != "" {
		path := filepath.Join(h.batteryDir, batteryFile+".yaml")
		if cfg, err := config.LoadUnchecked(path); err == nil {
			params = cfg.Battery.ToSimParams()
		} else {
			h.log.WithError(err).Warnf("simulate: battery preset %q not loadable, using defaults", batteryFile)
		}
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			h.log.WithError(err).Warn("simulate: unparseable params, keeping defaults")
			params = model.DefaultSimParams()
		}
	}
	return params
}

func resolveBatteryDir() string {
	dir := os.Getenv("BATTERY_DIR")
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, "examples", "batteries")
		} else {
			dir = "./examples/batteries"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}
