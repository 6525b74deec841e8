package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"battery-sim/internal/api/models"
	"battery-sim/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// BatteryHandler serves the battery presets bundled with the repo.
type BatteryHandler struct {
	log        *logrus.Logger
	batteryDir string
}

func NewBatteryHandler(log *logrus.Logger) *BatteryHandler {
	return &BatteryHandler{
		log:        log,
		batteryDir: resolveBatteryDir(),
	}
}

// ListBatteries handles GET /api/v1/batteries. A missing or unreadable
// preset directory yields an empty list, not an error.
func (h *BatteryHandler) ListBatteries(c *gin.Context) {
	batteries := []models.BatteryInfo{}

	entries, err := os.ReadDir(h.batteryDir)
	if err != nil {
		h.log.WithError(err).Warnf("battery presets unavailable in %s", h.batteryDir)
		c.JSON(http.StatusOK, gin.H{"batteries": batteries})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.batteryDir, entry.Name())
		info, err := loadBatteryInfo(path, entry.Name())
		if err != nil {
			h.log.WithError(err).Warnf("skipping invalid preset %s", path)
			continue
		}
		batteries = append(batteries, *info)
	}

	c.JSON(http.StatusOK, gin.H{"batteries": batteries})
}

func loadBatteryInfo(path, filename string) (*models.BatteryInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Battery config.BatteryConfig `yaml:"battery"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	id := strings.TrimSuffix(filename, ".yaml")
	name := wrapper.Battery.Name
	if name == "" {
		name = id
	}

	return &models.BatteryInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.BatterySpecs{
			CapacityKWh: wrapper.Battery.CapacityKWh,
			MaxPowerW:   wrapper.Battery.MaxPowerW,
		},
	}, nil
}
