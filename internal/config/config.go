package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"battery-sim/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load battery parameters from a separate YAML
	// (e.g. examples/batteries/*.yaml). If both BatteryFile and Battery
	// are provided, Battery overrides BatteryFile.
	BatteryFile string        `yaml:"battery_file"`
	Battery     BatteryConfig `yaml:"battery"`
}

// BatteryConfig mirrors model.SimParams with a display name, in YAML form.
type BatteryConfig struct {
	Name        string  `yaml:"name"`
	CapacityKWh float64 `yaml:"capacity_kwh"`
	MaxPowerW   float64 `yaml:"max_power_w"`
	SoCMinPct   float64 `yaml:"soc_min_pct"`
	SoCMaxPct   float64 `yaml:"soc_max_pct"`
	ExportCoeff float64 `yaml:"export_coeff"`
}

// Load reads, merges and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If battery_file is set, load it and merge in any explicit overrides
	// from c.Battery.
	if c.BatteryFile != "" {
		batteryPath := c.BatteryFile
		if !filepath.IsAbs(batteryPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), batteryPath)
			if _, err := os.Stat(cand); err == nil {
				batteryPath = cand
			}
		}
		loaded, err := loadBatteryFile(batteryPath)
		if err != nil {
			return nil, err
		}
		c.Battery = MergeBattery(loaded, c.Battery)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	b := c.Battery
	if b.CapacityKWh <= 0 {
		return errors.New("battery.capacity_kwh must be > 0")
	}
	if b.MaxPowerW <= 0 {
		return errors.New("battery.max_power_w must be > 0")
	}
	if b.SoCMinPct < 0 || b.SoCMaxPct > 100 || b.SoCMinPct > b.SoCMaxPct {
		return fmt.Errorf("battery SoC bounds must satisfy 0 <= soc_min_pct <= soc_max_pct <= 100, got %v..%v", b.SoCMinPct, b.SoCMaxPct)
	}
	if b.ExportCoeff < 0 || b.ExportCoeff > 1 {
		return fmt.Errorf("battery.export_coeff must be in [0, 1], got %v", b.ExportCoeff)
	}
	return nil
}

// ToSimParams converts the YAML shape to simulation parameters.
func (b BatteryConfig) ToSimParams() model.SimParams {
	return model.SimParams{
		CapacityKWh: b.CapacityKWh,
		MaxPowerW:   b.MaxPowerW,
		SoCMinPct:   b.SoCMinPct,
		SoCMaxPct:   b.SoCMaxPct,
		ExportCoeff: b.ExportCoeff,
	}
}

type batteryFileWrapper struct {
	Battery BatteryConfig `yaml:"battery"`
}

func loadBatteryFile(path string) (BatteryConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BatteryConfig{}, err
	}
	var w batteryFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BatteryConfig{}, err
	}
	return w.Battery, nil
}

// MergeBattery overlays non-zero fields from override onto base.
// Note: a literal 0 in an override is indistinguishable from "unset" and
// keeps the base value; presets use non-zero values throughout.
func MergeBattery(base, override BatteryConfig) BatteryConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityKWh != 0 {
		out.CapacityKWh = override.CapacityKWh
	}
	if override.MaxPowerW != 0 {
		out.MaxPowerW = override.MaxPowerW
	}
	if override.SoCMinPct != 0 {
		out.SoCMinPct = override.SoCMinPct
	}
	if override.SoCMaxPct != 0 {
		out.SoCMaxPct = override.SoCMaxPct
	}
	if override.ExportCoeff != 0 {
		out.ExportCoeff = override.ExportCoeff
	}
	return out
}
