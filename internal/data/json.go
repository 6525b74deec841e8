package data

import (
	"encoding/json"
	"os"

	"battery-sim/internal/model"
)

// LoadDaysJSON reads a day-record array from disk. The file holds the same
// shape the API accepts: [{date, net_load_w: [...], price_kwh: [...]}, ...].
func LoadDaysJSON(path string) ([]model.DayRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var days []model.DayRecord
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// SaveDaysJSON writes a day-record array to disk, indented for diffing.
func SaveDaysJSON(path string, days []model.DayRecord) error {
	raw, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
