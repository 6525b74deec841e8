package model

// DayRecord is one day of hourly data. Net load and price must have equal
// length within a day (typically 20-24 entries around DST transitions, but
// nothing here assumes a fixed length).
//
// Net load convention: positive = grid import, negative = PV surplus/export.
type DayRecord struct {
	Date     string    `json:"date"`
	NetLoadW []float64 `json:"net_load_w"`
	PriceKWh []float64 `json:"price_kwh"`
}

// Timeline is the multi-day input flattened into contiguous hourly series.
// DayStarts holds the timeline index where each day begins (strictly
// increasing, first entry 0 when non-empty).
type Timeline struct {
	Dates     []string
	NetLoadW  []float64
	PriceKWh  []float64
	DayStarts []int
}

// Flatten concatenates the days' hourly series into a single Timeline,
// recording each day's starting offset so per-day computations (like the
// arbitrage thresholds) can recover day boundaries.
func Flatten(days []DayRecord) Timeline {
	tl := Timeline{}
	for _, day := range days {
		tl.DayStarts = append(tl.DayStarts, len(tl.NetLoadW))
		tl.Dates = append(tl.Dates, day.Date)
		tl.NetLoadW = append(tl.NetLoadW, day.NetLoadW...)
		tl.PriceKWh = append(tl.PriceKWh, day.PriceKWh...)
	}
	return tl
}

// Hours returns the total number of hourly slots on the timeline.
func (t Timeline) Hours() int { return len(t.NetLoadW) }

// DayEnd returns the timeline index one past the last hour of day i.
func (t Timeline) DayEnd(i int) int {
	if i+1 < len(t.DayStarts) {
		return t.DayStarts[i+1]
	}
	return len(t.NetLoadW)
}
