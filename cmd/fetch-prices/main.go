package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"battery-sim/internal/data"
	"battery-sim/internal/model"
)

// fetch-prices downloads day-ahead spot prices from Energy-Charts and
// writes (or updates) a day-records JSON file the simulator can consume.
// With --days it merges prices into existing records by date; otherwise
// it emits records with zero net load, ready to be filled in from meter
// exports.
func main() {
	zone := flag.String("zone", "PL", "Bidding zone (see /api/v1/zones)")
	startStr := flag.String("start", "", "Start date YYYY-MM-DD (inclusive)")
	endStr := flag.String("end", "", "End date YYYY-MM-DD (exclusive)")
	fxRate := flag.Float64("fx", 1, "EUR to local currency exchange rate")
	daysPath := flag.String("days", "", "Existing day-records JSON to merge prices into (optional)")
	outPath := flag.String("out", "days.json", "Output day-records JSON path")
	flag.Parse()

	if !data.KnownZone(*zone) {
		fatal(fmt.Errorf("unknown bidding zone %q", *zone))
	}
	start, err := time.Parse("2006-01-02", *startStr)
	if err != nil {
		fatal(fmt.Errorf("--start must be YYYY-MM-DD: %w", err))
	}
	end, err := time.Parse("2006-01-02", *endStr)
	if err != nil {
		fatal(fmt.Errorf("--end must be YYYY-MM-DD: %w", err))
	}

	client := data.NewPriceClient("", *fxRate)
	priceDays, err := client.FetchRange(*zone, start, end)
	if err != nil {
		fatal(err)
	}
	if len(priceDays) == 0 {
		fatal(fmt.Errorf("no prices returned for %s %s..%s", *zone, *startStr, *endStr))
	}

	var existing map[string]model.DayRecord
	if *daysPath != "" {
		loaded, err := data.LoadDaysJSON(*daysPath)
		if err != nil {
			fatal(fmt.Errorf("loading %s: %w", *daysPath, err))
		}
		existing = make(map[string]model.DayRecord, len(loaded))
		for _, d := range loaded {
			existing[d.Date] = d
		}
	}

	days := make([]model.DayRecord, 0, len(priceDays))
	skipped := 0
	for _, pd := range priceDays {
		rec := model.DayRecord{
			Date:     pd.Date,
			NetLoadW: make([]float64, len(pd.PriceKWh)),
			PriceKWh: pd.PriceKWh,
		}
		if prev, ok := existing[pd.Date]; ok {
			if len(prev.NetLoadW) != len(pd.PriceKWh) {
				fmt.Fprintf(os.Stderr, "warning: %s has %d load samples but %d prices; skipping\n",
					pd.Date, len(prev.NetLoadW), len(pd.PriceKWh))
				skipped++
				continue
			}
			rec.NetLoadW = prev.NetLoadW
		}
		days = append(days, rec)
	}

	if err := data.SaveDaysJSON(*outPath, days); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %d days to %s (zone=%s, fx=%.4f", len(days), *outPath, *zone, *fxRate)
	if skipped > 0 {
		fmt.Printf(", %d skipped", skipped)
	}
	fmt.Println(")")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
