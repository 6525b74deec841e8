package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteTraceCSV writes one row per timeline hour, suitable for plotting
// the three SoC traces against net load and price.
func WriteTraceCSV(path string, rows []TraceRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"date",
		"net_load_w",
		"price_kwh",
		"soc_heuristic_kwh",
		"soc_self_consumption_kwh",
		"soc_optimal_kwh",
		"optimal_action",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			r.Date,
			fmtFloat(r.NetLoadW),
			fmtFloat(r.PriceKWh),
			fmtFloat(r.HeuristicSoCKWh),
			fmtFloat(r.SelfConsumeSoCKWh),
			fmtFloat(r.OptimalSoCKWh),
			string(r.OptimalAction),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
