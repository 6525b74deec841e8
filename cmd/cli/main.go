package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"battery-sim/internal/analysis"
	"battery-sim/internal/config"
	"battery-sim/internal/data"
	"battery-sim/internal/model"
	"battery-sim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --days days.json --config examples/config.yaml --out results/trace.csv")
	fmt.Println("  cli compare --days days.json --capacities 5,10,15,20 --c-rate 0.5")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate runs all three strategies plus the no-battery baseline")
	fmt.Println("  - compare reruns the simulation per capacity and prints marginal savings")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	daysPath := fs.String("days", "days.json", "Path to day-records JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional; defaults used otherwise)")
	outPath := fs.String("out", "", "Optional output CSV path (e.g. results/trace.csv)")
	_ = fs.Parse(args)

	days := loadDays(*daysPath)
	params := loadParams(*cfgPath)

	res := sim.New().Run(days, params)

	fmt.Printf("Simulated %d hours over %d days\n\n", res.Hours, len(res.Dates))
	fmt.Printf("%-18s %12s %12s %8s\n", "strategy", "cost", "savings", "pct")
	for _, s := range analysis.Compare(res) {
		fmt.Printf("%-18s %12.2f %12.2f %7.1f%%\n", s.Name, s.TotalCost, s.Savings, s.SavingsPct)
	}
	fmt.Printf("%-18s %12.2f\n", "no battery", res.NoBatteryCost)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		rows := sim.BuildTrace(days, res, params)
		if err := sim.WriteTraceCSV(*outPath, rows); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(rows), *outPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	daysPath := fs.String("days", "days.json", "Path to day-records JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	capsFlag := fs.String("capacities", "5,7.5,10,12.5,15,20", "Comma-separated capacities in kWh")
	cRate := fs.Float64("c-rate", 0.5, "C-rate for max charge/discharge power (kW per kWh)")
	_ = fs.Parse(args)

	days := loadDays(*daysPath)
	params := loadParams(*cfgPath)

	capacities, err := parseCapacities(*capsFlag)
	if err != nil {
		fatal(err)
	}
	sort.Float64s(capacities)

	points := analysis.SweepCapacities(days, params, capacities, *cRate)

	fmt.Printf("%-10s %-10s %12s %12s %12s %12s %10s\n",
		"capacity", "power", "baseline", "heuristic", "self-cons", "optimal", "marginal")
	for _, p := range points {
		fmt.Printf("%7.1fkWh %7.1fkW %12.2f %12.2f %12.2f %12.2f %10.2f\n",
			p.CapacityKWh,
			p.MaxPowerW/1000,
			p.BaselineCost,
			p.HeuristicCost,
			p.SelfCost,
			p.OptimalCost,
			p.MarginalSavings,
		)
	}
}

// loadDays reads the day records, degrading to an empty list on failure
// the same way the HTTP boundary does.
func loadDays(path string) []model.DayRecord {
	days, err := data.LoadDaysJSON(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; simulating zero days\n", err)
		return nil
	}
	return days
}

// loadParams resolves parameters from an optional config file, falling
// back to the default set.
func loadParams(cfgPath string) model.SimParams {
	if cfgPath == "" {
		return model.DefaultSimParams()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using default parameters\n", err)
		return model.DefaultSimParams()
	}
	return cfg.Battery.ToSimParams()
}

func parseCapacities(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	caps := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("capacity must be positive, got %v", v)
		}
		caps = append(caps, v)
	}
	if len(caps) == 0 {
		return nil, fmt.Errorf("no capacities specified")
	}
	return caps, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
