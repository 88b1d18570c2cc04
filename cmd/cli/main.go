package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bess-pcr/internal/config"
	"bess-pcr/internal/data"
	"bess-pcr/internal/model"
	"bess-pcr/internal/plot"
	"bess-pcr/internal/sim"
	"bess-pcr/internal/store"
	"bess-pcr/internal/sweep"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "inspect":
		cmdInspect(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml")
	fmt.Println("  cli sweep --config examples/config.yaml")
	fmt.Println("  cli inspect --store results/runs.db")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate writes a per-step CSV ledger and optional PNG charts")
	fmt.Println("  - sweep runs the config's variations and ranks them by full cycle equivalents")
	fmt.Println("  - inspect lists summaries persisted to the run store")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	label := fs.String("label", "", "Optional label for the persisted run")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	series, err := loadSeries(cfg)
	if err != nil {
		panic(err)
	}

	params := cfg.Bess.ToModelParams()
	engine := sim.NewWithSink(sim.SlogSink{Log: slog.Default()})
	res, err := engine.Run(params, series)
	if err != nil {
		panic(err)
	}

	if cfg.Output.CSV != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Output.CSV), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteStepCSV(cfg.Output.CSV, series, res); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", series.Len(), cfg.Output.CSV)
	}

	if cfg.Output.PlotDir != "" {
		socPath := filepath.Join(cfg.Output.PlotDir, "soc.png")
		flowPath := filepath.Join(cfg.Output.PlotDir, "dispatch.png")
		if err := plot.SaveSOCPlot(socPath, series, res); err != nil {
			panic(err)
		}
		if err := plot.SaveFlowPlot(flowPath, series, res); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote charts to %s\n", cfg.Output.PlotDir)
	}

	if cfg.Output.Store != "" {
		st, err := store.New(cfg.Output.Store)
		if err != nil {
			panic(err)
		}
		rec := store.NewRunRecord(*label, series.Len(), res)
		if err := st.SaveRun(rec); err != nil {
			panic(err)
		}
		fmt.Printf("Saved run %s to %s\n", rec.ID, cfg.Output.Store)
	}

	printSummary(series.Len(), res)
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config with a sweep section")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	if len(cfg.Sweep) == 0 {
		fmt.Println("config has no sweep variations")
		os.Exit(2)
	}

	series, err := loadSeries(cfg)
	if err != nil {
		panic(err)
	}

	variations := make([]sweep.Variation, 0, len(cfg.Sweep)+1)
	variations = append(variations, sweep.Variation{Name: "base", Params: cfg.Bess.ToModelParams()})
	for _, v := range cfg.Sweep {
		variations = append(variations, sweep.Variation{
			Name:   v.Name,
			Params: config.MergeBess(cfg.Bess, v.Bess).ToModelParams(),
		})
	}

	ranked := sweep.RankByFCE(sweep.Run(series, variations))
	fmt.Printf("%-4s %-24s %-10s %-12s %-12s %-10s %-10s\n",
		"rank", "variation", "FCE", "charged", "discharged", "tx-chg%", "final-soc")
	for i, o := range ranked {
		if o.Err != nil {
			fmt.Printf("%-4d %-24s failed: %v\n", i+1, o.Name, o.Err)
			continue
		}
		fmt.Printf("%-4d %-24s %-10.4f %-12.4f %-12.4f %-10.2f %-10.2f\n",
			i+1,
			o.Name,
			o.Summary.FullCycleEquivalents,
			o.Summary.TotalChargedMWh,
			o.Summary.TotalDischargedMWh,
			o.Summary.PctChargedViaTx,
			o.FinalSOCPct,
		)
	}
}

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	storePath := fs.String("store", "results/runs.db", "Path to the sqlite run store")
	n := fs.Int("n", 20, "Number of runs to show (newest first)")
	_ = fs.Parse(args)

	st, err := store.New(*storePath)
	if err != nil {
		panic(err)
	}
	runs, err := st.ListRuns(*n)
	if err != nil {
		panic(err)
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return
	}

	fmt.Printf("%-36s %-20s %-16s %-8s %-10s %-10s\n",
		"id", "created", "label", "samples", "FCE", "final-soc")
	for _, r := range runs {
		fmt.Printf("%-36s %-20s %-16s %-8d %-10.4f %-10.2f\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Label,
			r.Samples,
			r.FullCycleEquivalents,
			r.FinalSOCPct,
		)
	}
}

func loadSeries(cfg *config.Config) (model.FrequencySeries, error) {
	var series model.FrequencySeries
	var err error
	if cfg.Source.File != "" {
		series, err = data.LoadSeries(cfg.Source.File, cfg.Source.Format)
	} else {
		s := cfg.Source.Synthetic
		series = data.Synthesize(data.SyntheticParams{
			Samples:     s.Samples,
			StepS:       s.StepS,
			NominalHz:   cfg.Bess.NominalFrequencyHz,
			AmplitudeHz: s.AmplitudeHz,
			PeriodS:     s.PeriodS,
			NoiseHz:     s.NoiseHz,
			Seed:        s.Seed,
		})
		err = series.Validate()
	}
	if err != nil {
		return model.FrequencySeries{}, err
	}
	return series.Limit(cfg.Source.Limit), nil
}

func printSummary(samples int, res *sim.Result) {
	s := res.Summary
	fmt.Printf("\nSamples=%d Final SOC=%.2f%%\n", samples, res.FinalSOCPct())
	fmt.Printf("Full cycle equivalents: %.4f\n", s.FullCycleEquivalents)
	fmt.Printf("Charged:    %.4f MWh total, %.4f MWh via transactions (%.1f%%)\n",
		s.TotalChargedMWh, s.TxChargedMWh, s.PctChargedViaTx)
	fmt.Printf("Discharged: %.4f MWh total, %.4f MWh via transactions (%.1f%%)\n",
		s.TotalDischargedMWh, s.TxDischargedMWh, s.PctDischargedViaTx)
}
