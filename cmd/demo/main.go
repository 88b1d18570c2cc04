package main

import (
	"flag"
	"fmt"

	"bess-pcr/internal/config"
	"bess-pcr/internal/data"
	"bess-pcr/internal/model"
	"bess-pcr/internal/sim"
)

// Demo:
// - Synthesize (or load) a grid frequency series
// - Instantiate a BESS parameter set
// - Run the reserve simulation for a few steps to show how the pieces fit together
func main() {
	dataPath := flag.String("data", "", "Path to a frequency series (csv or json); synthetic when empty")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 0, "Optional: limit to first N samples (0=all)")
	outCSV := flag.String("out", "", "Optional path to write the step CSV (e.g. results/steps.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	params := model.Params{
		CapacityMWh:            2.0,
		PrequalifiedPowerMW:    1.0,
		ChargeEfficiency:       0.92,
		DischargeEfficiency:    0.92,
		SelfConsumptionMWhPerS: 2.5e-6,
		NominalFrequencyHz:     50,
		TransactionBand:        model.SOCBand{LowPct: 30, HighPct: 70},
		OverfulfillBand:        model.SOCBand{LowPct: 40, HighPct: 60},
		DeadbandBand:           model.SOCBand{LowPct: 45, HighPct: 55},
		TransactionPowerMW:     0.5,
		ContractDurationHours:  0.25,
		LeadTimeHours:          0.5,
		InitialSOCPct:          50,
		UseOverfulfillment:     true,
		UseDeadbandUtilization: true,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Bess.ToModelParams()
	}

	var series model.FrequencySeries
	if *dataPath != "" {
		var err error
		series, err = data.LoadSeries(*dataPath, "")
		if err != nil {
			panic(err)
		}
	} else {
		series = data.Synthesize(data.SyntheticParams{
			Samples:     3600,
			StepS:       1,
			NominalHz:   params.NominalFrequencyHz,
			AmplitudeHz: 0.06,
			PeriodS:     900,
			NoiseHz:     0.01,
			Seed:        7,
		})
	}
	series = series.Limit(*n)

	engine := sim.New()
	res, err := engine.Run(params, series)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Loaded %d samples, nominal frequency %.1f Hz\n", series.Len(), params.NominalFrequencyHz)
	fmt.Printf("Starting SOC=%.2f%%\n\n", res.SOCPct[0])

	for k := 1; k < min(13, series.Len()); k++ {
		fmt.Printf(
			"t=%7.0fs f=%7.4f  pc=%+.6f of=%+.6f du=%+.6f tx=%+.6f sc=%+.6f  soc=%.3f%%\n",
			series.TimeS[k],
			series.FrequencyHz[k],
			res.PrimaryControlMWh[k],
			res.OverfulfillmentMWh[k],
			res.DeadbandUtilMWh[k],
			res.ScheduleTxMWh[k],
			res.SelfConsumptionMWh[k],
			res.SOCPct[k],
		)
	}

	if *outCSV != "" {
		if err := sim.WriteStepCSV(*outCSV, series, res); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	s := res.Summary
	fmt.Printf("\nDone. Final SOC=%.2f%%  FCE=%.4f  charged=%.4f MWh  discharged=%.4f MWh\n",
		res.FinalSOCPct(), s.FullCycleEquivalents, s.TotalChargedMWh, s.TotalDischargedMWh)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
