package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bess-pcr/internal/data"
)

// Generates a synthetic grid frequency series and writes it to disk, so the
// simulator can be exercised without a recorded dataset.
func main() {
	out := flag.String("out", "examples/data/frequency.json", "Output path (.json or .csv)")
	name := flag.String("name", "synthetic", "Dataset name (json only)")
	samples := flag.Int("samples", 86400, "Number of samples")
	step := flag.Float64("step", 1, "Seconds between samples")
	nominal := flag.Float64("nominal", 50, "Nominal frequency in Hz")
	amplitude := flag.Float64("amplitude", 0.06, "Sine amplitude in Hz")
	period := flag.Float64("period", 900, "Sine period in seconds")
	noise := flag.Float64("noise", 0.01, "Uniform noise amplitude in Hz")
	seed := flag.Int64("seed", 1, "Noise seed")
	format := flag.String("format", "", "Output format: json or csv (default by extension)")
	flag.Parse()

	series := data.Synthesize(data.SyntheticParams{
		Samples:     *samples,
		StepS:       *step,
		NominalHz:   *nominal,
		AmplitudeHz: *amplitude,
		PeriodS:     *period,
		NoiseHz:     *noise,
		Seed:        *seed,
	})
	if err := series.Validate(); err != nil {
		panic(err)
	}

	f := *format
	if f == "" {
		f = strings.TrimPrefix(filepath.Ext(*out), ".")
	}

	switch f {
	case "json":
		if err := data.SaveJSON(data.NewDataset(*name, series), *out); err != nil {
			panic(err)
		}
	case "csv":
		if err := data.SaveCSV(series, *out); err != nil {
			panic(err)
		}
	default:
		fmt.Printf("unsupported format %q (want json or csv)\n", f)
		os.Exit(2)
	}

	fmt.Printf("Wrote %d samples to %s\n", series.Len(), *out)
}
