// Package plot renders run results to PNG charts for reporting. The core has
// no dependency on it.
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"bess-pcr/internal/model"
	"bess-pcr/internal/sim"
)

// SaveSOCPlot writes the SOC trajectory of a run as a PNG.
func SaveSOCPlot(path string, series model.FrequencySeries, res *sim.Result) error {
	p := plot.New()
	p.Title.Text = "State of charge"
	p.X.Label.Text = "time (h)"
	p.Y.Label.Text = "SOC (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	line, err := plotter.NewLine(hoursXY(series.TimeS, res.SOCPct))
	if err != nil {
		return err
	}
	p.Add(line)

	return save(p, path)
}

// SaveFlowPlot writes the cumulative charged and discharged dispatch energy
// of a run as a PNG.
func SaveFlowPlot(path string, series model.FrequencySeries, res *sim.Result) error {
	p := plot.New()
	p.Title.Text = "Cumulative dispatch energy"
	p.X.Label.Text = "time (h)"
	p.Y.Label.Text = "energy (MWh)"

	n := series.Len()
	charged := make([]float64, n)
	discharged := make([]float64, n)
	var cumIn, cumOut float64
	for k := 0; k < n; k++ {
		for _, f := range []float64{
			res.PrimaryControlMWh[k],
			res.OverfulfillmentMWh[k],
			res.DeadbandUtilMWh[k],
			res.ScheduleTxMWh[k],
		} {
			if f > 0 {
				cumIn += f
			} else {
				cumOut -= f
			}
		}
		charged[k] = cumIn
		discharged[k] = cumOut
	}

	chargedLine, err := plotter.NewLine(hoursXY(series.TimeS, charged))
	if err != nil {
		return err
	}
	dischargedLine, err := plotter.NewLine(hoursXY(series.TimeS, discharged))
	if err != nil {
		return err
	}
	dischargedLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(chargedLine, dischargedLine)
	p.Legend.Add("charged", chargedLine)
	p.Legend.Add("discharged", dischargedLine)

	return save(p, path)
}

func hoursXY(timeS, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(ys))
	for i := range ys {
		xys[i].X = timeS[i] / 3600
		xys[i].Y = ys[i]
	}
	return xys
}

func save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
