package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"bess-pcr/internal/model"
)

// WriteStepCSV writes the per-step ledger of a run aligned with its input
// series.
func WriteStepCSV(path string, series model.FrequencySeries, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"time_s",
		"frequency_hz",
		"soc_pct",
		"e_rate",
		"primary_control_mwh",
		"overfulfillment_mwh",
		"deadband_util_mwh",
		"schedule_tx_mwh",
		"self_consumption_mwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for k := 0; k < series.Len(); k++ {
		row := []string{
			strconv.Itoa(k),
			fmtFloat(series.TimeS[k]),
			fmtFloat(series.FrequencyHz[k]),
			fmtFloat(res.SOCPct[k]),
			fmtFloat(res.ERate[k]),
			fmtFloat(res.PrimaryControlMWh[k]),
			fmtFloat(res.OverfulfillmentMWh[k]),
			fmtFloat(res.DeadbandUtilMWh[k]),
			fmtFloat(res.ScheduleTxMWh[k]),
			fmtFloat(res.SelfConsumptionMWh[k]),
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
