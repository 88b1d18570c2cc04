package sim

import "bess-pcr/internal/model"

// Result holds the per-step output series of a simulation run plus the
// post-run summary. All slices have the length of the input series and are
// aligned with it; element 0 is the initial sample (initial SOC, zero E-rate,
// zero flows). Buffers are preallocated by the engine and never resized.
type Result struct {
	SOCPct []float64
	// ERate is |instantaneous power| / capacity per step, in 1/h.
	ERate []float64

	PrimaryControlMWh  []float64
	OverfulfillmentMWh []float64
	DeadbandUtilMWh    []float64
	ScheduleTxMWh      []float64
	SelfConsumptionMWh []float64

	Summary Summary
}

func newResult(n int) *Result {
	return &Result{
		SOCPct:             make([]float64, n),
		ERate:              make([]float64, n),
		PrimaryControlMWh:  make([]float64, n),
		OverfulfillmentMWh: make([]float64, n),
		DeadbandUtilMWh:    make([]float64, n),
		ScheduleTxMWh:      make([]float64, n),
		SelfConsumptionMWh: make([]float64, n),
	}
}

func (r *Result) recordFlows(k int, fl model.StepFlows) {
	r.PrimaryControlMWh[k] = fl.PrimaryControlMWh
	r.OverfulfillmentMWh[k] = fl.OverfulfillmentMWh
	r.DeadbandUtilMWh[k] = fl.DeadbandUtilMWh
	r.ScheduleTxMWh[k] = fl.ScheduleTxMWh
	r.SelfConsumptionMWh[k] = fl.SelfConsumptionMWh
}

// FinalSOCPct is the SOC after the last step.
func (r *Result) FinalSOCPct() float64 {
	if len(r.SOCPct) == 0 {
		return 0
	}
	return r.SOCPct[len(r.SOCPct)-1]
}
