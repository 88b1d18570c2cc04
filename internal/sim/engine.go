package sim

import (
	"fmt"

	"bess-pcr/internal/model"
)

// Engine runs the time-stepped BESS simulation. Runs are independent of each
// other; a single Engine may be shared across goroutines as long as each run
// gets its own parameter set and series.
type Engine struct {
	sink EventSink
}

func New() *Engine { return &Engine{sink: NopSink{}} }

// NewWithSink returns an engine that emits informational events to sink.
func NewWithSink(sink EventSink) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	return &Engine{sink: sink}
}

// Run executes the simulation over the whole series and returns the finalized
// result. The loop is strictly sequential: each step's flow calculation uses
// the transaction snapshot carried over from the previous step, the scheduler
// transition follows, and only then is the energy balance committed.
func (e *Engine) Run(p model.Params, series model.FrequencySeries) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("invalid series: %w", err)
	}

	n := series.Len()
	res := newResult(n)
	res.SOCPct[0] = p.InitialSOCPct

	stored := p.InitialStoredMWh()
	tx := model.Transaction{State: model.TxIdle}

	for k := 1; k < n; k++ {
		dt := series.TimeS[k] - series.TimeS[k-1]

		fl, powerMW := ComputeFlows(p, series.FrequencyHz[k], series.TimeS[k], stored, tx, dt)
		tx = AdvanceTransaction(p, tx, p.SOCPct(stored), series.TimeS[k], e.sink)
		stored = ApplyFlows(p, stored, fl)

		res.recordFlows(k, fl)
		res.SOCPct[k] = p.SOCPct(stored)
		res.ERate[k] = abs(powerMW) / p.CapacityMWh
	}

	res.Summary = ComputeSummary(p, res)
	return res, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
