package sim

import "bess-pcr/internal/model"

// ApplyFlows commits one step's flows to the stored energy and clamps the
// result to the physical bounds [0, CapacityMWh]. Energy in excess of the
// bounds is silently discarded; the recorded flow history keeps the values
// as computed, not as committed.
func ApplyFlows(p model.Params, storedMWh float64, fl model.StepFlows) float64 {
	e := storedMWh + fl.Net()
	if e < 0 {
		return 0
	}
	if e > p.CapacityMWh {
		return p.CapacityMWh
	}
	return e
}
