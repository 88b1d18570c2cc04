package sim

import (
	"math"

	"bess-pcr/internal/model"
)

// Summary aggregates the flow history of a completed run.
type Summary struct {
	// FullCycleEquivalents is the total dispatch throughput normalized by
	// twice the capacity. Self-consumption does not count as throughput.
	FullCycleEquivalents float64

	TxChargedMWh    float64
	TxDischargedMWh float64

	TotalChargedMWh    float64
	TotalDischargedMWh float64

	PctChargedViaTx    float64
	PctDischargedViaTx float64
}

// ComputeSummary runs once over the accumulated flow history.
func ComputeSummary(p model.Params, r *Result) Summary {
	var s Summary
	var throughput float64
	var pcCharged, pcDischarged, ofCharged, ofDischarged float64

	for k := range r.PrimaryControlMWh {
		pc := r.PrimaryControlMWh[k]
		of := r.OverfulfillmentMWh[k]
		du := r.DeadbandUtilMWh[k]
		st := r.ScheduleTxMWh[k]

		throughput += math.Abs(pc) + math.Abs(of) + math.Abs(du) + math.Abs(st)

		if pc > 0 {
			pcCharged += pc
		} else {
			pcDischarged -= pc
		}
		if of > 0 {
			ofCharged += of
		} else {
			ofDischarged -= of
		}
		if st > 0 {
			s.TxChargedMWh += st
		} else {
			s.TxDischargedMWh -= st
		}
	}

	s.FullCycleEquivalents = throughput / (2 * p.CapacityMWh)
	s.TotalChargedMWh = pcCharged + ofCharged + s.TxChargedMWh
	s.TotalDischargedMWh = pcDischarged + ofDischarged + s.TxDischargedMWh

	if s.TotalChargedMWh > 0 {
		s.PctChargedViaTx = s.TxChargedMWh / s.TotalChargedMWh * 100
	}
	if s.TotalDischargedMWh > 0 {
		s.PctDischargedViaTx = s.TxDischargedMWh / s.TotalDischargedMWh * 100
	}
	return s
}
