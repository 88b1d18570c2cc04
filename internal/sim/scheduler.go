package sim

import "bess-pcr/internal/model"

// AdvanceTransaction applies the per-step transition of the transaction life
// cycle and returns the updated transaction. socPct is the SOC after this
// step's flow calculation and tS the current time sample.
//
// The branches are mutually exclusive: a transaction that completes in this
// call cannot be rescheduled until the next step, and a newly scheduled
// transaction cannot activate within the same call. Callers must invoke this
// after ComputeFlows and before the energy balance commit, so the flow
// calculation of each step always sees the previous step's state.
func AdvanceTransaction(p model.Params, tx model.Transaction, socPct, tS float64, sink EventSink) model.Transaction {
	switch tx.State {
	case model.TxActive:
		if tS > tx.EndTimeS {
			tx = model.Transaction{State: model.TxIdle}
		}
	case model.TxIdle:
		kind, ok := scheduleKind(p, socPct)
		if ok {
			start := tS + p.LeadTimeHours*3600
			tx = model.Transaction{
				State:      model.TxScheduled,
				Kind:       kind,
				PowerMW:    p.TransactionPowerMW,
				StartTimeS: start,
				EndTimeS:   start + p.ContractDurationHours*3600,
			}
		}
	case model.TxScheduled:
		if tS >= tx.StartTimeS {
			tx.State = model.TxActive
			if sink != nil {
				sink.TransactionActivated(tx, tS)
			}
		}
	}
	return tx
}

// scheduleKind decides whether the SOC warrants announcing a transaction:
// a charge when at or below the low threshold, a discharge when at or above
// the high one.
func scheduleKind(p model.Params, socPct float64) (model.TxKind, bool) {
	switch {
	case socPct <= p.TransactionBand.LowPct:
		return model.TxCharge, true
	case socPct >= p.TransactionBand.HighPct:
		return model.TxDischarge, true
	default:
		return 0, false
	}
}
