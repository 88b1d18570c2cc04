package model

// TxState is the life-cycle state of a scheduled transaction. Exactly one
// state holds at any time; there is no queue, at most one transaction exists
// system-wide.
type TxState int

const (
	TxIdle TxState = iota
	TxScheduled
	TxActive
)

func (s TxState) String() string {
	switch s {
	case TxIdle:
		return "idle"
	case TxScheduled:
		return "scheduled"
	case TxActive:
		return "active"
	default:
		return "unknown"
	}
}

// TxKind is the direction of a scheduled transaction. The numeric values are
// used directly as the sign of the transaction power.
type TxKind int

const (
	TxCharge    TxKind = 1
	TxDischarge TxKind = -1
)

func (k TxKind) String() string {
	switch k {
	case TxCharge:
		return "charge"
	case TxDischarge:
		return "discharge"
	default:
		return "unknown"
	}
}

// Transaction is one pre-announced, time-windowed charge or discharge used
// for SOC management. Start and end times are absolute seconds aligned with
// the input time series. Invariant: StartTimeS <= EndTimeS.
type Transaction struct {
	State      TxState
	Kind       TxKind
	PowerMW    float64
	StartTimeS float64
	EndTimeS   float64
}

// InWindow reports whether the transaction is delivering at time tS: it must
// be active and tS must lie within [StartTimeS, EndTimeS].
func (t Transaction) InWindow(tS float64) bool {
	return t.State == TxActive && tS >= t.StartTimeS && tS <= t.EndTimeS
}
