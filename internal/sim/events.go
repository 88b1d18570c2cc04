package sim

import (
	"log/slog"

	"bess-pcr/internal/model"
)

// EventSink receives informational events from the simulation. It is not part
// of the numeric contract; implementations must not influence the run.
type EventSink interface {
	// TransactionActivated is emitted when a scheduled transaction starts
	// delivering.
	TransactionActivated(tx model.Transaction, tS float64)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) TransactionActivated(model.Transaction, float64) {}

// SlogSink logs events through a structured logger.
type SlogSink struct {
	Log *slog.Logger
}

func (s SlogSink) TransactionActivated(tx model.Transaction, tS float64) {
	s.Log.Info("transaction activated",
		"kind", tx.Kind.String(),
		"power_mw", tx.PowerMW,
		"t_s", tS,
		"start_s", tx.StartTimeS,
		"end_s", tx.EndTimeS,
	)
}
