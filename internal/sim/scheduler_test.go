package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess-pcr/internal/model"
)

type recordingSink struct {
	activations []float64
}

func (r *recordingSink) TransactionActivated(_ model.Transaction, tS float64) {
	r.activations = append(r.activations, tS)
}

func TestAdvanceTransactionScheduling(t *testing.T) {
	p := testParams() // ST band [30, 70], lead 0.5h, duration 0.25h
	idle := model.Transaction{State: model.TxIdle}

	t.Run("low SOC schedules a charge", func(t *testing.T) {
		tx := AdvanceTransaction(p, idle, 20, 100, nil)
		require.Equal(t, model.TxScheduled, tx.State)
		assert.Equal(t, model.TxCharge, tx.Kind)
		assert.Equal(t, 0.5, tx.PowerMW)
		assert.Equal(t, 1900.0, tx.StartTimeS)
		assert.Equal(t, 2800.0, tx.EndTimeS)
	})

	t.Run("high SOC schedules a discharge", func(t *testing.T) {
		tx := AdvanceTransaction(p, idle, 80, 100, nil)
		require.Equal(t, model.TxScheduled, tx.State)
		assert.Equal(t, model.TxDischarge, tx.Kind)
	})

	t.Run("SOC inside the band stays idle", func(t *testing.T) {
		tx := AdvanceTransaction(p, idle, 50, 100, nil)
		assert.Equal(t, model.TxIdle, tx.State)
	})

	t.Run("threshold edges trigger", func(t *testing.T) {
		tx := AdvanceTransaction(p, idle, 30, 0, nil)
		assert.Equal(t, model.TxScheduled, tx.State)
		assert.Equal(t, model.TxCharge, tx.Kind)

		tx = AdvanceTransaction(p, idle, 70, 0, nil)
		assert.Equal(t, model.TxScheduled, tx.State)
		assert.Equal(t, model.TxDischarge, tx.Kind)
	})
}

func TestAdvanceTransactionActivation(t *testing.T) {
	p := testParams()
	sink := &recordingSink{}

	scheduled := model.Transaction{
		State: model.TxScheduled, Kind: model.TxCharge, PowerMW: 0.5,
		StartTimeS: 1900, EndTimeS: 2800,
	}

	tx := AdvanceTransaction(p, scheduled, 20, 1800, sink)
	assert.Equal(t, model.TxScheduled, tx.State, "before start time")
	assert.Empty(t, sink.activations)

	tx = AdvanceTransaction(p, tx, 20, 1900, sink)
	assert.Equal(t, model.TxActive, tx.State, "at start time")
	assert.Equal(t, []float64{1900}, sink.activations)
}

func TestAdvanceTransactionCompletion(t *testing.T) {
	p := testParams()

	active := model.Transaction{
		State: model.TxActive, Kind: model.TxCharge, PowerMW: 0.5,
		StartTimeS: 1900, EndTimeS: 2800,
	}

	tx := AdvanceTransaction(p, active, 50, 2800, nil)
	assert.Equal(t, model.TxActive, tx.State, "still active at end time")

	tx = AdvanceTransaction(p, tx, 50, 2860, nil)
	assert.Equal(t, model.TxIdle, tx.State, "completes strictly after end time")
}

// A transaction that completes must not be rescheduled in the same
// transition call, even if the SOC is already past a threshold again.
func TestAdvanceTransactionNoSameStepReschedule(t *testing.T) {
	p := testParams()

	active := model.Transaction{
		State: model.TxActive, Kind: model.TxDischarge, PowerMW: 0.5,
		StartTimeS: 1900, EndTimeS: 2800,
	}

	tx := AdvanceTransaction(p, active, 20, 2860, nil)
	assert.Equal(t, model.TxIdle, tx.State)

	tx = AdvanceTransaction(p, tx, 20, 2920, nil)
	assert.Equal(t, model.TxScheduled, tx.State, "rescheduled on the next step")
	assert.Equal(t, model.TxCharge, tx.Kind)
}
