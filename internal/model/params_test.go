package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() Params {
	return Params{
		CapacityMWh:            2,
		PrequalifiedPowerMW:    1,
		ChargeEfficiency:       0.9,
		DischargeEfficiency:    0.9,
		SelfConsumptionMWhPerS: 1e-6,
		NominalFrequencyHz:     50,
		TransactionBand:        SOCBand{LowPct: 30, HighPct: 70},
		OverfulfillBand:        SOCBand{LowPct: 40, HighPct: 60},
		DeadbandBand:           SOCBand{LowPct: 45, HighPct: 55},
		TransactionPowerMW:     0.5,
		ContractDurationHours:  0.25,
		LeadTimeHours:          0.5,
		InitialSOCPct:          50,
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, validParams().Validate())

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero capacity", func(p *Params) { p.CapacityMWh = 0 }},
		{"zero prequalified power", func(p *Params) { p.PrequalifiedPowerMW = 0 }},
		{"charge efficiency above one", func(p *Params) { p.ChargeEfficiency = 1.1 }},
		{"zero discharge efficiency", func(p *Params) { p.DischargeEfficiency = 0 }},
		{"negative self consumption", func(p *Params) { p.SelfConsumptionMWhPerS = -1 }},
		{"zero nominal frequency", func(p *Params) { p.NominalFrequencyHz = 0 }},
		{"inverted transaction band", func(p *Params) { p.TransactionBand = SOCBand{LowPct: 70, HighPct: 30} }},
		{"overfulfill band out of range", func(p *Params) { p.OverfulfillBand = SOCBand{LowPct: 40, HighPct: 110} }},
		{"negative deadband low", func(p *Params) { p.DeadbandBand = SOCBand{LowPct: -5, HighPct: 55} }},
		{"negative transaction power", func(p *Params) { p.TransactionPowerMW = -1 }},
		{"negative lead time", func(p *Params) { p.LeadTimeHours = -1 }},
		{"initial SOC above 100", func(p *Params) { p.InitialSOCPct = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestParamsSOCConversion(t *testing.T) {
	p := validParams()
	assert.InDelta(t, 50.0, p.SOCPct(1.0), 1e-12)
	assert.InDelta(t, 1.0, p.InitialStoredMWh(), 1e-12)
}

func TestTransactionInWindow(t *testing.T) {
	tx := Transaction{State: TxActive, Kind: TxCharge, PowerMW: 1, StartTimeS: 100, EndTimeS: 200}

	assert.True(t, tx.InWindow(100))
	assert.True(t, tx.InWindow(150))
	assert.True(t, tx.InWindow(200))
	assert.False(t, tx.InWindow(99))
	assert.False(t, tx.InWindow(201))

	tx.State = TxScheduled
	assert.False(t, tx.InWindow(150), "only an active transaction delivers")
}

func TestSeriesValidate(t *testing.T) {
	ok := FrequencySeries{TimeS: []float64{0, 1, 2}, FrequencyHz: []float64{50, 50.1, 49.9}}
	assert.NoError(t, ok.Validate())

	bad := FrequencySeries{TimeS: []float64{0, 1}, FrequencyHz: []float64{50}}
	assert.Error(t, bad.Validate())

	short := FrequencySeries{TimeS: []float64{0}, FrequencyHz: []float64{50}}
	assert.Error(t, short.Validate())

	backwards := FrequencySeries{TimeS: []float64{0, 2, 1}, FrequencyHz: []float64{50, 50, 50}}
	assert.Error(t, backwards.Validate())
}

func TestSeriesLimit(t *testing.T) {
	s := FrequencySeries{TimeS: []float64{0, 1, 2, 3}, FrequencyHz: []float64{50, 50, 50, 50}}
	assert.Equal(t, 2, s.Limit(2).Len())
	assert.Equal(t, 4, s.Limit(0).Len())
	assert.Equal(t, 4, s.Limit(10).Len())
}
