package model

import "errors"

// SOCBand is a [low, high] pair of state-of-charge thresholds in percent.
// The low edge triggers charge-side SOC management, the high edge the
// discharge side.
type SOCBand struct {
	LowPct  float64
	HighPct float64
}

func (b SOCBand) Validate() error {
	if b.LowPct < 0 || b.HighPct > 100 || b.LowPct > b.HighPct {
		return errors.New("SOC band must satisfy 0 <= low <= high <= 100")
	}
	return nil
}

// Params defines the physical and contractual parameters of a BESS delivering
// primary control reserve. Immutable for the duration of a simulation run.
// Units:
// - CapacityMWh: MWh
// - PrequalifiedPowerMW, TransactionPowerMW: MW
// - Efficiencies: 0..1
// - SelfConsumptionMWhPerS: MWh drained per second, independent of dispatch
// - NominalFrequencyHz: Hz
// - ContractDurationHours, LeadTimeHours: hours
// - InitialSOCPct, SOC bands: percent 0..100
type Params struct {
	CapacityMWh            float64
	PrequalifiedPowerMW    float64
	ChargeEfficiency       float64
	DischargeEfficiency    float64
	SelfConsumptionMWhPerS float64
	NominalFrequencyHz     float64

	// SOC management thresholds for scheduled transactions,
	// overfulfillment and deadband utilization.
	TransactionBand SOCBand
	OverfulfillBand SOCBand
	DeadbandBand    SOCBand

	TransactionPowerMW    float64
	ContractDurationHours float64
	LeadTimeHours         float64

	InitialSOCPct float64

	UseOverfulfillment     bool
	UseDeadbandUtilization bool
}

func (p Params) Validate() error {
	if p.CapacityMWh <= 0 {
		return errors.New("CapacityMWh must be > 0")
	}
	if p.PrequalifiedPowerMW <= 0 {
		return errors.New("PrequalifiedPowerMW must be > 0")
	}
	if p.ChargeEfficiency <= 0 || p.ChargeEfficiency > 1 {
		return errors.New("ChargeEfficiency must be in (0, 1]")
	}
	if p.DischargeEfficiency <= 0 || p.DischargeEfficiency > 1 {
		return errors.New("DischargeEfficiency must be in (0, 1]")
	}
	if p.SelfConsumptionMWhPerS < 0 {
		return errors.New("SelfConsumptionMWhPerS must be >= 0")
	}
	if p.NominalFrequencyHz <= 0 {
		return errors.New("NominalFrequencyHz must be > 0")
	}
	if err := p.TransactionBand.Validate(); err != nil {
		return err
	}
	if err := p.OverfulfillBand.Validate(); err != nil {
		return err
	}
	if err := p.DeadbandBand.Validate(); err != nil {
		return err
	}
	if p.TransactionPowerMW < 0 {
		return errors.New("TransactionPowerMW must be >= 0")
	}
	if p.ContractDurationHours < 0 || p.LeadTimeHours < 0 {
		return errors.New("ContractDurationHours and LeadTimeHours must be >= 0")
	}
	if p.InitialSOCPct < 0 || p.InitialSOCPct > 100 {
		return errors.New("InitialSOCPct must be within [0, 100]")
	}
	return nil
}

// SOCPct converts a stored energy in MWh to a state of charge in percent.
func (p Params) SOCPct(storedMWh float64) float64 {
	return storedMWh / p.CapacityMWh * 100
}

// InitialStoredMWh is the stored energy corresponding to InitialSOCPct.
func (p Params) InitialStoredMWh() float64 {
	return p.CapacityMWh * p.InitialSOCPct / 100
}
