package sim

import "bess-pcr/internal/model"

// deadbandHz is the regulatory frequency deadband around nominal within which
// deadband utilization may suppress the primary control response.
const deadbandHz = 0.01

// overfulfillFactor is the voluntary extra response applied on top of the
// minimum required primary control power.
const overfulfillFactor = 0.2

// ComputeFlows evaluates the power-flow model for a single step. It is a pure
// function: it does not mutate the transaction snapshot or any other state.
//
// Inputs are the frequency sample (Hz), the time sample (s), the stored
// energy carried over from the previous step (MWh), the transaction snapshot
// as it existed before this step's transition, and the step duration (s).
// It returns the five stored-energy flows of the step and the instantaneous
// battery power in MW (positive = charging).
//
// The overfulfillment and deadband conditions intentionally combine the
// previous step's SOC with the current frequency sample; this one-step lag
// matches the reference control strategy and must not be "fixed".
func ComputeFlows(p model.Params, freqHz, tS, storedMWh float64, tx model.Transaction, dtS float64) (model.StepFlows, float64) {
	var fl model.StepFlows

	// Grid demand from the frequency deviation. Over-frequency (negative
	// demand) charges the battery, under-frequency discharges it.
	deltaF := p.NominalFrequencyHz - freqHz
	gridMW := p.PrequalifiedPowerMW * deltaF

	var pcMW float64
	if gridMW < 0 {
		// Charging: losses reduce what reaches the battery.
		pcMW = -p.ChargeEfficiency * gridMW
	} else {
		// Discharging: more energy leaves the battery than is delivered.
		pcMW = -gridMW / p.DischargeEfficiency
	}
	fl.PrimaryControlMWh = pcMW * dtS / 3600

	if tx.InWindow(tS) {
		gridMWh := float64(tx.Kind) * tx.PowerMW * dtS / 3600
		if tx.Kind == model.TxCharge {
			fl.ScheduleTxMWh = gridMWh * p.ChargeEfficiency
		} else {
			fl.ScheduleTxMWh = gridMWh / p.DischargeEfficiency
		}
	}

	socPct := p.SOCPct(storedMWh)

	if p.UseOverfulfillment {
		underCharged := socPct <= p.OverfulfillBand.LowPct && freqHz > p.NominalFrequencyHz
		overCharged := socPct >= p.OverfulfillBand.HighPct && freqHz < p.NominalFrequencyHz
		if underCharged || overCharged {
			fl.OverfulfillmentMWh = overfulfillFactor * fl.PrimaryControlMWh
		}
	}

	if p.UseDeadbandUtilization {
		inDeadband := freqHz >= p.NominalFrequencyHz-deadbandHz && freqHz <= p.NominalFrequencyHz+deadbandHz
		if inDeadband {
			drainLow := socPct <= p.DeadbandBand.LowPct && freqHz < p.NominalFrequencyHz
			fillHigh := socPct >= p.DeadbandBand.HighPct && freqHz > p.NominalFrequencyHz
			if drainLow || fillHigh {
				fl.DeadbandUtilMWh = -fl.PrimaryControlMWh
			}
		}
	}

	fl.SelfConsumptionMWh = -p.SelfConsumptionMWhPerS * dtS

	powerMW := pcMW
	if tx.InWindow(tS) {
		powerMW += float64(tx.Kind) * tx.PowerMW
	}
	return fl, powerMW
}
