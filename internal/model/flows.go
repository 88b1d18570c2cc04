package model

// StepFlows holds the five stored-energy contributions of one simulation
// step, in MWh. Sign convention: positive = energy into the battery,
// negative = energy out of it.
type StepFlows struct {
	PrimaryControlMWh  float64
	OverfulfillmentMWh float64
	DeadbandUtilMWh    float64
	ScheduleTxMWh      float64
	SelfConsumptionMWh float64
}

// Net is the total stored-energy change of the step before clamping.
func (f StepFlows) Net() float64 {
	return f.PrimaryControlMWh + f.OverfulfillmentMWh + f.DeadbandUtilMWh +
		f.ScheduleTxMWh + f.SelfConsumptionMWh
}
