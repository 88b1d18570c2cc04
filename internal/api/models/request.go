package models

// SimulateRequest is the request body for running a simulation.
type SimulateRequest struct {
	Bess      BessSpec        `json:"bess"`
	Preset    string          `json:"preset,omitempty"` // preset ID; Bess fields override it
	Series    *SeriesPayload  `json:"series,omitempty"`
	Synthetic *SyntheticSpec  `json:"synthetic,omitempty"`
	Options   SimulateOptions `json:"options,omitempty"`
}

// BessSpec defines the BESS parameters of a request.
type BessSpec struct {
	Name                   string  `json:"name,omitempty"`
	CapacityMWh            float64 `json:"capacity_mwh"`
	PrequalifiedPowerMW    float64 `json:"prequalified_power_mw"`
	ChargeEfficiency       float64 `json:"charge_efficiency"`
	DischargeEfficiency    float64 `json:"discharge_efficiency"`
	SelfConsumptionMWhPerS float64 `json:"self_consumption_mwh_per_s,omitempty"`
	NominalFrequencyHz     float64 `json:"nominal_frequency_hz"`

	TransactionBand BandSpec `json:"transaction_soc_band"`
	OverfulfillBand BandSpec `json:"overfulfillment_soc_band"`
	DeadbandBand    BandSpec `json:"deadband_soc_band"`

	TransactionPowerMW    float64 `json:"transaction_power_mw"`
	ContractDurationHours float64 `json:"contract_duration_hours"`
	LeadTimeHours         float64 `json:"lead_time_hours"`

	InitialSOCPct float64 `json:"initial_soc_pct,omitempty"`

	UseOverfulfillment     bool `json:"use_overfulfillment,omitempty"`
	UseDeadbandUtilization bool `json:"use_deadband_utilization,omitempty"`
}

// BandSpec is a [low, high] SOC threshold pair in percent.
type BandSpec struct {
	LowPct  float64 `json:"low_pct"`
	HighPct float64 `json:"high_pct"`
}

// SeriesPayload carries an inline frequency series.
type SeriesPayload struct {
	TimeS       []float64 `json:"time_s" binding:"required"`
	FrequencyHz []float64 `json:"frequency_hz" binding:"required"`
}

// SyntheticSpec describes a synthetic frequency profile generated server-side.
// The nominal frequency comes from the BESS parameters.
type SyntheticSpec struct {
	Samples     int     `json:"samples" binding:"required"`
	StepS       float64 `json:"step_s" binding:"required"`
	AmplitudeHz float64 `json:"amplitude_hz,omitempty"`
	PeriodS     float64 `json:"period_s,omitempty"`
	NoiseHz     float64 `json:"noise_hz,omitempty"`
	Seed        int64   `json:"seed,omitempty"`
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	LimitSamples  int    `json:"limit_samples,omitempty"`  // 0 = all
	IncludeSeries bool   `json:"include_series,omitempty"` // default: false
	Label         string `json:"label,omitempty"`
}

// CompareRequest runs a base configuration plus named variations against the
// same series.
type CompareRequest struct {
	Bess       BessSpec        `json:"bess"`
	Preset     string          `json:"preset,omitempty"`
	Series     *SeriesPayload  `json:"series,omitempty"`
	Synthetic  *SyntheticSpec  `json:"synthetic,omitempty"`
	Variations []VariationSpec `json:"variations" binding:"required"`
	Options    SimulateOptions `json:"options,omitempty"`
}

// VariationSpec is one comparison entry: non-zero fields override the base.
type VariationSpec struct {
	Name string   `json:"name" binding:"required"`
	Bess BessSpec `json:"bess"`
}
