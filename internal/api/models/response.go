package models

import "time"

// SimulateResponse is the response from a simulation run.
type SimulateResponse struct {
	ID      string         `json:"id,omitempty"`
	Status  string         `json:"status"`
	Summary SummaryPayload `json:"summary"`
	Series  *SeriesOut     `json:"series,omitempty"`
}

// SummaryPayload contains the aggregated results of a run.
type SummaryPayload struct {
	Samples              int     `json:"samples"`
	FinalSOCPct          float64 `json:"final_soc_pct"`
	FullCycleEquivalents float64 `json:"full_cycle_equivalents"`
	TxChargedMWh         float64 `json:"tx_charged_mwh"`
	TxDischargedMWh      float64 `json:"tx_discharged_mwh"`
	TotalChargedMWh      float64 `json:"total_charged_mwh"`
	TotalDischargedMWh   float64 `json:"total_discharged_mwh"`
	PctChargedViaTx      float64 `json:"pct_charged_via_tx"`
	PctDischargedViaTx   float64 `json:"pct_discharged_via_tx"`
}

// SeriesOut carries the full per-step output series.
type SeriesOut struct {
	TimeS              []float64 `json:"time_s"`
	FrequencyHz        []float64 `json:"frequency_hz"`
	SOCPct             []float64 `json:"soc_pct"`
	ERate              []float64 `json:"e_rate"`
	PrimaryControlMWh  []float64 `json:"primary_control_mwh"`
	OverfulfillmentMWh []float64 `json:"overfulfillment_mwh"`
	DeadbandUtilMWh    []float64 `json:"deadband_util_mwh"`
	ScheduleTxMWh      []float64 `json:"schedule_tx_mwh"`
	SelfConsumptionMWh []float64 `json:"self_consumption_mwh"`
}

// CompareResponse is the response from a comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name    string          `json:"name"`
	Error   string          `json:"error,omitempty"`
	Summary *SummaryPayload `json:"summary,omitempty"`
}

// RunInfo is a stored run summary.
type RunInfo struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Label     string         `json:"label,omitempty"`
	Summary   SummaryPayload `json:"summary"`
}

// PresetInfo describes a BESS preset file.
type PresetInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Specs PresetSpecs `json:"specs"`
}

// PresetSpecs contains the headline parameters of a preset.
type PresetSpecs struct {
	CapacityMWh         float64 `json:"capacity_mwh"`
	PrequalifiedPowerMW float64 `json:"prequalified_power_mw"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
