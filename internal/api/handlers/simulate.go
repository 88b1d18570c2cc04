package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bess-pcr/internal/api/models"
	"bess-pcr/internal/config"
	"bess-pcr/internal/data"
	"bess-pcr/internal/model"
	"bess-pcr/internal/observability/metrics"
	"bess-pcr/internal/sim"
	"bess-pcr/internal/store"
)

// SimulationHandler handles simulation requests.
type SimulationHandler struct {
	store     *store.Store // nil disables persistence
	presetDir string
}

// NewSimulationHandler creates a new simulation handler.
func NewSimulationHandler(st *store.Store, presetDir string) *SimulationHandler {
	return &SimulationHandler{store: st, presetDir: presetDir}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	params, err := h.resolveParams(req.Preset, req.Bess)
	if err != nil {
		badRequest(c, "INVALID_BESS", err)
		return
	}

	series, err := buildSeries(req.Series, req.Synthetic, params.NominalFrequencyHz)
	if err != nil {
		badRequest(c, "INVALID_SERIES", err)
		return
	}
	series = series.Limit(req.Options.LimitSamples)

	start := time.Now()
	res, err := sim.New().Run(params, series)
	if err != nil {
		metrics.ObserveSimulation(metrics.ResultError, time.Since(start), 0)
		badRequest(c, "SIMULATION_ERROR", err)
		return
	}
	metrics.ObserveSimulation(metrics.ResultSuccess, time.Since(start), series.Len())

	resp := models.SimulateResponse{
		Status:  "ok",
		Summary: summaryPayload(series.Len(), res),
	}
	if req.Options.IncludeSeries {
		resp.Series = seriesOut(series, res)
	}

	if h.store != nil {
		rec := store.NewRunRecord(req.Options.Label, series.Len(), res)
		if err := h.store.SaveRun(rec); err != nil {
			log.Printf("SimulationHandler: failed to persist run: %v", err)
		} else {
			resp.ID = rec.ID
		}
	}

	c.JSON(http.StatusOK, resp)
}

// CompareSimulations handles POST /api/v1/simulate/compare
func (h *SimulationHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if len(req.Variations) == 0 {
		badRequest(c, "INVALID_REQUEST", errors.New("at least one variation is required"))
		return
	}

	baseParams, err := h.resolveParams(req.Preset, req.Bess)
	if err != nil {
		badRequest(c, "INVALID_BESS", err)
		return
	}

	series, err := buildSeries(req.Series, req.Synthetic, baseParams.NominalFrequencyHz)
	if err != nil {
		badRequest(c, "INVALID_SERIES", err)
		return
	}
	series = series.Limit(req.Options.LimitSamples)

	baseCfg := specToConfig(req.Bess)
	if req.Preset != "" {
		preset, err := h.loadPreset(req.Preset)
		if err != nil {
			badRequest(c, "INVALID_BESS", err)
			return
		}
		baseCfg = config.MergeBess(preset, baseCfg)
	}

	resp := models.CompareResponse{
		Comparison: make([]models.ComparisonResult, 0, len(req.Variations)+1),
	}

	run := func(name string, cfg config.BessConfig) {
		result := models.ComparisonResult{Name: name}
		res, err := sim.New().Run(cfg.ToModelParams(), series)
		if err != nil {
			result.Error = err.Error()
		} else {
			s := summaryPayload(series.Len(), res)
			result.Summary = &s
		}
		resp.Comparison = append(resp.Comparison, result)
	}

	run("base", baseCfg)
	for _, v := range req.Variations {
		run(v.Name, config.MergeBess(baseCfg, specToConfig(v.Bess)))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SimulationHandler) resolveParams(preset string, spec models.BessSpec) (model.Params, error) {
	cfg := specToConfig(spec)
	if preset != "" {
		loaded, err := h.loadPreset(preset)
		if err != nil {
			return model.Params{}, err
		}
		cfg = config.MergeBess(loaded, cfg)
	}
	params := cfg.ToModelParams()
	if err := params.Validate(); err != nil {
		return model.Params{}, err
	}
	return params, nil
}

func buildSeries(payload *models.SeriesPayload, synth *models.SyntheticSpec, nominalHz float64) (model.FrequencySeries, error) {
	switch {
	case payload != nil:
		s := model.FrequencySeries{TimeS: payload.TimeS, FrequencyHz: payload.FrequencyHz}
		if err := s.Validate(); err != nil {
			return model.FrequencySeries{}, err
		}
		return s, nil
	case synth != nil:
		s := data.Synthesize(data.SyntheticParams{
			Samples:     synth.Samples,
			StepS:       synth.StepS,
			NominalHz:   nominalHz,
			AmplitudeHz: synth.AmplitudeHz,
			PeriodS:     synth.PeriodS,
			NoiseHz:     synth.NoiseHz,
			Seed:        synth.Seed,
		})
		if err := s.Validate(); err != nil {
			return model.FrequencySeries{}, err
		}
		return s, nil
	default:
		return model.FrequencySeries{}, errors.New("either series or synthetic is required")
	}
}

func specToConfig(spec models.BessSpec) config.BessConfig {
	return config.BessConfig{
		Name:                   spec.Name,
		CapacityMWh:            spec.CapacityMWh,
		PrequalifiedPowerMW:    spec.PrequalifiedPowerMW,
		ChargeEfficiency:       spec.ChargeEfficiency,
		DischargeEfficiency:    spec.DischargeEfficiency,
		SelfConsumptionMWhPerS: spec.SelfConsumptionMWhPerS,
		NominalFrequencyHz:     spec.NominalFrequencyHz,
		TransactionBand:        config.BandConfig{LowPct: spec.TransactionBand.LowPct, HighPct: spec.TransactionBand.HighPct},
		OverfulfillBand:        config.BandConfig{LowPct: spec.OverfulfillBand.LowPct, HighPct: spec.OverfulfillBand.HighPct},
		DeadbandBand:           config.BandConfig{LowPct: spec.DeadbandBand.LowPct, HighPct: spec.DeadbandBand.HighPct},
		TransactionPowerMW:     spec.TransactionPowerMW,
		ContractDurationHours:  spec.ContractDurationHours,
		LeadTimeHours:          spec.LeadTimeHours,
		InitialSOCPct:          spec.InitialSOCPct,
		UseOverfulfillment:     spec.UseOverfulfillment,
		UseDeadbandUtilization: spec.UseDeadbandUtilization,
	}
}

func summaryPayload(samples int, res *sim.Result) models.SummaryPayload {
	s := res.Summary
	return models.SummaryPayload{
		Samples:              samples,
		FinalSOCPct:          res.FinalSOCPct(),
		FullCycleEquivalents: s.FullCycleEquivalents,
		TxChargedMWh:         s.TxChargedMWh,
		TxDischargedMWh:      s.TxDischargedMWh,
		TotalChargedMWh:      s.TotalChargedMWh,
		TotalDischargedMWh:   s.TotalDischargedMWh,
		PctChargedViaTx:      s.PctChargedViaTx,
		PctDischargedViaTx:   s.PctDischargedViaTx,
	}
}

func seriesOut(series model.FrequencySeries, res *sim.Result) *models.SeriesOut {
	return &models.SeriesOut{
		TimeS:              series.TimeS,
		FrequencyHz:        series.FrequencyHz,
		SOCPct:             res.SOCPct,
		ERate:              res.ERate,
		PrimaryControlMWh:  res.PrimaryControlMWh,
		OverfulfillmentMWh: res.OverfulfillmentMWh,
		DeadbandUtilMWh:    res.DeadbandUtilMWh,
		ScheduleTxMWh:      res.ScheduleTxMWh,
		SelfConsumptionMWh: res.SelfConsumptionMWh,
	}
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
