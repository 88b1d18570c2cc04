package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bess-pcr/internal/api/models"
	"bess-pcr/internal/store"
)

// RunsHandler serves persisted run summaries.
type RunsHandler struct {
	store *store.Store
}

// NewRunsHandler creates a new runs handler.
func NewRunsHandler(st *store.Store) *RunsHandler {
	return &RunsHandler{store: st}
}

// ListRuns handles GET /api/v1/simulations
func (h *RunsHandler) ListRuns(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "STORE_DISABLED", Message: "run persistence is not configured"},
		})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	recs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "STORE_ERROR", Message: err.Error()},
		})
		return
	}

	runs := make([]models.RunInfo, 0, len(recs))
	for _, rec := range recs {
		runs = append(runs, runInfo(rec))
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRun handles GET /api/v1/simulations/:id
func (h *RunsHandler) GetRun(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "STORE_DISABLED", Message: "run persistence is not configured"},
		})
		return
	}

	rec, err := h.store.GetRun(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "run not found"},
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "STORE_ERROR", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, runInfo(*rec))
}

func runInfo(rec store.RunRecord) models.RunInfo {
	return models.RunInfo{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Label:     rec.Label,
		Summary: models.SummaryPayload{
			Samples:              rec.Samples,
			FinalSOCPct:          rec.FinalSOCPct,
			FullCycleEquivalents: rec.FullCycleEquivalents,
			TxChargedMWh:         rec.TxChargedMWh,
			TxDischargedMWh:      rec.TxDischargedMWh,
			TotalChargedMWh:      rec.TotalChargedMWh,
			TotalDischargedMWh:   rec.TotalDischargedMWh,
			PctChargedViaTx:      rec.PctChargedViaTx,
			PctDischargedViaTx:   rec.PctDischargedViaTx,
		},
	}
}
