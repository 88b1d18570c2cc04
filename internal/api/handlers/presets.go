package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"bess-pcr/internal/api/models"
	"bess-pcr/internal/config"
)

// PresetsHandler lists the BESS preset files available to requests.
type PresetsHandler struct {
	presetDir string
}

// NewPresetsHandler creates a new presets handler.
func NewPresetsHandler(dir string) *PresetsHandler {
	if dir == "" {
		dir = defaultPresetDir()
	}
	return &PresetsHandler{presetDir: dir}
}

func defaultPresetDir() string {
	if dir := os.Getenv("PRESET_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("examples", "bess")
}

// ListPresets handles GET /api/v1/presets
func (h *PresetsHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	entries, err := os.ReadDir(h.presetDir)
	if err != nil {
		log.Printf("PresetsHandler: failed to read preset directory %s: %v", h.presetDir, err)
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.presetDir, entry.Name())
		bess, err := config.LoadBessFile(path)
		if err != nil {
			log.Printf("PresetsHandler: skipping invalid preset %s: %v", path, err)
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".yaml")
		name := bess.Name
		if name == "" {
			name = id
		}
		presets = append(presets, models.PresetInfo{
			ID:   id,
			Name: name,
			File: path,
			Specs: models.PresetSpecs{
				CapacityMWh:         bess.CapacityMWh,
				PrequalifiedPowerMW: bess.PrequalifiedPowerMW,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

// loadPreset resolves a preset ID against the handler's preset directory.
func (h *SimulationHandler) loadPreset(id string) (config.BessConfig, error) {
	if strings.ContainsAny(id, `/\`) {
		return config.BessConfig{}, fmt.Errorf("invalid preset id %q", id)
	}
	dir := h.presetDir
	if dir == "" {
		dir = defaultPresetDir()
	}
	return config.LoadBessFile(filepath.Join(dir, id+".yaml"))
}
