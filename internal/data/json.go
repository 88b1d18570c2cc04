package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bess-pcr/internal/model"
)

// FrequencyDataset is the JSON shape of a persisted frequency trace.
//
// Example:
//
//	{
//	  "name": "synthetic-50hz",
//	  "data": [ {"time_s": 0, "frequency_hz": 50.012}, ... ]
//	}
type FrequencyDataset struct {
	Name string            `json:"name"`
	Data []FrequencySample `json:"data"`
}

// FrequencySample is one measured (or synthesized) grid-frequency row.
type FrequencySample struct {
	TimeS       float64 `json:"time_s"`
	FrequencyHz float64 `json:"frequency_hz"`
}

// ToSeries converts the dataset rows into the core series type.
func (d *FrequencyDataset) ToSeries() model.FrequencySeries {
	s := model.FrequencySeries{
		TimeS:       make([]float64, len(d.Data)),
		FrequencyHz: make([]float64, len(d.Data)),
	}
	for i, row := range d.Data {
		s.TimeS[i] = row.TimeS
		s.FrequencyHz[i] = row.FrequencyHz
	}
	return s
}

// NewDataset wraps a series into the persistable dataset shape.
func NewDataset(name string, s model.FrequencySeries) *FrequencyDataset {
	d := &FrequencyDataset{Name: name, Data: make([]FrequencySample, s.Len())}
	for i := range d.Data {
		d.Data[i] = FrequencySample{TimeS: s.TimeS[i], FrequencyHz: s.FrequencyHz[i]}
	}
	return d
}

// LoadJSON reads a frequency dataset from a JSON file.
func LoadJSON(path string) (*FrequencyDataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d FrequencyDataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse frequency dataset: %w", err)
	}
	return &d, nil
}

// SaveJSON writes a frequency dataset to a JSON file, creating the directory
// if needed.
func SaveJSON(d *FrequencyDataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal frequency dataset: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}
