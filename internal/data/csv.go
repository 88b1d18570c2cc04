package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"bess-pcr/internal/model"
)

// LoadCSV reads a frequency series from a CSV file with a
// `time_s,frequency_hz` header.
func LoadCSV(path string) (model.FrequencySeries, error) {
	var s model.FrequencySeries

	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return s, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return s, fmt.Errorf("%s: empty file", path)
	}
	if len(rows[0]) < 2 || rows[0][0] != "time_s" || rows[0][1] != "frequency_hz" {
		return s, fmt.Errorf("%s: expected header time_s,frequency_hz", path)
	}

	s.TimeS = make([]float64, 0, len(rows)-1)
	s.FrequencyHz = make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		tS, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return model.FrequencySeries{}, fmt.Errorf("row %d: bad time %q", i+1, row[0])
		}
		fHz, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return model.FrequencySeries{}, fmt.Errorf("row %d: bad frequency %q", i+1, row[1])
		}
		s.TimeS = append(s.TimeS, tS)
		s.FrequencyHz = append(s.FrequencyHz, fHz)
	}
	return s, nil
}

// SaveCSV writes a frequency series as CSV, creating the directory if needed.
func SaveCSV(s model.FrequencySeries, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time_s", "frequency_hz"}); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		row := []string{
			strconv.FormatFloat(s.TimeS[i], 'f', -1, 64),
			strconv.FormatFloat(s.FrequencyHz[i], 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// LoadSeries loads a series from a file, dispatching on the format ("csv" or
// "json"); an empty format is inferred from the file extension.
func LoadSeries(path, format string) (model.FrequencySeries, error) {
	if format == "" {
		format = filepath.Ext(path)
		if len(format) > 0 {
			format = format[1:]
		}
	}
	switch format {
	case "csv":
		return LoadCSV(path)
	case "json":
		d, err := LoadJSON(path)
		if err != nil {
			return model.FrequencySeries{}, err
		}
		return d.ToSeries(), nil
	default:
		return model.FrequencySeries{}, fmt.Errorf("unsupported series format %q", format)
	}
}
