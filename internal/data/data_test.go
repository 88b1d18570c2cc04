package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess-pcr/internal/model"
)

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.csv")
	s := model.FrequencySeries{
		TimeS:       []float64{0, 60, 120},
		FrequencyHz: []float64{50.0, 49.98, 50.02},
	}

	require.NoError(t, SaveCSV(s, path))

	got, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadCSVRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing header", func(t *testing.T) {
		path := filepath.Join(dir, "noheader.csv")
		require.NoError(t, writeRaw(path, "0,50\n60,49.9\n"))
		_, err := LoadCSV(path)
		assert.Error(t, err)
	})

	t.Run("bad value", func(t *testing.T) {
		path := filepath.Join(dir, "badval.csv")
		require.NoError(t, writeRaw(path, "time_s,frequency_hz\n0,fifty\n"))
		_, err := LoadCSV(path)
		assert.Error(t, err)
	})
}

func TestJSONDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.json")
	s := model.FrequencySeries{
		TimeS:       []float64{0, 1},
		FrequencyHz: []float64{50, 49.99},
	}

	require.NoError(t, SaveJSON(NewDataset("unit", s), path))

	d, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "unit", d.Name)
	assert.Equal(t, s, d.ToSeries())
}

func TestLoadSeriesInfersFormat(t *testing.T) {
	dir := t.TempDir()
	s := model.FrequencySeries{TimeS: []float64{0, 1}, FrequencyHz: []float64{50, 50}}

	csvPath := filepath.Join(dir, "f.csv")
	require.NoError(t, SaveCSV(s, csvPath))
	got, err := LoadSeries(csvPath, "")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = LoadSeries(filepath.Join(dir, "f.txt"), "")
	assert.Error(t, err)
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	p := SyntheticParams{
		Samples: 500, StepS: 10, NominalHz: 50,
		AmplitudeHz: 0.05, PeriodS: 900, NoiseHz: 0.01, Seed: 7,
	}

	a := Synthesize(p)
	b := Synthesize(p)
	assert.Equal(t, a, b)

	require.NoError(t, a.Validate())
	for i, f := range a.FrequencyHz {
		assert.InDelta(t, 50, f, 0.05+0.01, "sample %d stays within amplitude+noise", i)
	}
}
