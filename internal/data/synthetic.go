package data

import (
	"math"
	"math/rand"

	"bess-pcr/internal/model"
)

// SyntheticParams describes a deterministic synthetic frequency profile:
// a slow sinusoidal oscillation around nominal plus optional seeded noise.
// The same parameters always produce the same series.
type SyntheticParams struct {
	Samples     int
	StepS       float64
	NominalHz   float64
	AmplitudeHz float64
	PeriodS     float64
	NoiseHz     float64
	Seed        int64
}

// Synthesize generates a frequency series from the profile.
func Synthesize(p SyntheticParams) model.FrequencySeries {
	s := model.FrequencySeries{
		TimeS:       make([]float64, p.Samples),
		FrequencyHz: make([]float64, p.Samples),
	}
	rng := rand.New(rand.NewSource(p.Seed))
	for i := 0; i < p.Samples; i++ {
		t := float64(i) * p.StepS
		f := p.NominalHz
		if p.PeriodS > 0 {
			f += p.AmplitudeHz * math.Sin(2*math.Pi*t/p.PeriodS)
		}
		if p.NoiseHz > 0 {
			f += p.NoiseHz * (2*rng.Float64() - 1)
		}
		s.TimeS[i] = t
		s.FrequencyHz[i] = f
	}
	return s
}
