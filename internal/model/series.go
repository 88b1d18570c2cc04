package model

import (
	"errors"
	"fmt"
)

// FrequencySeries is a measured grid-frequency trace: two equal-length
// sequences of elapsed time (seconds, strictly increasing) and frequency (Hz).
type FrequencySeries struct {
	TimeS       []float64
	FrequencyHz []float64
}

func (s FrequencySeries) Len() int { return len(s.TimeS) }

func (s FrequencySeries) Validate() error {
	if len(s.TimeS) != len(s.FrequencyHz) {
		return fmt.Errorf("series length mismatch: %d time samples vs %d frequency samples",
			len(s.TimeS), len(s.FrequencyHz))
	}
	if len(s.TimeS) < 2 {
		return errors.New("series must contain at least 2 samples")
	}
	for i := 1; i < len(s.TimeS); i++ {
		if s.TimeS[i] <= s.TimeS[i-1] {
			return fmt.Errorf("time series must be strictly increasing (sample %d)", i)
		}
	}
	return nil
}

// Limit returns a view of the first n samples, or the series unchanged when
// n <= 0 or n exceeds the length.
func (s FrequencySeries) Limit(n int) FrequencySeries {
	if n <= 0 || n >= len(s.TimeS) {
		return s
	}
	return FrequencySeries{TimeS: s.TimeS[:n], FrequencyHz: s.FrequencyHz[:n]}
}
