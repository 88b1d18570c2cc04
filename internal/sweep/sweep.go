// Package sweep runs batches of simulation scenarios. Within one run the
// engine is strictly sequential, but runs are independent of each other, so a
// sweep executes its variations concurrently and collects the outcomes in
// input order.
package sweep

import (
	"sort"
	"sync"

	"bess-pcr/internal/model"
	"bess-pcr/internal/sim"
)

// Variation is one named parameter set of a sweep.
type Variation struct {
	Name   string
	Params model.Params
}

// Outcome is the result of one variation. Err is set when the run failed;
// the summary fields are only meaningful when Err is nil.
type Outcome struct {
	Name        string
	Summary     sim.Summary
	FinalSOCPct float64
	Err         error
}

// Run executes every variation against the same frequency series and returns
// one outcome per variation, in the order given.
func Run(series model.FrequencySeries, variations []Variation) []Outcome {
	out := make([]Outcome, len(variations))

	var wg sync.WaitGroup
	for i, v := range variations {
		wg.Add(1)
		go func(i int, v Variation) {
			defer wg.Done()
			res, err := sim.New().Run(v.Params, series)
			if err != nil {
				out[i] = Outcome{Name: v.Name, Err: err}
				return
			}
			out[i] = Outcome{
				Name:        v.Name,
				Summary:     res.Summary,
				FinalSOCPct: res.FinalSOCPct(),
			}
		}(i, v)
	}
	wg.Wait()

	return out
}

// RankByFCE returns a copy of outcomes sorted by descending full cycle
// equivalents. Failed outcomes sort last.
func RankByFCE(outcomes []Outcome) []Outcome {
	ranked := make([]Outcome, len(outcomes))
	copy(ranked, outcomes)
	sort.SliceStable(ranked, func(i, j int) bool {
		if (ranked[i].Err == nil) != (ranked[j].Err == nil) {
			return ranked[i].Err == nil
		}
		return ranked[i].Summary.FullCycleEquivalents > ranked[j].Summary.FullCycleEquivalents
	})
	return ranked
}
