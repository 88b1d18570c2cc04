package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "bess_pcr_"

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	simulationsTotal  *prometheus.CounterVec
	simulationLatency *prometheus.HistogramVec
	simulationSamples prometheus.Histogram
)

// Init registers the API's simulation metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		simulationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "simulations_total",
				Help: "Total simulation runs by result",
			},
			[]string{"result"},
		)
		simulationLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "simulation_duration_seconds",
				Help:    "Simulation run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		simulationSamples = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "simulation_samples",
				Help:    "Input series length of simulation runs",
				Buckets: prometheus.ExponentialBuckets(100, 4, 8),
			},
		)

		prometheus.MustRegister(simulationsTotal, simulationLatency, simulationSamples)
	})
}

// ObserveSimulation records one run.
func ObserveSimulation(result string, elapsed time.Duration, samples int) {
	if simulationsTotal == nil {
		return
	}
	simulationsTotal.WithLabelValues(result).Inc()
	simulationLatency.WithLabelValues(result).Observe(elapsed.Seconds())
	if result == ResultSuccess {
		simulationSamples.Observe(float64(samples))
	}
}
