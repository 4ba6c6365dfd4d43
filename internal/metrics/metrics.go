package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matcher_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	MatchRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matcher_run_duration_seconds",
			Help:    "Duration of each full matchmaking pass in seconds.",
			Buckets: []float64{10, 60, 300, 900, 1800},
		},
	)
	ScoreStepDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "matcher_score_step_duration_seconds",
			Help:       "Duration of each step when scoring one profile/listing pair.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step"},
	)
	PairsScoredCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "matcher_pairs_scored_total",
			Help: "Total number of profile/listing pairs scored.",
		},
	)
	RecommendationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "matcher_recommendations_total",
			Help: "Total number of recommendations surfaced.",
		},
	)
	InvalidInputCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "matcher_invalid_input_total",
			Help: "Total number of pairs rejected on invalid input.",
		},
	)
)

func StartMetricsServer() {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(MatchRunDuration)
	prometheus.MustRegister(ScoreStepDuration)
	prometheus.MustRegister(PairsScoredCounter)
	prometheus.MustRegister(RecommendationsCounter)
	prometheus.MustRegister(InvalidInputCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
}
