package classifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inferenceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "restaurant_bot",
		Subsystem: "classifier",
		Name:      "inference_duration_seconds",
		Help:      "Time spent producing a class distribution",
		Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}, []string{"algo"})

	artifactsLoaded = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "restaurant_bot",
		Subsystem: "classifier",
		Name:      "artifacts_loaded",
		Help:      "Classifier handles available, by algo and kind",
	}, []string{"algo", "kind"})
)
