package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	routesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restaurant_bot",
		Subsystem: "router",
		Name:      "routes_total",
		Help:      "Routed messages by source and intent",
	}, []string{"source", "intent"})

	gatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restaurant_bot",
		Subsystem: "router",
		Name:      "gated_total",
		Help:      "Classifier predictions replaced by fallback, by algo",
	}, []string{"algo"})
)
