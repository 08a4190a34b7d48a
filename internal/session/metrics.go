package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sessionsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "restaurant_bot",
	Subsystem: "session",
	Name:      "created_total",
	Help:      "Sessions created on first contact, by store driver",
}, []string{"driver"})
