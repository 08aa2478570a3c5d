package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var refreshOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mediai",
	Subsystem: "session",
	Name:      "refresh_total",
	Help:      "Silent token refresh attempts by outcome.",
}, []string{"outcome"})
