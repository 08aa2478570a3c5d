package portal

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mediai",
	Subsystem: "portal",
	Name:      "requests_total",
	Help:      "Portal HTTP requests by method, path and status.",
}, []string{"method", "path", "status"})

func countRequest(method, path string, status int) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}
