package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quickform"

var (
	Intents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intents_total",
		Help:      "Dispatched intents by name and outcome",
	}, []string{"intent", "outcome"})

	StorageFaults = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_faults_total",
		Help:      "Failed reads and writes of the persistence store",
	})

	Requests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(Intents, StorageFaults, Requests)
}
