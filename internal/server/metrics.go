package server

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the Prometheus collectors for the HTTP shell: request
// observability plus a few domain counters.
type Metrics struct {
	ReqTotal *prometheus.CounterVec
	ReqDur   *prometheus.HistogramVec

	ItemsAdded   prometheus.Counter
	ItemsRemoved prometheus.Counter
	Exports      prometheus.Counter
}

// NewMetrics registers and returns the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billsplitter",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "billsplitter",
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}, []string{"method", "route"}),
		ItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "billsplitter",
			Name:      "items_added_total",
			Help:      "Items added to the current bill.",
		}),
		ItemsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "billsplitter",
			Name:      "items_removed_total",
			Help:      "Items removed from the current bill.",
		}),
		Exports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "billsplitter",
			Name:      "bill_exports_total",
			Help:      "Summary documents exported.",
		}),
	}
	reg.MustRegister(m.ReqTotal, m.ReqDur, m.ItemsAdded, m.ItemsRemoved, m.Exports)
	return m
}
