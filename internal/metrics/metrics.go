package metrics

import "github.com/prometheus/client_golang/prometheus"

// Journal holds the domain counters for downloads and cache operations.
// A nil *Journal is valid and records nothing.
type Journal struct {
	fetches  *prometheus.CounterVec
	cacheOps *prometheus.CounterVec
}

// NewJournal creates and registers the journal counters on reg.
func NewJournal(reg prometheus.Registerer) (*Journal, error) {
	m := &Journal{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "journal_fetch_total",
				Help: "Journal downloads by outcome.",
			},
			[]string{"result"},
		),
		cacheOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "journal_cache_ops_total",
				Help: "Local cache operations by kind and outcome.",
			},
			[]string{"op", "result"},
		),
	}
	for _, c := range []prometheus.Collector{m.fetches, m.cacheOps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Fetch records one download with result "ok", "transport", "content_type", "status",
// "too_large" or "empty_id".
func (m *Journal) Fetch(result string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(result).Inc()
}

// CacheOp records a cache operation ("store", "remove", "mirror") outcome.
func (m *Journal) CacheOp(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.cacheOps.WithLabelValues(op, result).Inc()
}
