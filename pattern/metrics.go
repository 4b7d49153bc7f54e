package pattern

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports cache activity to Prometheus. A nil *Metrics records
// nothing.
type Metrics struct {
	hits          prometheus.Counter
	builds        prometheus.Counter
	buildErrors   prometheus.Counter
	buildDuration prometheus.Histogram
}

// NewMetrics registers the cache collectors with reg (default:
// prometheus.DefaultRegisterer). Collectors already registered under the same
// names are reused, so several caches may share one registry.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if namespace == "" {
		namespace = "datetok"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pattern_cache",
			Name:      "hits_total",
			Help:      "Pattern lookups served from the cache.",
		}),
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pattern_cache",
			Name:      "builds_total",
			Help:      "Pattern sets compiled on a cache miss.",
		}),
		buildErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pattern_cache",
			Name:      "build_errors_total",
			Help:      "Pattern compilations that failed.",
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pattern_cache",
			Name:      "build_duration_seconds",
			Help:      "Time spent compiling a pattern set.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}

	var err error
	if m.hits, err = registerCounter(reg, m.hits); err != nil {
		return nil, err
	}
	if m.builds, err = registerCounter(reg, m.builds); err != nil {
		return nil, err
	}
	if m.buildErrors, err = registerCounter(reg, m.buildErrors); err != nil {
		return nil, err
	}
	if err := reg.Register(m.buildDuration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register build histogram: %w", err)
		}
		existing, ok := are.ExistingCollector.(prometheus.Histogram)
		if !ok {
			return nil, fmt.Errorf("register build histogram: %w", err)
		}
		m.buildDuration = existing
	}
	return m, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register counter: %w", err)
		}
		existing, ok := are.ExistingCollector.(prometheus.Counter)
		if !ok {
			return nil, fmt.Errorf("register counter: %w", err)
		}
		return existing, nil
	}
	return c, nil
}

func (m *Metrics) hit() {
	if m == nil {
		return
	}
	m.hits.Inc()
}

func (m *Metrics) build(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.buildDuration.Observe(d.Seconds())
	if err != nil {
		m.buildErrors.Inc()
		return
	}
	m.builds.Inc()
}
