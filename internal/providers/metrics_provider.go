package providers

import (
	"eternalquest/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

type MetricsProviderInterface interface {
	IncGoalsCreated(kind string)
	IncEventsRecorded(kind string)
	AddPointsAwarded(points int)
	IncGoalNotFound()
	SetScore(score int)
	SetGoalsTotal(count int)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(op string, duration time.Duration)
	Flush() error
}

// MetricsProvider keeps ledger metrics in a private registry. There is no
// HTTP endpoint; Flush writes the registry to a node_exporter textfile.
type MetricsProvider struct {
	registry            *prometheus.Registry
	textfile            string
	goalsCreated        *prometheus.CounterVec
	eventsRecorded      *prometheus.CounterVec
	pointsAwarded       prometheus.Counter
	goalNotFound        prometheus.Counter
	score               prometheus.Gauge
	goalsTotal          prometheus.Gauge
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration *prometheus.HistogramVec
}

func (m *MetricsProvider) IncGoalsCreated(kind string) {
	m.goalsCreated.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) IncEventsRecorded(kind string) {
	m.eventsRecorded.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) AddPointsAwarded(points int) {
	if points > 0 {
		m.pointsAwarded.Add(float64(points))
	}
}

func (m *MetricsProvider) IncGoalNotFound() {
	m.goalNotFound.Inc()
}

func (m *MetricsProvider) SetScore(score int) {
	m.score.Set(float64(score))
}

func (m *MetricsProvider) SetGoalsTotal(count int) {
	m.goalsTotal.Set(float64(count))
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(op string, duration time.Duration) {
	m.persistenceDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *MetricsProvider) Flush() error {
	if m.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(m.textfile, m.registry)
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &MetricsProvider{
		registry: registry,
		textfile: conf.Metrics.Textfile,

		goalsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eternalquest_goals_created_total",
			Help: "Total number of goals created",
		}, []string{"kind"}),

		eventsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eternalquest_events_recorded_total",
			Help: "Total number of recorded goal events",
		}, []string{"kind"}),

		pointsAwarded: factory.NewCounter(prometheus.CounterOpts{
			Name: "eternalquest_points_awarded_total",
			Help: "Total points awarded by recorded events",
		}),

		goalNotFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "eternalquest_goal_not_found_total",
			Help: "Total number of events recorded against unknown goals",
		}),

		score: factory.NewGauge(prometheus.GaugeOpts{
			Name: "eternalquest_score",
			Help: "Current ledger score",
		}),

		goalsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "eternalquest_goals",
			Help: "Number of goals in the ledger",
		}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "eternalquest_cache_hits_total",
			Help: "Total number of listing cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "eternalquest_cache_misses_total",
			Help: "Total number of listing cache misses",
		}),

		persistenceDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eternalquest_persistence_duration_seconds",
			Help:    "Duration of save and load operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

// noopMetrics is used when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncGoalsCreated(_ string)                             {}
func (n *noopMetrics) IncEventsRecorded(_ string)                           {}
func (n *noopMetrics) AddPointsAwarded(_ int)                               {}
func (n *noopMetrics) IncGoalNotFound()                                     {}
func (n *noopMetrics) SetScore(_ int)                                       {}
func (n *noopMetrics) SetGoalsTotal(_ int)                                  {}
func (n *noopMetrics) IncCacheHits()                                        {}
func (n *noopMetrics) IncCacheMisses()                                      {}
func (n *noopMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) Flush() error                                         { return nil }
