// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, store operations, and
// interaction activity.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "story_platform"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Store metrics - track collection load/save cycles
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total number of store operations by collection, operation, and result",
		},
		[]string{"collection", "operation", "result"},
	)

	StoreSeedFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "seed_fallbacks_total",
			Help:      "Number of loads that degraded to the seed dataset by collection and cause",
		},
		[]string{"collection", "cause"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation duration in seconds",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"collection", "operation"},
	)

	// Interaction metrics - track ledger activity
	LikeTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "interactions",
			Name:      "like_toggles_total",
			Help:      "Total number of like toggles by resulting state",
		},
		[]string{"result"},
	)

	RatingsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "interactions",
			Name:      "ratings_submitted_total",
			Help:      "Total number of accepted rating upserts",
		},
	)

	CommentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "interactions",
			Name:      "comments_created_total",
			Help:      "Total number of comments created",
		},
	)

	StoryViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "interactions",
			Name:      "story_views_total",
			Help:      "Total number of recorded story views",
		},
	)

	// Collection size gauges, refreshed by the stats collector
	CollectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "collection_size",
			Help:      "Number of records currently in each collection",
		},
		[]string{"collection"},
	)
)

// CollectionSizer reports current record counts per collection. Implemented
// by the service layer so the collector does not depend on storage details.
type CollectionSizer interface {
	CollectionSizes() map[string]int
}

// StoreStatsCollector refreshes the collection size gauges periodically.
type StoreStatsCollector struct {
	sizer    CollectionSizer
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewStoreStatsCollector creates a new store stats collector.
func NewStoreStatsCollector(sizer CollectionSizer) *StoreStatsCollector {
	return &StoreStatsCollector{
		sizer:    sizer,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting store stats every interval.
func (c *StoreStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

// Stop stops the collector and waits for the goroutine to exit.
func (c *StoreStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

func (c *StoreStatsCollector) collect() {
	for collection, size := range c.sizer.CollectionSizes() {
		CollectionSize.WithLabelValues(collection).Set(float64(size))
	}
}
