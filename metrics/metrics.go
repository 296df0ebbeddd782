// Package metrics exposes the behaviour of LRU-2 stores through Prometheus.
package metrics

import (
	"sync"

	"github.com/djdv/go-lru2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	storePrometheusMetrics sync.Once

	storeAccessesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lru2",
			Subsystem: "store",
			Name:      "accesses_total",
			Help:      "Total number of accesses against LRU-2 stores, by the queue the key was found in.",
		},
		[]string{"name", "found_in"})

	storeEvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lru2",
			Subsystem: "store",
			Name:      "evictions_total",
			Help:      "Total number of keys evicted from LRU-2 stores, by the queue they left.",
		},
		[]string{"name", "queue"})

	storeQueueLength = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "lru2",
			Subsystem: "store",
			Name:      "queue_length",
			Help:      "Number of keys currently held by a queue of an LRU-2 store.",
		},
		[]string{"name", "queue"})
)

// Store is a decorator for [lru2.Store] that exposes accesses,
// evictions and queue lengths through Prometheus.
// Concurrent access must be guarded by the caller.
type Store[Key comparable] struct {
	*lru2.Store[Key]

	admitted, promoted, hit prometheus.Counter
	historyLength,
	cacheLength prometheus.Gauge
}

var _ lru2.Policy[int] = (*Store[int])(nil)

// New creates an [lru2.Store] whose metrics are labeled with name.
// Options are passed through to [lru2.New].
func New[Key comparable](name string, historyCapacity, cacheCapacity int, options ...lru2.Option[Key]) (*Store[Key], error) {
	storePrometheusMetrics.Do(func() {
		prometheus.MustRegister(storeAccessesTotal)
		prometheus.MustRegister(storeEvictionsTotal)
		prometheus.MustRegister(storeQueueLength)
	})

	var (
		historyEvictions = storeEvictionsTotal.WithLabelValues(name, lru2.History.String())
		cacheEvictions   = storeEvictionsTotal.WithLabelValues(name, lru2.Cache.String())
		countEviction    = func(_ Key, from lru2.Queue) {
			if from == lru2.History {
				historyEvictions.Inc()
			} else {
				cacheEvictions.Inc()
			}
		}
	)
	base, err := lru2.New(historyCapacity, cacheCapacity,
		append(options[:len(options):len(options)], lru2.WithEvictionHandler(countEviction))...)
	if err != nil {
		return nil, err
	}
	return &Store[Key]{
		Store: base,

		admitted: storeAccessesTotal.WithLabelValues(name, lru2.None.String()),
		promoted: storeAccessesTotal.WithLabelValues(name, lru2.History.String()),
		hit:      storeAccessesTotal.WithLabelValues(name, lru2.Cache.String()),

		historyLength: storeQueueLength.WithLabelValues(name, lru2.History.String()),
		cacheLength:   storeQueueLength.WithLabelValues(name, lru2.Cache.String()),
	}, nil
}

func (s *Store[Key]) Access(key Key) lru2.Queue {
	from := s.Store.Access(key)
	switch from {
	case lru2.None:
		s.admitted.Inc()
	case lru2.History:
		s.promoted.Inc()
	case lru2.Cache:
		s.hit.Inc()
	}
	s.observeLengths()
	return from
}

func (s *Store[Key]) Remove(key Key) bool {
	removed := s.Store.Remove(key)
	s.observeLengths()
	return removed
}

func (s *Store[Key]) Purge() {
	s.Store.Purge()
	s.observeLengths()
}

func (s *Store[_]) observeLengths() {
	s.historyLength.Set(float64(s.HistoryLen()))
	s.cacheLength.Set(float64(s.Len()))
}
