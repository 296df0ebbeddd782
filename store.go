package lru2

import (
	"fmt"
	"iter"
	"slices"

	"github.com/djdv/go-lru2/internal/ring"
)

type (
	page[Key comparable] = ring.Ring[Key]
	// Store utilizes the LRU-2 replacement algorithm.
	// Concurrent access must be guarded by the caller
	// (or by wrapping the Store with [NewLocked]).
	// Constructed by [New].
	Store[Key comparable] struct {
		index          map[Key]*page[Key]
		onEvict        []func(key Key, from Queue)
		history, cache page[Key]
		historyCapacity, cacheCapacity,
		historyCount, cacheCount int
	}
	// Option configures a [Store] during [New].
	Option[Key comparable] func(*Store[Key])
)

// New creates a [Store] with the given queue capacities.
// Either capacity may be zero, in which case that queue
// never retains a key.
func New[Key comparable](historyCapacity, cacheCapacity int, options ...Option[Key]) (*Store[Key], error) {
	if historyCapacity < 0 {
		return nil, negativeCapacityError(History, historyCapacity)
	}
	if cacheCapacity < 0 {
		return nil, negativeCapacityError(Cache, cacheCapacity)
	}
	s := &Store[Key]{
		index:           make(map[Key]*page[Key], historyCapacity+cacheCapacity),
		historyCapacity: historyCapacity,
		cacheCapacity:   cacheCapacity,
	}
	for _, apply := range options {
		apply(s)
	}
	return s, nil
}

// WithEvictionHandler registers a function that is called
// for every key that leaves a queue due to capacity pressure.
// Handlers are called in the order they were registered,
// and must not call back into the [Store].
func WithEvictionHandler[Key comparable](handler func(key Key, from Queue)) Option[Key] {
	return func(s *Store[Key]) { s.onEvict = append(s.onEvict, handler) }
}

// Access records an access of key and returns the queue
// key resided in beforehand:
// [None] if it was admitted to the history,
// [History] if it was promoted to the cache,
// [Cache] if it was already cached (a hit).
func (s *Store[Key]) Access(key Key) Queue {
	var from Queue
	if page, found := s.index[key]; found {
		from = s.queueOf(page)
		switch from {
		case Cache:
			s.touch(page)
		case History:
			s.promote(page)
		}
	} else {
		s.admit(key)
	}
	if debugging {
		err := s.validate()
		assert(err == nil, fmt.Sprint(err))
	}
	return from
}

// admit appends a new key to the history tail.
func (s *Store[Key]) admit(key Key) {
	if s.historyCapacity == 0 {
		s.notify(key, History)
		return
	}
	if s.historyCount == s.historyCapacity {
		s.evictHead(&s.history, History)
	}
	page := &page[Key]{Metadata: ring.Metadata[Key]{Name: key}}
	s.history.PushBack(page)
	s.historyCount++
	s.index[key] = page
}

// promote moves a history page to the cache tail.
func (s *Store[Key]) promote(page *page[Key]) {
	if debugging {
		assert(page.Root == &s.history,
			"promoted page is not in the history queue")
	}
	page.Detach()
	s.historyCount--
	if s.cacheCapacity == 0 {
		delete(s.index, page.Name)
		s.notify(page.Name, Cache)
		return
	}
	if s.cacheCount == s.cacheCapacity {
		s.evictHead(&s.cache, Cache)
	}
	s.cache.PushBack(page)
	s.cacheCount++
}

// touch moves a cache page to the cache tail.
func (s *Store[Key]) touch(page *page[Key]) {
	if page == s.cache.Back() {
		return
	}
	page.Detach()
	s.cache.PushBack(page)
}

func (s *Store[Key]) evictHead(root *page[Key], queue Queue) {
	head := root.Front()
	if debugging {
		assert(head != nil, "evicting from an empty queue")
	}
	s.unlink(head, queue)
	s.notify(head.Name, queue)
}

func (s *Store[Key]) unlink(page *page[Key], queue Queue) {
	page.Detach()
	delete(s.index, page.Name)
	if queue == History {
		s.historyCount--
	} else {
		s.cacheCount--
	}
}

func (s *Store[Key]) notify(key Key, from Queue) {
	for _, handler := range s.onEvict {
		handler(key, from)
	}
}

// Remove drops key from whichever queue holds it,
// and reports if it was resident. The eviction
// handler is not called.
func (s *Store[Key]) Remove(key Key) bool {
	page, found := s.index[key]
	if !found {
		return false
	}
	s.unlink(page, s.queueOf(page))
	return true
}

// Purge empties both queues.
func (s *Store[Key]) Purge() {
	clear(s.index)
	s.history = page[Key]{}
	s.cache = page[Key]{}
	s.historyCount = 0
	s.cacheCount = 0
}

// History returns a snapshot of the history queue, from head to tail.
func (s *Store[Key]) History() []Key {
	return s.collect(&s.history, s.historyCount)
}

// Cache returns a snapshot of the cache queue, from head to tail.
func (s *Store[Key]) Cache() []Key {
	return s.collect(&s.cache, s.cacheCount)
}

func (s *Store[Key]) collect(root *page[Key], count int) []Key {
	return slices.AppendSeq(make([]Key, 0, count), root.Names())
}

// HistoryKeys returns an iterator over the history queue, from head to tail.
// The Store must not be modified during iteration.
func (s *Store[Key]) HistoryKeys() iter.Seq[Key] { return s.history.Names() }

// CacheKeys returns an iterator over the cache queue, from head to tail.
// The Store must not be modified during iteration.
func (s *Store[Key]) CacheKeys() iter.Seq[Key] { return s.cache.Names() }

// Len returns the number of keys in the cache queue.
func (s *Store[_]) Len() int { return s.cacheCount }

// HistoryLen returns the number of keys in the history queue.
func (s *Store[_]) HistoryLen() int { return s.historyCount }

// CacheCapacity returns the bound of the cache queue.
func (s *Store[_]) CacheCapacity() int { return s.cacheCapacity }

// HistoryCapacity returns the bound of the history queue.
func (s *Store[_]) HistoryCapacity() int { return s.historyCapacity }
