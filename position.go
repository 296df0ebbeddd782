package lru2

import (
	"errors"
	"fmt"
	"iter"
)

type (
	// Queue identifies which queue of a [Store] holds a key.
	Queue uint8
	// Position is a key's 0-based slot in each queue.
	// A resident key is always [Absent] from exactly one of them.
	Position struct {
		History, Cache int
	}
)

const (
	// None means the key is in neither queue.
	None Queue = iota
	// History is the probationary, FIFO evicted queue.
	History
	// Cache is the protected, LRU evicted queue.
	Cache
)

// Absent is the slot of a key that is not in a queue.
const Absent = -1

func (q Queue) String() string {
	switch q {
	case None:
		return "none"
	case History:
		return "history"
	case Cache:
		return "cache"
	default:
		return fmt.Sprintf("Queue(%d)", uint8(q))
	}
}

func (p Position) String() string {
	return fmt.Sprintf("(%s, %s)", slotString(p.History), slotString(p.Cache))
}

func slotString(slot int) string {
	if slot == Absent {
		return "-"
	}
	return fmt.Sprint(slot)
}

func (s *Store[Key]) queueOf(page *page[Key]) Queue {
	switch page.Root {
	case &s.history:
		return History
	case &s.cache:
		return Cache
	default:
		return None
	}
}

// Residency returns the queue that currently holds key
// without counting as an access.
func (s *Store[Key]) Residency(key Key) Queue {
	if page, found := s.index[key]; found {
		return s.queueOf(page)
	}
	return None
}

// Lookup returns the current position of key
// and whether it is resident in either queue.
// It executes in time proportional to the key's slot.
func (s *Store[Key]) Lookup(key Key) (Position, bool) {
	target, found := s.index[key]
	if !found {
		return Position{History: Absent, Cache: Absent}, false
	}
	slot := 0
	for page := range target.Root.Elements() {
		if page == target {
			break
		}
		slot++
	}
	if s.queueOf(target) == History {
		return Position{History: slot, Cache: Absent}, true
	}
	return Position{History: Absent, Cache: slot}, true
}

// Positions returns an iterator over every indexed key and its position;
// history keys first, then cache keys, each from head to tail.
// The Store must not be modified during iteration.
func (s *Store[Key]) Positions() iter.Seq2[Key, Position] {
	return func(yield func(Key, Position) bool) {
		slot := 0
		for key := range s.history.Names() {
			if !yield(key, Position{History: slot, Cache: Absent}) {
				return
			}
			slot++
		}
		slot = 0
		for key := range s.cache.Names() {
			if !yield(key, Position{History: Absent, Cache: slot}) {
				return
			}
			slot++
		}
	}
}

// validate checks every relationship between the queues and the index.
func (s *Store[Key]) validate() error {
	var (
		historyCount, historyErr = s.validateQueue(&s.history, History, s.historyCapacity)
		cacheCount, cacheErr     = s.validateQueue(&s.cache, Cache, s.cacheCapacity)
	)
	if err := errors.Join(historyErr, cacheErr); err != nil {
		return err
	}
	switch {
	case historyCount != s.historyCount:
		return fmt.Errorf("history holds %d keys but %d are counted",
			historyCount, s.historyCount)
	case cacheCount != s.cacheCount:
		return fmt.Errorf("cache holds %d keys but %d are counted",
			cacheCount, s.cacheCount)
	case len(s.index) != historyCount+cacheCount:
		return fmt.Errorf("index holds %d keys but the queues hold %d",
			len(s.index), historyCount+cacheCount)
	}
	return nil
}

func (s *Store[Key]) validateQueue(root *page[Key], queue Queue, capacity int) (int, error) {
	count := 0
	for page := range root.Elements() {
		if page.Root != root {
			return count, fmt.Errorf("%s slot %d (%v) records a different queue",
				queue, count, page.Name)
		}
		if indexed := s.index[page.Name]; indexed != page {
			return count, fmt.Errorf("%s slot %d (%v) is not the indexed handle",
				queue, count, page.Name)
		}
		count++
	}
	if count > capacity {
		return count, fmt.Errorf("%s holds %d keys, exceeding its capacity of %d",
			queue, count, capacity)
	}
	return count, nil
}
