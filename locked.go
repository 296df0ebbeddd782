package lru2

import "sync"

type (
	// Policy is the access and query surface shared by
	// [Store] and the wrappers built around it.
	Policy[Key comparable] interface {
		Access(Key) Queue
		Residency(Key) Queue
		History() []Key
		Cache() []Key
		Len() int
		HistoryLen() int
	}
	// Locked serializes every operation of a [Store], so no caller
	// can observe a queue mutation without its index repair.
	// Constructed by [NewLocked].
	Locked[Key comparable] struct {
		store *Store[Key]
		mu    sync.Mutex
	}
)

var (
	_ Policy[int] = (*Store[int])(nil)
	_ Policy[int] = (*Locked[int])(nil)
)

// NewLocked wraps store for concurrent use.
// The store must not be used directly afterwards.
func NewLocked[Key comparable](store *Store[Key]) *Locked[Key] {
	return &Locked[Key]{store: store}
}

// Access calls [Store.Access] while holding the lock.
func (l *Locked[Key]) Access(key Key) Queue {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Access(key)
}

// Residency calls [Store.Residency] while holding the lock.
func (l *Locked[Key]) Residency(key Key) Queue {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Residency(key)
}

// Lookup calls [Store.Lookup] while holding the lock.
func (l *Locked[Key]) Lookup(key Key) (Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Lookup(key)
}

// Remove calls [Store.Remove] while holding the lock.
func (l *Locked[Key]) Remove(key Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Remove(key)
}

// Purge calls [Store.Purge] while holding the lock.
func (l *Locked[Key]) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.Purge()
}

// History returns a snapshot of the history queue, from head to tail.
func (l *Locked[Key]) History() []Key {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.History()
}

// Cache returns a snapshot of the cache queue, from head to tail.
func (l *Locked[Key]) Cache() []Key {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Cache()
}

// Snapshot returns both queues as observed at the same instant.
func (l *Locked[Key]) Snapshot() (history, cache []Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.History(), l.store.Cache()
}

func (l *Locked[_]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Len()
}

func (l *Locked[_]) HistoryLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.HistoryLen()
}
