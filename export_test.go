package lru2

// Validate exposes the index consistency check to external tests.
func (s *Store[Key]) Validate() error { return s.validate() }

// Validate exposes the index consistency check of the wrapped store.
func (l *Locked[Key]) Validate() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.validate()
}
