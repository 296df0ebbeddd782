// Package ring is a specialized adaption of `container/ring` used as
// an intrusive queue by LRU-2.
//
// A queue is represented by a sentinel element (its root) which is
// never removed; the element after the root is the queue's head and
// the element before it is the tail. Elements record the root they are
// linked into, so a handle alone is enough to classify and unlink it.
package ring

import "iter"

type (
	// A Ring is an element of a circular list, or ring.
	// Empty rings are represented as nil Ring pointers.
	// The zero value for a Ring is a one-element ring,
	// which is also a valid empty queue root.
	Ring[Key comparable] struct {
		next, prev *Ring[Key]
		Metadata[Key]
	}
	// Metadata stores the queue state of a key.
	Metadata[Key comparable] struct {
		// Name is the key this element tracks.
		Name Key
		// Root is the sentinel of the queue the element
		// is linked into, or nil while detached.
		Root *Ring[Key]
	}
)

func (r *Ring[Key]) init() *Ring[Key] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be empty.
func (r *Ring[Key]) Next() *Ring[Key] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be empty.
func (r *Ring[Key]) Prev() *Ring[Key] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Move moves n % r.Len() elements backward (n < 0) or forward (n >= 0)
// in the ring and returns that ring element. r must not be empty.
func (r *Ring[Key]) Move(n int) *Ring[Key] {
	if r.next == nil {
		return r.init()
	}
	switch {
	case n < 0:
		for ; n < 0; n++ {
			r = r.prev
		}
	case n > 0:
		for ; n > 0; n-- {
			r = r.next
		}
	}
	return r
}

// Link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
// r must not be empty.
//
// If r and s point to the same ring, linking
// them removes the elements between r and s from the ring.
// The removed elements form a subring and the result is a
// reference to that subring.
//
// If r and s point to different rings, linking
// them creates a single ring with the elements of s inserted
// after r. The result points to the element following the
// last element of s after insertion.
func (r *Ring[Key]) Link(s *Ring[Key]) *Ring[Key] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// Unlink removes n % r.Len() elements from the ring r, starting
// at r.Next(). If n % r.Len() == 0, r remains unchanged.
// The result is the removed subring. r must not be empty.
func (r *Ring[Key]) Unlink(n int) *Ring[Key] {
	if n <= 0 {
		return nil
	}
	return r.Link(r.Move(n + 1))
}

// Len computes the number of elements in ring r.
// It executes in time proportional to the number of elements.
func (r *Ring[Key]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}

// Empty reports whether the queue rooted at r has no elements.
func (r *Ring[Key]) Empty() bool {
	return r.Next() == r
}

// Front returns the head of the queue rooted at r,
// or nil if the queue is empty.
func (r *Ring[Key]) Front() *Ring[Key] {
	if r.Empty() {
		return nil
	}
	return r.next
}

// Back returns the tail of the queue rooted at r,
// or nil if the queue is empty.
func (r *Ring[Key]) Back() *Ring[Key] {
	if r.Empty() {
		return nil
	}
	return r.prev
}

// PushBack links the detached element e at the tail
// of the queue rooted at r.
func (r *Ring[Key]) PushBack(e *Ring[Key]) {
	r.Prev().Link(e)
	e.Root = r
}

// Detach unlinks e from whatever queue holds it.
// e must not be a root.
func (e *Ring[Key]) Detach() *Ring[Key] {
	removed := e.Prev().Unlink(1)
	e.Root = nil
	return removed
}

// Elements returns an iterator over the queue rooted at r,
// from head to tail. The queue must not be modified
// during iteration.
func (r *Ring[Key]) Elements() iter.Seq[*Ring[Key]] {
	return func(yield func(*Ring[Key]) bool) {
		for p := r.Next(); p != r; p = p.next {
			if !yield(p) {
				return
			}
		}
	}
}

// Names returns an iterator over the keys of the queue rooted at r,
// from head to tail.
func (r *Ring[Key]) Names() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for p := range r.Elements() {
			if !yield(p.Name) {
				return
			}
		}
	}
}
