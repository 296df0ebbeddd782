// Package lru2 implements a [Store] using the LRU-2 admission policy.
//
// LRU-2 only admits a key into the protected cache after it has been
// observed a second time. First observations are parked in a bounded,
// probationary history queue, so a scan of distinct cold keys can not
// flush the hot working set out of the cache.
//
// The following is a summary intended for maintainers.
//
// Queues:
//
//   - History
//
//     Keys seen once and not yet confirmed hot.
//     Bounded by the history capacity and evicted FIFO (head first).
//
//   - Cache
//
//     Keys confirmed hot. Bounded by the cache capacity and evicted LRU:
//     the head is the least recently accessed key, every access moves
//     the key to the tail.
//
// Operations:
//
//   - Admission
//
//     A key in neither queue is appended to the history tail,
//     evicting the history head first if the history is full.
//
//   - Promotion
//
//     A key found in the history is removed from it and appended to the
//     cache tail, evicting the cache head first if the cache is full.
//
//   - Touch
//
//     A key found in the cache moves to the cache tail. Nothing is evicted.
//
// Position index:
//
//   - Every resident key maps to a handle (an intrusive ring element)
//     that records which queue holds it.
//
//   - A key is indexed if and only if it is linked into exactly one queue.
//
//   - Slots (0-based positions) are derived from the handles on query,
//     so removal from the middle of a queue never renumbers other keys.
//     See [Store.Lookup] and [Store.Positions].
//
// Degenerate capacities:
//
//   - A zero capacity queue never retains a key. A key that would be
//     appended to it is evicted immediately and reported to the
//     eviction handler (see [WithEvictionHandler]).
//
// Building with the `lru2_debug` tag verifies the whole index after
// every mutation and panics on the first inconsistency.
package lru2
