// Package cache implements a fixed-capacity least-recently-used cache.
//
// A map indexes keys to nodes of a doubly-linked list ordered by recency,
// so Get, Set and Delete are O(1). When a new key arrives and the cache is
// full, the least recently used entry is evicted. A Cache must not be used
// from multiple goroutines without external locking.
package cache
