package cache

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"syscall"

	"github.com/evanjt06/lrucache/internal"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ErrInvalidCapacity = errors.New("capacity must be a positive integer")

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity LRU cache. It is not safe for concurrent use;
// callers that share a Cache between goroutines must guard every call with
// a single lock.
type Cache[K comparable, V any] struct {
	items    map[K]*internal.Node[entry[K, V]]
	order    *internal.List[entry[K, V]] // head = LRU, tail = MRU
	capacity int
	onEvict  func(K, V)

	// only keys that can carry an interface value need runtime validation
	checkKeys bool

	logger  *zap.SugaredLogger
	logFile *os.File
	closed  bool
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	return NewWithEvict[K, V](capacity, nil, opts...)
}

// NewWithEvict is New with a callback that receives every entry evicted to
// make room for a new key. The callback runs after the new entry is stored
// and may use the cache, but a callback that re-adds every evicted key never
// returns.
func NewWithEvict[K comparable, V any](capacity int, onEvict func(K, V), opts ...Option) (*Cache[K, V], error) {
	var err error
	if capacity <= 0 {
		err = fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	o := options{}
	for _, opt := range opts {
		err = multierr.Append(err, opt(&o))
	}
	if err != nil {
		if o.logFile != nil {
			err = multierr.Append(err, o.logFile.Close())
		}
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Cache[K, V]{
		items:    make(map[K]*internal.Node[entry[K, V]]),
		order:    internal.NewList[entry[K, V]](),
		capacity:  capacity,
		onEvict:   onEvict,
		checkKeys: internal.MayHoldInterface(reflect.TypeFor[K]()),
		logger:    logger.Sugar(),
		logFile:   o.logFile,
	}, nil
}

// Get returns the value for key and marks it most recently used. A miss
// returns the zero value and false.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	if !c.validKey(key) {
		return zero, false
	}

	node, ok := c.items[key]
	if !ok {
		return zero, false
	}

	must(c.order.MoveToTail(node))
	c.logger.Debugw("Moved entry to MRU end", "key", key)

	return node.Value.value, true
}

// Set stores value under key and marks it most recently used. When the key
// is new and the cache is full, the least recently used entry is evicted
// first. Set returns false if the key is rejected.
func (c *Cache[K, V]) Set(key K, value V) bool {
	if !c.validKey(key) {
		return false
	}

	if node, ok := c.items[key]; ok {
		node.Value.value = value
		must(c.order.MoveToTail(node))
		c.logger.Debugw("Updated entry", "key", key)
		return true
	}

	var (
		evicted    entry[K, V]
		hasEvicted bool
	)
	if c.order.Len() >= c.capacity {
		evicted, hasEvicted = c.evictOldest()
	}

	c.items[key] = c.order.AddToTail(entry[K, V]{key: key, value: value})
	c.logger.Debugw("Inserted entry", "key", key, "size", c.order.Len())

	if hasEvicted && c.onEvict != nil {
		c.onEvict(evicted.key, evicted.value)
	}

	return true
}

// Delete removes key. It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	if !c.validKey(key) {
		return false
	}

	node, ok := c.items[key]
	if !ok {
		return false
	}

	delete(c.items, key)
	must(c.order.Delete(node))
	c.logger.Debugw("Deleted entry from cache", "key", key)

	return true
}

// Peek returns the value for key without touching its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	var zero V
	if !c.validKey(key) {
		return zero, false
	}
	if node, ok := c.items[key]; ok {
		return node.Value.value, true
	}
	return zero, false
}

// Contains reports whether key is cached without touching its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	if !c.validKey(key) {
		return false
	}
	_, ok := c.items[key]
	return ok
}

// Oldest returns the entry that would be evicted next.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	node := c.order.Head()
	if node == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return node.Value.key, node.Value.value, true
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for n := c.order.Head(); n != nil; n = n.Next() {
		keys = append(keys, n.Value.key)
	}
	return keys
}

func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Purge drops every entry. The eviction callback is not called.
func (c *Cache[K, V]) Purge() {
	n := c.order.Len()
	c.items = make(map[K]*internal.Node[entry[K, V]])
	c.order = internal.NewList[entry[K, V]]()
	c.logger.Debugw("Purged cache", "removed", n)
}

// Log writes every entry, most recently used first, at debug level.
func (c *Cache[K, V]) Log() {
	c.logger.Debugw("Cache contents", "size", c.order.Len(), "capacity", c.capacity)
	for n := c.order.Tail(); n != nil; n = n.Prev() {
		c.logger.Debugw("Entry", "key", n.Value.key, "value", n.Value.value)
	}
}

// Close flushes the logger and closes the log file opened by WithLogFile.
// Sync errors from terminals and pipes, which cannot be synced, are ignored.
func (c *Cache[K, V]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	err := c.logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		err = nil
	}
	if c.logFile != nil {
		err = multierr.Append(err, c.logFile.Close())
		c.logFile = nil
	}
	return err
}

// evictOldest drops the head of the order list and returns its entry. The
// map entry goes first so the index never points at a detached node.
func (c *Cache[K, V]) evictOldest() (entry[K, V], bool) {
	node := c.order.Head()
	if node == nil {
		return entry[K, V]{}, false
	}

	evicted := node.Value
	delete(c.items, evicted.key)
	must(c.order.Delete(node))

	c.logger.Debugw("Evicted entry due to capacity", "key", evicted.key)

	return evicted, true
}

func (c *Cache[K, V]) validKey(key K) bool {
	if !c.checkKeys {
		return true
	}
	if err := internal.ValidateKey(key); err != nil {
		c.logger.Debugw("Invalid key rejected", "key", key, "error", err)
		return false
	}
	return true
}

// must panics on list errors. They only happen when the map and the list
// disagree, which is a bug in this package.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("lrucache: corrupted index: %v", err))
	}
}
