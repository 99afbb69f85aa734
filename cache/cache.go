package cache

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 128

// LRU is a fixed-capacity cache with least-recently-used eviction.
//
// Both Get and Contains count as a use: checking for a key's presence
// promotes it exactly like reading it, so a key probed every frame stays
// resident. Put of an existing key updates the value and promotes it.
type LRU[K comparable, V any] struct {
	capacity int
	entries  map[K]*lruEntry[K, V]
	list     lruList[K]
	onEvict  func(K, V)
}

type lruEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates an LRU with the given capacity.
// If capacity <= 0, DefaultCapacity (128) is used.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		capacity: capacity,
		entries:  make(map[K]*lruEntry[K, V], capacity),
	}
}

// OnEvict registers a hook invoked with each evicted or removed entry.
// The render pipeline uses it to destroy GPU textures that fall out of the
// cache. The hook runs synchronously inside Put/Remove/Clear.
func (c *LRU[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

// Get retrieves a cached value and promotes it to most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.list.MoveToFront(entry.node)
	return entry.value, true
}

// Contains reports whether key is cached. The check promotes the entry's
// recency identically to Get.
func (c *LRU[K, V]) Contains(key K) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.list.MoveToFront(entry.node)
	return true
}

// Peek retrieves a value without promoting it.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Put stores a value. An existing key is updated and promoted. When the
// cache is over capacity the least-recently-used entry is evicted.
func (c *LRU[K, V]) Put(key K, value V) {
	if entry, ok := c.entries[key]; ok {
		entry.value = value
		c.list.MoveToFront(entry.node)
		return
	}

	for c.list.Len() >= c.capacity {
		oldest, ok := c.list.RemoveOldest()
		if !ok {
			break
		}
		if entry, ok := c.entries[oldest]; ok {
			delete(c.entries, oldest)
			if c.onEvict != nil {
				c.onEvict(oldest, entry.value)
			}
		}
	}

	node := c.list.PushFront(key)
	c.entries[key] = &lruEntry[K, V]{value: value, node: node}
}

// Remove deletes an entry, invoking the eviction hook.
// Returns true if the entry was present.
func (c *LRU[K, V]) Remove(key K) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.list.Remove(entry.node)
	delete(c.entries, key)
	if c.onEvict != nil {
		c.onEvict(key, entry.value)
	}
	return true
}

// Clear removes all entries, invoking the eviction hook for each.
func (c *LRU[K, V]) Clear() {
	if c.onEvict != nil {
		for key, entry := range c.entries {
			c.onEvict(key, entry.value)
		}
	}
	c.entries = make(map[K]*lruEntry[K, V], c.capacity)
	c.list.Clear()
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int { return len(c.entries) }

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int { return c.capacity }
