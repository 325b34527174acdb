package cache

import "github.com/sewenew/cache/internal/list"

// LRU is a bounded cache using the Least Recently Used replacement
// policy. Concurrent access must be guarded by the caller.
// Constructed by [NewLRU].
type LRU[Key comparable, Value any] struct {
	list *list.List[Key, Value]
}

// NewLRU creates an [LRU] with the given capacity.
func NewLRU[Key comparable, Value any](capacity int) (*LRU[Key, Value], error) {
	if capacity <= 0 {
		return nil, capacityError(capacity)
	}
	return &LRU[Key, Value]{
		list: list.New[Key, Value](capacity),
	}, nil
}

// Set inserts or updates key with value and makes it the most recently
// used entry. Inserting into a full cache evicts the least recently
// used entry.
func (c *LRU[Key, Value]) Set(key Key, value Value) {
	if node, ok := c.list.Find(key); ok {
		c.list.Update(node, value)
		return
	}
	c.list.Add(key, value)
}

// Get returns the value for key if it is resident and marks it as the
// most recently used entry; otherwise it returns the zero value and
// false.
func (c *LRU[Key, Value]) Get(key Key) (Value, bool) {
	return c.list.Get(key)
}

// Del removes key and reports whether an entry was removed.
func (c *LRU[Key, Value]) Del(key Key) bool {
	return c.list.Del(key)
}

// Len returns the number of resident entries.
func (c *LRU[Key, Value]) Len() int {
	return c.list.Len()
}

// Load returns the cached value for key (if resident). Otherwise, it
// calls fetch, inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *LRU[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	return load[Key](c, key, fetch)
}

// setGetter is the slice of the cache surface shared by every policy,
// used to share the Load path.
type setGetter[Key comparable, Value any] interface {
	Set(Key, Value)
	Get(Key) (Value, bool)
}

func load[Key comparable, Value any](
	c setGetter[Key, Value],
	key Key, fetch func() (Value, error),
) (Value, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}
