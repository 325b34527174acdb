package cache

import "github.com/sewenew/cache/internal/list"

// SLRU is a bounded cache using the Segmented LRU replacement policy.
// The capacity is split into a probationary and a protected segment.
// New entries enter probation; a second hit promotes an entry to the
// protected segment, which overflow demotes back into probation. This
// makes the cache resistant to scans: one-shot entries churn through
// probation without displacing the protected set.
// Concurrent access must be guarded by the caller.
// Constructed by [NewSLRU].
type SLRU[Key comparable, Value any] struct {
	probation *list.List[Key, Value]
	protected *list.List[Key, Value]
}

// NewSLRU creates an [SLRU] with the given total capacity.
// The probationary segment is sized to ⌊capacity·probationRatio⌋ and
// the protected segment takes the remainder; both must end up with room
// for at least one entry.
func NewSLRU[Key comparable, Value any](
	capacity int, probationRatio float64,
) (*SLRU[Key, Value], error) {
	if capacity <= 0 {
		return nil, capacityError(capacity)
	}
	const ratioName = "probation ratio"
	if probationRatio < 0 || probationRatio > 1 {
		return nil, ratioError(ratioName, "[0, 1]", probationRatio)
	}
	probationSize := int(float64(capacity) * probationRatio)
	protectedSize := capacity - probationSize
	if probationSize == 0 || protectedSize == 0 {
		return nil, emptySegmentError(ratioName, probationRatio, capacity)
	}
	return &SLRU[Key, Value]{
		probation: list.New[Key, Value](probationSize),
		protected: list.New[Key, Value](protectedSize),
	}, nil
}

// Set inserts or updates key with value. A key already in probation is
// promoted to the protected segment, exactly as a [SLRU.Get] hit would
// promote it. Inserting a new key into a full probation segment evicts
// the segment's LRU entry.
func (c *SLRU[Key, Value]) Set(key Key, value Value) {
	if node, ok := c.protected.Find(key); ok {
		c.protected.Update(node, value)
		return
	}
	if node, ok := c.probation.Find(key); ok {
		// Double hit. The node is moved, not recreated, so update the
		// value after the transfer.
		c.promote(node)
		c.protected.MRU().Value = value
		return
	}
	c.probation.Add(key, value)
}

// Get returns the value for key if it is resident; otherwise it returns
// the zero value and false. A hit in the probationary segment promotes
// the entry to the protected segment.
func (c *SLRU[Key, Value]) Get(key Key) (Value, bool) {
	if value, ok := c.protected.Get(key); ok {
		return value, true
	}
	if node, ok := c.probation.Find(key); ok {
		c.promote(node)
		return c.protected.MRU().Value, true
	}
	var zero Value
	return zero, false
}

// Del removes key from whichever segment holds it and reports whether
// an entry was removed.
func (c *SLRU[Key, Value]) Del(key Key) bool {
	if c.probation.Del(key) {
		return true
	}
	return c.protected.Del(key)
}

// Len returns the number of resident entries across both segments.
func (c *SLRU[Key, Value]) Len() int {
	return c.probation.Len() + c.protected.Len()
}

// Load returns the cached value for key (if resident). Otherwise, it
// calls fetch, inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *SLRU[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	return load[Key](c, key, fetch)
}

// promote transfers a probationary node to the front of the protected
// segment. Protected overflow demotes its LRU entry into probation;
// the promotion freed a probation slot, so the demoted entry fits.
func (c *SLRU[Key, Value]) promote(node *list.Node[Key, Value]) {
	c.probation.MoveToFront(node, c.protected)
	if c.protected.OverCapacity() {
		c.protected.MoveLRUToFront(c.probation)
	}
}
