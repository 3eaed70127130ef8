package page

import (
	"slices"
	"sync"
)

// Collection is a page's local working set of one entity type. Fetched
// values are snapshots; mutations only ever replace, append or filter them.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) int
}

func NewCollection[T any](id func(T) int) *Collection[T] {
	return &Collection[T]{id: id}
}

func (c *Collection[T]) Set(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
}

// Snapshot returns a copy the caller may reorder freely.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Find(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.items {
		if c.id(v) == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Append(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, v)
}

// Replace swaps the value with v's id; it reports whether one was found.
func (c *Collection[T]) Replace(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.items, func(x T) bool { return c.id(x) == c.id(v) })
	if i < 0 {
		return false
	}
	c.items[i] = v
	return true
}

func (c *Collection[T]) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(x T) bool { return c.id(x) == id })
	return len(c.items) != n
}
