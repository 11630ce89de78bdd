package store

import (
	"log"
	"sync"
)

// Source is the persistent side of a collection: select-all-ordered,
// insert-one-returning-row, update and delete-by-key. Backends that do not
// support an operation return repos.ErrImmutable / repos.ErrAppendOnly.
type Source[T any] interface {
	List() ([]T, error)
	Insert(T) (T, error)
	Update(T) (T, error)
	Delete(key string) error
}

// Collection mirrors one database table in memory. Writes go to the Source
// first; on success the local slice is patched optimistically and a dirty
// signal wakes the reconciler, which refetches the whole table and hands the
// replacement snapshot to every subscriber. There is no version counter: a
// refresh triggered by one change may overwrite the optimistic result of
// another. Since every write also triggers a refresh, the in-memory state
// converges on the table contents (eventual consistency, not atomicity).
type Collection[T any] struct {
	name    string
	src     Source[T]
	keyOf   func(T) string
	prepend bool

	mu    sync.RWMutex
	items []T

	subMu  sync.Mutex
	subs   map[int]func([]T)
	nextID int

	dirty chan struct{}
	done  chan struct{}
	stop  sync.Once
}

func NewCollection[T any](name string, src Source[T], keyOf func(T) string, prepend bool) *Collection[T] {
	c := &Collection[T]{
		name:    name,
		src:     src,
		keyOf:   keyOf,
		prepend: prepend,
		subs:    make(map[int]func([]T)),
		dirty:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go c.reconcile()
	return c
}

func (c *Collection[T]) Name() string { return c.name }

// Items returns a copy of the current in-memory state.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// FetchAll loads the full table and replaces local state.
func (c *Collection[T]) FetchAll() ([]T, error) {
	items, err := c.src.List()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return append([]T(nil), items...), nil
}

// Replace overwrites local state without touching the Source. Used for the
// degraded mock-data mode when a table is missing.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	c.items = append([]T(nil), items...)
	c.mu.Unlock()
	c.notify(c.Items())
}

// Create inserts through the Source and, on success, patches local state
// before the refetch lands so callers see the item immediately.
func (c *Collection[T]) Create(item T) (T, error) {
	created, err := c.src.Insert(item)
	if err != nil {
		var zero T
		return zero, err
	}
	c.mu.Lock()
	if c.prepend {
		c.items = append([]T{created}, c.items...)
	} else {
		c.items = append(c.items, created)
	}
	c.mu.Unlock()
	c.Invalidate()
	return created, nil
}

// Update edits an item in place (keyed collections that allow it).
func (c *Collection[T]) Update(item T) (T, error) {
	updated, err := c.src.Update(item)
	if err != nil {
		var zero T
		return zero, err
	}
	key := c.keyOf(updated)
	c.mu.Lock()
	for i := range c.items {
		if c.keyOf(c.items[i]) == key {
			c.items[i] = updated
			break
		}
	}
	c.mu.Unlock()
	c.Invalidate()
	return updated, nil
}

// Remove deletes by key and filters the item out of local state on success.
func (c *Collection[T]) Remove(key string) error {
	if err := c.src.Delete(key); err != nil {
		return err
	}
	c.mu.Lock()
	kept := c.items[:0]
	for _, it := range c.items {
		if c.keyOf(it) != key {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.mu.Unlock()
	c.Invalidate()
	return nil
}

// Subscribe registers a callback that receives the full replacement
// snapshot after every refresh. The returned cancel func stops delivery;
// calling it more than once is harmless.
func (c *Collection[T]) Subscribe(fn func([]T)) func() {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subMu.Unlock()
	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Invalidate schedules a full refetch. Signals coalesce: many writes in a
// row cause at most one queued refresh.
func (c *Collection[T]) Invalidate() {
	select {
	case c.dirty <- struct{}{}:
	default:
	}
}

// Close stops the reconciler. No snapshots are delivered afterwards.
func (c *Collection[T]) Close() {
	c.stop.Do(func() { close(c.done) })
}

func (c *Collection[T]) reconcile() {
	for {
		select {
		case <-c.done:
			return
		case <-c.dirty:
			items, err := c.src.List()
			if err != nil {
				log.Printf("[store] %s refresh failed: %v", c.name, err)
				continue
			}
			c.mu.Lock()
			c.items = items
			c.mu.Unlock()
			c.notify(append([]T(nil), items...))
		}
	}
}

func (c *Collection[T]) notify(snapshot []T) {
	select {
	case <-c.done:
		return
	default:
	}
	c.subMu.Lock()
	fns := make([]func([]T), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}
