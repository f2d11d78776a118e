package status

import (
	"slices"
	"sync"
)

// Table hands out one long-lived pointer per Key
// Producers look keys up once at wiring time and write through the pointer per frame
type Table[T any] struct {
	mu    sync.Mutex
	items map[Key]*T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[Key]*T)}
}

// Get returns the metric for k, allocating it on first use
func (t *Table[T]) Get(k Key) *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.items[k]
	if !ok {
		p = new(T)
		t.items[k] = p
	}
	return p
}

// Lookup returns the metric for k without registering it
func (t *Table[T]) Lookup(k Key) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.items[k]
	return p, ok
}

// Keys lists registered keys in sorted order
func (t *Table[T]) Keys() []Key {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]Key, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}
