package status

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Table maps metric keys to long-lived values of type T
// Producers fetch a pointer once and then update it without locking
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Get returns the value for key, allocating it on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.RLock()
	p, ok := t.items[key]
	t.mu.RUnlock()
	if ok {
		return p
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.items[key]; ok {
		return p
	}
	p = new(T)
	t.items[key] = p
	return p
}

// Keys lists registered keys in sorted order
func (t *Table[T]) Keys() []string {
	t.mu.RLock()
	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	t.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Range visits every value in key order
func (t *Table[T]) Range(fn func(key string, v *T)) {
	for _, k := range t.Keys() {
		t.mu.RLock()
		p := t.items[k]
		t.mu.RUnlock()
		fn(k, p)
	}
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
