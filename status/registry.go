package status

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Group holds named metrics of one value type
// Lookup takes a lock; callers cache the returned pointer and write lock-free
type Group[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newGroup[T any]() *Group[T] {
	return &Group[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating on first use
func (g *Group[T]) Get(key string) *T {
	g.mu.RLock()
	ptr, ok := g.items[key]
	g.mu.RUnlock()
	if ok {
		return ptr
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if ptr, ok := g.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	g.items[key] = ptr
	return ptr
}

// Each visits metrics in key order
func (g *Group[T]) Each(fn func(key string, v *T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keys := make([]string, 0, len(g.items))
	for k := range g.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, g.items[k])
	}
}

func (g *Group[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.items)
}

// Registry is the metrics facade shared by engine and director
// and read by the debug overlay
type Registry struct {
	Ints   *Group[atomic.Int64]
	Floats *Group[Float]
	Texts  *Group[Text]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   newGroup[atomic.Int64](),
		Floats: newGroup[Float](),
		Texts:  newGroup[Text](),
	}
}

// Lines renders every metric as "key: value", ints then floats then texts,
// each group sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Len()+r.Floats.Len()+r.Texts.Len())
	r.Ints.Each(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Each(func(k string, v *Float) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", k, v.Get()))
	})
	r.Texts.Each(func(k string, v *Text) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, v.Get()))
	})
	return lines
}
