package system

import "sync"

// Pending is a mutex-guarded queue filled by worker goroutines and drained on
// the tick goroutine at a fixed point, so async results never touch entity
// state mid-tick.
type Pending[T any] struct {
	mu    sync.Mutex
	items []T
}

// Push appends an item. Safe for concurrent use.
func (p *Pending[T]) Push(item T) {
	p.mu.Lock()
	p.items = append(p.items, item)
	p.mu.Unlock()
}

// Drain removes and returns every queued item in arrival order
func (p *Pending[T]) Drain() []T {
	p.mu.Lock()
	items := p.items
	p.items = nil
	p.mu.Unlock()
	return items
}

// Len returns the number of queued items
func (p *Pending[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}
