package factory

import (
	"context"
	"sync/atomic"
)

// Event names a point in the lifecycle where hooks run. Any string is a
// valid custom event.
type Event = string

// Lifecycle events emitted by Create.
const (
	PreBuild Event = "pre:build"
	PreSave  Event = "pre:save"
	PostSave Event = "post:save"
)

// Next is the continuation handed to every hook. A non-nil error aborts
// the chain.
type Next func(err error)

// HookFunc observes or vetoes a lifecycle stage. It must eventually call
// next exactly once, from any goroutine. PreBuild hooks receive the zero T.
type HookFunc[T any] func(ctx context.Context, obj T, next Next)

// Hooks is an ordered table of hook chains keyed by event.
type Hooks[T any] struct {
	order  []Event
	chains map[Event][]HookFunc[T]
}

// NewHooks returns an empty hook table.
func NewHooks[T any]() *Hooks[T] {
	return &Hooks[T]{chains: make(map[Event][]HookFunc[T])}
}

// Add appends fn to the chain for key.
func (h *Hooks[T]) Add(key Event, fn HookFunc[T]) {
	if _, ok := h.chains[key]; !ok {
		h.order = append(h.order, key)
	}
	h.chains[key] = append(h.chains[key], fn)
}

// Chain returns a copy of the hooks registered for key.
func (h *Hooks[T]) Chain(key Event) []HookFunc[T] {
	chain := h.chains[key]
	out := make([]HookFunc[T], len(chain))
	copy(out, chain)
	return out
}

// Events returns the keys that have hooks, in first-registration order.
func (h *Hooks[T]) Events() []Event {
	out := make([]Event, len(h.order))
	copy(out, h.order)
	return out
}

// Emit runs the chain for key one hook at a time and reports the outcome
// to done. Hook N+1 starts only after hook N calls its continuation. An
// empty chain reports success immediately.
func (h *Hooks[T]) Emit(ctx context.Context, key Event, obj T, done Next) {
	chain := h.Chain(key)

	var run func(i int)
	run = func(i int) {
		if i == len(chain) {
			done(nil)
			return
		}
		chain[i](ctx, obj, once(func(err error) {
			if err != nil {
				done(err)
				return
			}
			run(i + 1)
		}))
	}
	run(0)
}

// once drops every call after the first.
func once(next Next) Next {
	var called atomic.Bool
	return func(err error) {
		if called.CompareAndSwap(false, true) {
			next(err)
		}
	}
}
