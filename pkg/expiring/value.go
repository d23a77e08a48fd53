// Package expiring provides a single memoized value that is regenerated once its TTL elapses.
package expiring

import (
	"sync"
	"time"
)

// Clock abstracts time so callers can drive expiry deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Option configures a Value.
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock overrides the clock used to compute expiry.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// Value caches one T for a fixed ttl. The zero value is not usable; call New.
type Value[T any] struct {
	mu     sync.Mutex
	ttl    time.Duration
	clock  Clock
	value  T
	set    bool
	expiry time.Time
}

// New returns an empty Value that keeps generated results for ttl.
func New[T any](ttl time.Duration, opts ...Option) *Value[T] {
	o := options{clock: SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Value[T]{ttl: ttl, clock: o.clock}
}

// Get returns the cached value while now is before its expiry, otherwise it calls
// generate, stores the result with expiry now+ttl and returns it.
// Concurrent callers observing an expired entry trigger a single generate call.
func (v *Value[T]) Get(generate func() T) T {
	return v.GetValid(nil, generate)
}

// GetValid is Get with a cache hit additionally requiring valid(value). A stored
// value that fails valid is regenerated even before its expiry. A nil valid
// accepts everything.
func (v *Value[T]) GetValid(valid func(T) bool, generate func() T) T {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.clock.Now()
	if v.set && now.Before(v.expiry) && (valid == nil || valid(v.value)) {
		return v.value
	}

	v.value = generate()
	v.set = true
	v.expiry = now.Add(v.ttl)
	return v.value
}

// Peek reports the cached value and its expiry without refreshing it.
func (v *Value[T]) Peek() (T, time.Time, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value, v.expiry, v.set
}

// Reset drops the cached value so the next Get regenerates it.
func (v *Value[T]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	var zero T
	v.value = zero
	v.set = false
	v.expiry = time.Time{}
}
