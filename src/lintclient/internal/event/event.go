// Package event provides typed in-process subscriptions whose teardown is isolated per listener.
package event

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"
)

// Disposable releases a subscription or another resource.
type Disposable interface {
	Dispose() error
}

// DisposableFunc adapts a function to the Disposable interface.
type DisposableFunc func() error

// Dispose calls f.
func (f DisposableFunc) Dispose() error {
	return f()
}

// Listener receives emitted values.
type Listener[T any] func(T)

// Emitter fans values out to its listeners, in subscription order.
// The zero value is ready to use.
type Emitter[T any] struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener[T]
}

// Subscribe registers l. Disposing the returned subscription more than once is harmless.
func (e *Emitter[T]) Subscribe(l Listener[T]) Disposable {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[int]Listener[T])
	}
	id := e.nextID
	e.nextID++
	e.listeners[id] = l

	return DisposableFunc(func() error {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
		return nil
	})
}

// Emit delivers v to every current listener on the calling goroutine.
// A panicking listener does not prevent delivery to the others; its panic is returned as an error.
func (e *Emitter[T]) Emit(v T) error {
	var errs error
	for _, l := range e.snapshot() {
		errs = multierr.Append(errs, call(func() error {
			l(v)
			return nil
		}))
	}
	return errs
}

// Len returns the number of current listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

func (e *Emitter[T]) snapshot() []Listener[T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := make([]int, 0, len(e.listeners))
	for id := range e.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Listener[T], 0, len(ids))
	for _, id := range ids {
		out = append(out, e.listeners[id])
	}
	return out
}

// DisposeAll disposes every non-nil entry. A failure or panic in one entry does not stop the rest;
// all failures are combined into the returned error.
func DisposeAll(disposables ...Disposable) error {
	var errs error
	for _, d := range disposables {
		if d == nil {
			continue
		}
		errs = multierr.Append(errs, call(d.Dispose))
	}
	return errs
}

func call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic: %v", r)
		}
	}()
	return fn()
}
