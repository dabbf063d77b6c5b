// Package events provides the named-event emission primitive the dialog
// bridge fans completion callbacks out on. Delivery is synchronous and
// in registration order: the host scheduling model is single-threaded
// cooperative, so handlers run on the caller's goroutine.
package events

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when operating on a closed emitter.
var ErrClosed = errors.New("emitter closed")

// Handler processes an emitted event.
type Handler func(event Event)

// Event is a named event with a positional payload.
type Event struct {
	Name string
	Args []any
}

// Emitter dispatches named events to registered handlers.
// It is safe for concurrent use, though the bridge only ever drives it
// from the host's main thread.
type Emitter struct {
	mu         sync.Mutex
	subs       map[string][]*Subscription
	subCounter atomic.Uint64
	closed     atomic.Bool
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		subs: make(map[string][]*Subscription),
	}
}

// On registers a handler for events with the given name.
func (e *Emitter) On(name string, handler Handler) (*Subscription, error) {
	if e.closed.Load() {
		return nil, ErrClosed
	}

	sub := &Subscription{
		id:      fmt.Sprintf("sub-%d", e.subCounter.Add(1)),
		name:    name,
		handler: handler,
		emitter: e,
	}

	e.mu.Lock()
	e.subs[name] = append(e.subs[name], sub)
	e.mu.Unlock()

	return sub, nil
}

// Once registers a handler that fires for a single event and then
// unsubscribes itself.
func (e *Emitter) Once(name string, handler Handler) (*Subscription, error) {
	var sub *Subscription
	var err error
	sub, err = e.On(name, func(event Event) {
		sub.Unsubscribe()
		handler(event)
	})
	return sub, err
}

// Emit delivers an event to every handler registered for its name,
// synchronously and in registration order. It returns the number of
// handlers invoked.
func (e *Emitter) Emit(name string, args ...any) int {
	if e.closed.Load() {
		return 0
	}

	e.mu.Lock()
	subs := make([]*Subscription, len(e.subs[name]))
	copy(subs, e.subs[name])
	e.mu.Unlock()

	delivered := 0
	for _, sub := range subs {
		if sub.removed.Load() {
			continue
		}
		sub.handler(Event{Name: name, Args: args})
		delivered++
	}
	return delivered
}

// ListenerCount returns the number of live handlers for a name.
func (e *Emitter) ListenerCount(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs[name])
}

// Close drops all subscriptions. Further On/Emit calls fail or no-op.
func (e *Emitter) Close() error {
	if e.closed.Swap(true) {
		return ErrClosed
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, subs := range e.subs {
		for _, sub := range subs {
			sub.removed.Store(true)
		}
	}
	e.subs = make(map[string][]*Subscription)
	return nil
}

// Subscription represents a registered handler that can be removed.
type Subscription struct {
	id      string
	name    string
	handler Handler
	emitter *Emitter
	removed atomic.Bool
}

// Unsubscribe removes the handler. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.removed.Swap(true) {
		return
	}

	s.emitter.mu.Lock()
	defer s.emitter.mu.Unlock()

	subs := s.emitter.subs[s.name]
	for i, sub := range subs {
		if sub.id == s.id {
			s.emitter.subs[s.name] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

// Name returns the event name this subscription is for.
func (s *Subscription) Name() string {
	return s.name
}
