package registry

import (
	"sort"
	"sync"

	trajerr "github.com/motionkit/traject/errors"
)

// EventType identifies a claim lifecycle event.
type EventType uint8

const (
	EventClaimed EventType = iota
	EventReleased
)

// Event represents a claim lifecycle event.
type Event struct {
	Resource string
	Type     EventType
}

// Observer receives notifications about claim lifecycle events.
type Observer interface {
	OnClaimEvent(Event)
}

// Registry maps resource names to handles of type H and tracks exclusive
// claims per name. The zero value is not usable; construct with New.
type Registry[H any] struct {
	entries   map[string]*entry[H]
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
}

type entry[H any] struct {
	handle    H
	hasHandle bool
	claimed   bool
}

// New creates an empty registry.
func New[H any]() *Registry[H] {
	return &Registry[H]{
		entries: make(map[string]*entry[H]),
	}
}

// RegisterHandle stores a handle under the given name. Registering a second
// handle under the same name fails with (register, duplicate).
func (r *Registry[H]) RegisterHandle(name string, h H) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entries[name]
	if e == nil {
		e = &entry[H]{}
		r.entries[name] = e
	}
	if e.hasHandle {
		return trajerr.Duplicate(name)
	}
	e.handle = h
	e.hasHandle = true
	return nil
}

// Handle returns the handle registered under name, or (lookup, not_found).
func (r *Registry[H]) Handle(name string) (H, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.entries[name]
	if e == nil || !e.hasHandle {
		var zero H
		return zero, trajerr.NotFound(name)
	}
	return e.handle, nil
}

// Claim acquires exclusive ownership of name. Claiming an already-claimed
// name fails with (claim, already_claimed). A name does not need a registered
// handle to be claimable.
func (r *Registry[H]) Claim(name string) error {
	r.mu.Lock()
	e := r.entries[name]
	if e == nil {
		e = &entry[H]{}
		r.entries[name] = e
	}
	if e.claimed {
		r.mu.Unlock()
		return trajerr.AlreadyClaimed(name)
	}
	e.claimed = true
	r.mu.Unlock()

	r.notify(Event{Resource: name, Type: EventClaimed})
	return nil
}

// Release relinquishes ownership of name. Releasing an unclaimed name fails
// with (release, not_claimed).
func (r *Registry[H]) Release(name string) error {
	r.mu.Lock()
	e := r.entries[name]
	if e == nil || !e.claimed {
		r.mu.Unlock()
		return trajerr.NotClaimed(name)
	}
	e.claimed = false
	r.mu.Unlock()

	r.notify(Event{Resource: name, Type: EventReleased})
	return nil
}

// Claimed reports whether name is currently claimed.
func (r *Registry[H]) Claimed(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.entries[name]
	return e != nil && e.claimed
}

// ClaimedNames returns the sorted names that are currently claimed.
func (r *Registry[H]) ClaimedNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name, e := range r.entries {
		if e.claimed {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns the sorted names that have a registered handle.
func (r *Registry[H]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name, e := range r.entries {
		if e.hasHandle {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Subscribe adds an observer for claim lifecycle events.
func (r *Registry[H]) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry[H]) Unsubscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Registry[H]) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnClaimEvent(e)
	}
}
