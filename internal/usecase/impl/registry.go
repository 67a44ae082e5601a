package impl

import (
	"sync"
	"time"

	"storefront/internal/domain/entity"
)

// registry holds one state value per user, created on first use.
type registry[T any] struct {
	mu      sync.Mutex
	entries map[entity.UserID]*registryEntry[T]
	create  func(entity.UserID) T
	now     func() time.Time
}

type registryEntry[T any] struct {
	value   T
	touched time.Time
}

func newRegistry[T any](create func(entity.UserID) T) *registry[T] {
	return &registry[T]{
		entries: make(map[entity.UserID]*registryEntry[T]),
		create:  create,
		now:     time.Now,
	}
}

// get returns the state of userID, creating it if needed, and marks it used.
func (r *registry[T]) get(userID entity.UserID) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[userID]
	if !ok {
		entry = &registryEntry[T]{value: r.create(userID)}
		r.entries[userID] = entry
	}
	entry.touched = r.now()

	return entry.value
}

// lookup returns the state of userID without creating it.
func (r *registry[T]) lookup(userID entity.UserID) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[userID]
	if !ok {
		var zero T

		return zero, false
	}
	entry.touched = r.now()

	return entry.value, true
}

// inFlighter is implemented by state that must outlive the idle timeout while
// a request is still using it.
type inFlighter interface {
	inFlight() bool
}

// sweep drops entries not used since olderThan, skipping those in flight.
func (r *registry[T]) sweep(olderThan time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for userID, entry := range r.entries {
		if busy, ok := any(entry.value).(inFlighter); ok && busy.inFlight() {
			continue
		}
		if entry.touched.Before(olderThan) {
			delete(r.entries, userID)
			removed++
		}
	}

	return removed
}

func (r *registry[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
