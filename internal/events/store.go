package events

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("event not found")

// Store abstracts access to the event collection.
//
// Handlers depend on this interface, never on a concrete store, so the
// single-process in-memory implementation can be swapped without touching
// the transport layer.
type Store interface {
	Create(ctx context.Context, title string) (Event, error)
	Get(ctx context.Context, id int) (Event, error)
	Rename(ctx context.Context, id int, title string) (Event, error)
	Delete(ctx context.Context, id int) error
}

// MemoryStore holds the collection in process memory. All data is volatile
// and reset to the initial records on restart.
//
// Insertion order is preserved. Lookups are linear scans; fine at this
// scale, switch to a map keyed by id if the collection ever grows.
type MemoryStore struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryStore returns a store pre-populated with the given records.
func NewMemoryStore(initial ...Event) *MemoryStore {
	s := &MemoryStore{events: make([]Event, 0, len(initial))}
	s.events = append(s.events, initial...)
	return s
}

// Create appends a new event titled title. The new id is one greater than
// the largest id currently in the collection, or 1 when it is empty, so ids
// are unique and strictly increasing for the life of the process.
func (s *MemoryStore) Create(ctx context.Context, title string) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, e := range s.events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	ev := Event{ID: maxID + 1, Title: title}
	s.events = append(s.events, ev)
	return ev, nil
}

func (s *MemoryStore) Get(ctx context.Context, id int) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Event{}, ErrNotFound
	}
	return s.events[i], nil
}

// Rename replaces the title of the event with the given id.
func (s *MemoryStore) Rename(ctx context.Context, id int, title string) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Event{}, ErrNotFound
	}
	s.events[i].Title = title
	return s.events[i], nil
}

// Delete removes the event with the given id from the collection.
func (s *MemoryStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	return nil
}

// indexOf is the shared linear scan; callers must hold s.mu.
func (s *MemoryStore) indexOf(id int) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
