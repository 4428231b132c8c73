package eventsource

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var (
	// ErrVersionConflict is returned when an append's expected version
	// does not match the stream's current last version.
	ErrVersionConflict = errors.New("eventsource: version conflict")

	// ErrStreamNotFound is returned when reading a stream with no events.
	ErrStreamNotFound = errors.New("eventsource: stream not found")
)

// Store is an append-only event stream store.
type Store interface {
	// Append adds events to a stream. expectedVersion must equal the
	// stream's current last version (-1 for a new stream); otherwise
	// ErrVersionConflict is returned and nothing is written. Returns the
	// version of the last event appended.
	Append(ctx context.Context, streamID string, expectedVersion int, events []*Event) (int, error)

	// Read returns a stream's events with version >= fromVersion, in
	// version order. Reading an unknown stream returns ErrStreamNotFound.
	Read(ctx context.Context, streamID string, fromVersion int) ([]*Event, error)

	// Streams returns the IDs of all streams in the store.
	Streams(ctx context.Context) ([]string, error)

	// Close releases store resources.
	Close() error
}

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	streams map[string][]*Event
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{streams: make(map[string][]*Event)}
}

// Append adds events to a stream under optimistic concurrency control.
func (s *MemoryStore) Append(ctx context.Context, streamID string, expectedVersion int, events []*Event) (int, error) {
	if len(events) == 0 {
		return expectedVersion, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stream := s.streams[streamID]
	current := len(stream) - 1
	if expectedVersion != current {
		return current, ErrVersionConflict
	}

	version := current
	for _, e := range events {
		version++
		copied := *e
		copied.StreamID = streamID
		copied.Version = version
		stream = append(stream, &copied)
	}
	s.streams[streamID] = stream
	return version, nil
}

// Read returns a stream's events from the given version onward.
func (s *MemoryStore) Read(ctx context.Context, streamID string, fromVersion int) ([]*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream, ok := s.streams[streamID]
	if !ok {
		return nil, ErrStreamNotFound
	}
	var out []*Event
	for _, e := range stream {
		if e.Version >= fromVersion {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Streams returns all stream IDs, sorted.
func (s *MemoryStore) Streams(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.streams))
	for id := range s.streams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
