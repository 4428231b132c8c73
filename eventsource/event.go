// Package eventsource provides append-only event streams with optimistic
// concurrency, used to record and replay lockup lifecycle history. Streams
// are identified by the lockup instance ID; events within a stream are
// strictly ordered by version.
package eventsource

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is a single recorded occurrence in a stream.
type Event struct {
	// ID is a globally unique event identifier.
	ID string `json:"id"`

	// StreamID identifies the stream the event belongs to.
	StreamID string `json:"stream_id"`

	// Type is the event type name, e.g. "LockupCreated".
	Type string `json:"type"`

	// Version is the event's position in its stream, assigned on append.
	// The first event in a stream has version 0.
	Version int `json:"version"`

	// Timestamp records when the event was created.
	Timestamp time.Time `json:"timestamp"`

	// Data is the JSON-encoded event payload.
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEvent creates an event with a fresh ID and the payload marshaled to
// JSON. Version is assigned by the store on append.
func NewEvent(streamID, eventType string, payload any) (*Event, error) {
	var data json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		data = b
	}
	return &Event{
		ID:        uuid.New().String(),
		StreamID:  streamID,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}, nil
}

// Unmarshal decodes the event payload into v.
func (e *Event) Unmarshal(v any) error {
	return json.Unmarshal(e.Data, v)
}
