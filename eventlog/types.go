// Package eventlog renders recorded lockup lifecycle streams as flat audit
// logs in CSV and JSONL formats, and parses them back. Each entry carries
// the stream (case) ID, the activity name, the actor and the token amount
// involved, so external process-analysis tooling can consume the history.
package eventlog

import (
	"encoding/json"
	"time"

	"github.com/pflow-xyz/go-vesting/eventsource"
)

// Entry is a single flattened audit record.
type Entry struct {
	CaseID    string    `json:"case_id"`
	Activity  string    `json:"activity"`
	Timestamp time.Time `json:"timestamp"`
	Resource  string    `json:"resource,omitempty"`
	Amount    string    `json:"amount,omitempty"`
}

// eventPayload is the subset of lifecycle event payloads the audit log
// surfaces. Unknown fields are ignored.
type eventPayload struct {
	Actor          string `json:"actor"`
	TotalAmount    string `json:"total_amount"`
	Amount         string `json:"amount"`
	UnvestedAmount string `json:"unvested_amount"`
}

// FromStream flattens recorded events into audit entries, in stream order.
func FromStream(events []*eventsource.Event) []Entry {
	entries := make([]Entry, 0, len(events))
	for _, e := range events {
		entry := Entry{
			CaseID:    e.StreamID,
			Activity:  e.Type,
			Timestamp: e.Timestamp,
		}
		if len(e.Data) > 0 {
			var p eventPayload
			if err := json.Unmarshal(e.Data, &p); err == nil {
				entry.Resource = p.Actor
				entry.Amount = p.Amount
				if entry.Amount == "" {
					entry.Amount = p.TotalAmount
				}
				if entry.Amount == "" {
					entry.Amount = p.UnvestedAmount
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
