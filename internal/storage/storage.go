package storage

import "time"

// Event represents a single processed instruction: what the user asked,
// how it was routed and what came back. Events are appended in
// chronological order and read back by the daily digest job.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Surface     string    `json:"surface"` // cli, telegram, mcp
	ChatID      int64     `json:"chat_id,omitempty"`
	Instruction string    `json:"instruction"`
	Intent      string    `json:"intent,omitempty"`
	ToolCalls   []string  `json:"tool_calls,omitempty"`
	Response    string    `json:"response,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// Recorder abstracts persistence of interaction events.
// Implementations can be file-based, database, etc.
// LoadInteractions should return events in chronological order.
// AppendInteraction should atomically append a new event.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
