package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "log.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	ev1 := Event{Timestamp: time.Unix(1, 0).UTC(), Surface: "cli", Instruction: "create a page called Notes", Intent: "page", Response: "done"}
	ev2 := Event{Timestamp: time.Unix(2, 0).UTC(), Surface: "telegram", ChatID: 42, Instruction: "add a heading", Intent: "block", ToolCalls: []string{"add_notion_heading_block"}}
	if err := rec.AppendInteraction(ev1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendInteraction(ev2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	events, err := rec.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2, got %d", len(events))
	}
	if events[0].Surface != "cli" || events[1].ChatID != 42 {
		t.Fatalf("order mismatch: %+v", events)
	}
	if events[1].ToolCalls[0] != "add_notion_heading_block" {
		t.Fatalf("tool calls not preserved: %+v", events[1])
	}

	// ensure file exists and non-empty
	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}
