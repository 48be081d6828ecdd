package agents

import (
	"context"
	"testing"
	"time"

	apperr "notion-agent/internal/errors"
	"notion-agent/internal/storage"
)

func ts(day string, hour int) time.Time {
	d, _ := time.Parse("2006-01-02", day)
	return d.Add(time.Duration(hour) * time.Hour)
}

func TestFilterEventsByDay(t *testing.T) {
	events := []storage.Event{
		{Timestamp: ts("2026-08-29", 23), Instruction: "yesterday"},
		{Timestamp: ts("2026-08-30", 0), Instruction: "first"},
		{Timestamp: ts("2026-08-30", 12), Instruction: ""},
		{Timestamp: ts("2026-08-30", 23), Instruction: "last"},
		{Timestamp: ts("2026-08-31", 1), Instruction: "tomorrow"},
	}

	got := FilterEventsByDay(events, ts("2026-08-30", 9))
	if len(got) != 2 {
		t.Fatalf("want 2 events, got %d", len(got))
	}
	if got[0].Instruction != "first" || got[1].Instruction != "last" {
		t.Fatalf("wrong events kept: %+v", got)
	}
}

func TestGenerateDailyDigestCreatesPage(t *testing.T) {
	rec := &memRecorder{events: []storage.Event{
		{Timestamp: ts("2026-08-30", 10), Surface: "cli", Intent: "page", Instruction: "create a page", Response: "done"},
		{Timestamp: ts("2026-08-30", 11), Surface: "telegram", Intent: "block", Instruction: "add a list", Error: "upstream failure"},
	}}
	api := &fakeNotion{}
	llmClient := &fakeTextClient{content: "Created one page and attempted one list."}

	w := NewDigestWorkflow(llmClient, api, rec, "parent-1")
	pageID, err := w.GenerateDailyDigest(context.Background(), ts("2026-08-30", 9))
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	if pageID != "new-page" {
		t.Fatalf("page id: %q", pageID)
	}

	if len(api.createdTitles) != 1 || api.createdTitles[0] != "Daily digest 2026-08-30" {
		t.Fatalf("digest title: %v", api.createdTitles)
	}
	if len(api.appended) != 1 || len(api.appended[0]) != 2 {
		t.Fatalf("want heading + summary blocks, got %v", api.appended)
	}
	if llmClient.calls != 1 {
		t.Fatalf("summarizer calls: %d", llmClient.calls)
	}
}

func TestGenerateDailyDigestSkipsEmptyDay(t *testing.T) {
	rec := &memRecorder{events: []storage.Event{
		{Timestamp: ts("2026-08-29", 10), Instruction: "old news"},
	}}
	api := &fakeNotion{}
	llmClient := &fakeTextClient{content: "unused"}

	pageID, err := NewDigestWorkflow(llmClient, api, rec, "parent-1").GenerateDailyDigest(context.Background(), ts("2026-08-30", 9))
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	if pageID != "" {
		t.Fatalf("expected no page, got %q", pageID)
	}
	if len(api.createdTitles) != 0 || llmClient.calls != 0 {
		t.Fatalf("work done on an empty day")
	}
}

func TestGenerateDailyDigestRequiresParentPage(t *testing.T) {
	w := NewDigestWorkflow(&fakeTextClient{}, &fakeNotion{}, &memRecorder{}, "")
	_, err := w.GenerateDailyDigest(context.Background(), ts("2026-08-30", 9))
	if !apperr.IsInput(err) {
		t.Fatalf("want input error, got %v", err)
	}
}
