package agents

import (
	"context"
	"testing"

	apperr "notion-agent/internal/errors"
	"notion-agent/internal/llm"
	"notion-agent/internal/storage"
)

type memRecorder struct{ events []storage.Event }

func (m *memRecorder) AppendInteraction(ev storage.Event) error {
	m.events = append(m.events, ev)
	return nil
}

func (m *memRecorder) LoadInteractions() ([]storage.Event, error) {
	return append([]storage.Event{}, m.events...), nil
}

func newTestCoordinator(routerClient llm.Client, api *fakeNotion, rec storage.Recorder) *Coordinator {
	pageClient := &fakeToolClient{resp: llm.Response{ToolCalls: []llm.ToolCall{
		toolCall("create_notion_page", map[string]interface{}{"page_title": "Notes"}),
	}}}
	blockClient := &fakeToolClient{resp: llm.Response{ToolCalls: []llm.ToolCall{
		toolCall("add_notion_paragraph_block", map[string]interface{}{"content": "hi"}),
	}}}
	return NewCoordinator(
		NewRouter(routerClient),
		NewPageAgent(pageClient, api, "parent-1"),
		NewBlockAgent(blockClient, api),
		"default-page",
		rec,
	)
}

func TestCoordinatorDispatchesPageIntent(t *testing.T) {
	routerClient := &fakeToolClient{resp: llm.Response{ToolCalls: []llm.ToolCall{toolCall("transfer_to_notion_page_agent", nil)}}}
	api := &fakeNotion{}
	rec := &memRecorder{}

	result, err := newTestCoordinator(routerClient, api, rec).Process(context.Background(), "cli", 0, "create a notion page called Notes")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(api.createdTitles) != 1 {
		t.Fatalf("page not created")
	}
	if result.PageID != "new-page" {
		t.Fatalf("result: %+v", result)
	}

	if len(rec.events) != 1 {
		t.Fatalf("want 1 recorded event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Intent != "page" || ev.Surface != "cli" || ev.Error != "" {
		t.Fatalf("recorded event: %+v", ev)
	}
}

func TestCoordinatorDispatchesBlockIntentToDefaultPage(t *testing.T) {
	routerClient := &fakeToolClient{resp: llm.Response{ToolCalls: []llm.ToolCall{toolCall("transfer_to_notion_block_agent", nil)}}}
	api := &fakeNotion{}

	_, err := newTestCoordinator(routerClient, api, nil).Process(context.Background(), "cli", 0, "add a paragraph in my notion page")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(api.appendedPages) != 1 || api.appendedPages[0] != "default-page" {
		t.Fatalf("default page not used: %v", api.appendedPages)
	}
}

func TestCoordinatorRoutingErrorSkipsHandlers(t *testing.T) {
	routerClient := &fakeToolClient{resp: llm.Response{Content: "no idea"}}
	api := &fakeNotion{}
	rec := &memRecorder{}

	_, err := newTestCoordinator(routerClient, api, rec).Process(context.Background(), "telegram", 7, "sing a song")
	if !apperr.IsRouting(err) {
		t.Fatalf("want routing error, got %v", err)
	}
	if len(api.createdTitles) != 0 || len(api.appended) != 0 {
		t.Fatalf("handler invoked despite routing error")
	}

	if len(rec.events) != 1 || rec.events[0].Error == "" {
		t.Fatalf("routing failure not recorded: %+v", rec.events)
	}
	if rec.events[0].ChatID != 7 {
		t.Fatalf("chat id lost: %+v", rec.events[0])
	}
}
