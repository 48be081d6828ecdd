package agents

import (
	"context"
	"fmt"
	"log"
	"time"

	apperr "notion-agent/internal/errors"
	"notion-agent/internal/llm"
	"notion-agent/internal/notion"
	"notion-agent/internal/storage"
)

// DigestWorkflow summarizes one day of recorded interactions into a
// Notion page under the configured parent.
type DigestWorkflow struct {
	llmClient    llm.Client
	notionClient NotionAPI
	recorder     storage.Recorder
	parentPageID string
}

func NewDigestWorkflow(llmClient llm.Client, notionClient NotionAPI, recorder storage.Recorder, parentPageID string) *DigestWorkflow {
	return &DigestWorkflow{
		llmClient:    llmClient,
		notionClient: notionClient,
		recorder:     recorder,
		parentPageID: parentPageID,
	}
}

// GenerateDailyDigest writes the digest page for the given day and
// returns its ID. Days without recorded activity produce no page.
func (w *DigestWorkflow) GenerateDailyDigest(ctx context.Context, day time.Time) (string, error) {
	if w.recorder == nil {
		return "", apperr.NewInput("interaction log is not configured")
	}
	if w.parentPageID == "" {
		return "", apperr.NewInput("parent page id is required for digests (set NOTION_PAGE_ID)")
	}

	events, err := w.recorder.LoadInteractions()
	if err != nil {
		return "", fmt.Errorf("failed to load interactions: %w", err)
	}

	dayEvents := FilterEventsByDay(events, day)
	if len(dayEvents) == 0 {
		log.Printf("📅 No interactions recorded on %s, skipping digest", day.Format("2006-01-02"))
		return "", nil
	}

	summary, err := w.summarize(ctx, dayEvents)
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Daily digest %s", day.Format("2006-01-02"))
	page, err := w.notionClient.CreatePage(ctx, title, w.parentPageID)
	if err != nil {
		return "", err
	}

	heading, err := notion.NewHeading(notion.BlockHeading2, "Activity summary", nil)
	if err != nil {
		return "", err
	}
	body, err := notion.NewParagraph(summary, nil)
	if err != nil {
		return "", err
	}
	if err := w.notionClient.AppendBlocks(ctx, page.ID, []notion.Block{heading, body}); err != nil {
		return "", err
	}

	log.Printf("✅ Daily digest created: %s (%d interactions)", page.ID, len(dayEvents))
	return page.ID, nil
}

func (w *DigestWorkflow) summarize(ctx context.Context, events []storage.Event) (string, error) {
	content := fmt.Sprintf("Interactions on %s (%d total):\n\n", events[0].Timestamp.Format("2006-01-02"), len(events))
	for i, ev := range events {
		outcome := ev.Response
		if ev.Error != "" {
			outcome = "failed: " + ev.Error
		}
		content += fmt.Sprintf("%d. [%s/%s] %q -> %s\n", i+1, ev.Surface, ev.Intent, ev.Instruction, outcome)
	}

	resp, err := w.llmClient.Generate(ctx, []llm.Message{
		{Role: "system", Content: digestPrompt},
		{Role: "user", Content: content},
	})
	if err != nil {
		return "", apperr.WrapUpstream(err, "digest generation failed")
	}
	return resp.Content, nil
}

// FilterEventsByDay keeps events whose timestamp falls on the given UTC
// day and which carry an actual instruction.
func FilterEventsByDay(events []storage.Event, day time.Time) []storage.Event {
	wantDate := day.UTC().Format("2006-01-02")
	var out []storage.Event
	for _, ev := range events {
		if ev.Instruction == "" {
			continue
		}
		if ev.Timestamp.UTC().Format("2006-01-02") == wantDate {
			out = append(out, ev)
		}
	}
	return out
}
