package agents

import (
	"context"
	"fmt"
	"log"
	"strings"

	apperr "notion-agent/internal/errors"
	"notion-agent/internal/llm"
	"notion-agent/internal/notion"
)

// NotionAPI covers the Notion operations the agents perform. The REST
// client satisfies it; tests substitute fakes.
type NotionAPI interface {
	CreatePage(ctx context.Context, title, parentPageID string) (notion.Page, error)
	AppendBlocks(ctx context.Context, pageID string, blocks []notion.Block) error
}

const toolCreatePage = "create_notion_page"

// PageAgent handles page-level operations: it lets the LLM extract the
// title from the instruction, then issues the create call.
type PageAgent struct {
	llmClient    llm.Client
	notionClient NotionAPI
	parentPageID string
}

func NewPageAgent(llmClient llm.Client, notionClient NotionAPI, parentPageID string) *PageAgent {
	return &PageAgent{
		llmClient:    llmClient,
		notionClient: notionClient,
		parentPageID: parentPageID,
	}
}

// Handle processes a page-intent instruction and returns a user-facing
// result message.
func (a *PageAgent) Handle(ctx context.Context, instruction string) (Result, error) {
	messages := []llm.Message{
		{Role: "system", Content: pagePrompt},
		{Role: "user", Content: instruction},
	}

	resp, err := generateToolCalls(ctx, a.llmClient, messages, llm.PageTools())
	if err != nil {
		return Result{}, apperr.WrapUpstream(err, "page agent completion failed")
	}

	for _, tc := range resp.ToolCalls {
		if tc.Function.Name != toolCreatePage {
			continue
		}
		title := stringArg(tc.Function.Arguments, "page_title")
		if strings.TrimSpace(title) == "" {
			return Result{}, apperr.NewInput("page title is missing from the instruction")
		}

		log.Printf("📝 Creating Notion page %q under parent %s", title, a.parentPageID)
		page, err := a.notionClient.CreatePage(ctx, title, a.parentPageID)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Message:   fmt.Sprintf("Created page %q (ID: %s)", page.Title, page.ID),
			PageID:    page.ID,
			ToolCalls: []string{toolCreatePage},
		}, nil
	}

	return Result{}, apperr.NewInput("could not determine a page title from: %q", instruction)
}

// Result is the outcome of a handled instruction.
type Result struct {
	Message   string
	PageID    string
	ToolCalls []string
}
