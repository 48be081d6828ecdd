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

// blockBuilder turns validated tool arguments into block specifications.
// Validation happens here, before any network call.
type blockBuilder func(args map[string]interface{}) ([]notion.Block, error)

// BlockAgent handles block-intent instructions: the LLM picks one of the
// block tools, the dispatch table builds the blocks, and the client
// appends them to the target page.
type BlockAgent struct {
	llmClient    llm.Client
	notionClient NotionAPI
	builders     map[string]blockBuilder
}

func NewBlockAgent(llmClient llm.Client, notionClient NotionAPI) *BlockAgent {
	return &BlockAgent{
		llmClient:    llmClient,
		notionClient: notionClient,
		builders: map[string]blockBuilder{
			"add_notion_heading_block":       buildHeading,
			"add_notion_paragraph_block":     buildParagraph,
			"add_notion_code_block":          buildCode,
			"add_notion_embed_block":         buildEmbed,
			"add_notion_youtube_url_block":   buildVideo,
			"add_notion_image_block":         buildImage,
			"add_notion_bookmark_block":      buildBookmark,
			"add_notion_number_list_block":   buildNumberedList,
			"add_notion_bulleted_list_block": buildBulletedList,
			"add_notion_to_do_block":         buildToDo,
		},
	}
}

// Handle processes a block-intent instruction against the target page.
func (a *BlockAgent) Handle(ctx context.Context, pageID, instruction string) (Result, error) {
	if pageID == "" {
		return Result{}, apperr.NewInput("target page id is required (set NOTION_PAGE_ID)")
	}

	messages := []llm.Message{
		{Role: "system", Content: blockPrompt},
		{Role: "user", Content: instruction},
	}

	resp, err := generateToolCalls(ctx, a.llmClient, messages, llm.BlockTools())
	if err != nil {
		return Result{}, apperr.WrapUpstream(err, "block agent completion failed")
	}
	if len(resp.ToolCalls) == 0 {
		return Result{}, apperr.NewInput("no supported block type recognized in: %q", instruction)
	}

	var result Result
	var appended int
	for _, tc := range resp.ToolCalls {
		builder, ok := a.builders[tc.Function.Name]
		if !ok {
			return Result{}, apperr.NewInput("unsupported block tool: %s", tc.Function.Name)
		}

		blocks, err := builder(tc.Function.Arguments)
		if err != nil {
			return Result{}, err
		}

		log.Printf("🧱 Appending %d %s block(s) to page %s", len(blocks), blocks[0].Type(), pageID)
		if err := a.notionClient.AppendBlocks(ctx, pageID, blocks); err != nil {
			return Result{}, err
		}

		appended += len(blocks)
		result.ToolCalls = append(result.ToolCalls, tc.Function.Name)
	}

	result.PageID = pageID
	result.Message = fmt.Sprintf("Added %d block(s) to page %s", appended, pageID)
	return result, nil
}

func buildHeading(args map[string]interface{}) ([]notion.Block, error) {
	typ := notion.BlockType(stringArg(args, "heading_type"))
	if typ == "" {
		typ = notion.BlockHeading1
	}
	b, err := notion.NewHeading(typ, stringArg(args, "content"), &notion.TextOpts{
		LinkURL: stringArg(args, "hyperlink_url"),
		Color:   stringArg(args, "color"),
	})
	if err != nil {
		return nil, err
	}
	return []notion.Block{b}, nil
}

func buildParagraph(args map[string]interface{}) ([]notion.Block, error) {
	b, err := notion.NewParagraph(stringArg(args, "content"), &notion.TextOpts{
		LinkURL: stringArg(args, "hyperlink_url"),
		Color:   stringArg(args, "color"),
	})
	if err != nil {
		return nil, err
	}
	return []notion.Block{b}, nil
}

func buildCode(args map[string]interface{}) ([]notion.Block, error) {
	var caption []string
	if c := stringArg(args, "caption"); c != "" {
		caption = []string{c}
	}
	b, err := notion.NewCode(stringArg(args, "code"), stringArg(args, "language"), caption)
	if err != nil {
		return nil, err
	}
	return []notion.Block{b}, nil
}

func buildEmbed(args map[string]interface{}) ([]notion.Block, error) {
	b, err := notion.NewEmbed(stringArg(args, "url"))
	if err != nil {
		return nil, err
	}
	return []notion.Block{b}, nil
}

func buildVideo(args map[string]interface{}) ([]notion.Block, error) {
	b, err := notion.NewVideo(stringArg(args, "video_url"))
	if err != nil {
		return nil, err
	}
	return []notion.Block{b}, nil
}

func buildImage(args map[string]interface{}) ([]notion.Block, error) {
	b, err := notion.NewImage(stringArg(args, "image_url"))
	if err != nil {
		return nil, err
	}
	return []notion.Block{b}, nil
}

func buildBookmark(args map[string]interface{}) ([]notion.Block, error) {
	b, err := notion.NewBookmark(stringArg(args, "link"), stringArg(args, "caption"))
	if err != nil {
		return nil, err
	}
	return []notion.Block{b}, nil
}

func buildNumberedList(args map[string]interface{}) ([]notion.Block, error) {
	return notion.NumberedList(listItemsArg(args))
}

func buildBulletedList(args map[string]interface{}) ([]notion.Block, error) {
	return notion.BulletedList(listItemsArg(args))
}

func buildToDo(args map[string]interface{}) ([]notion.Block, error) {
	return notion.ToDoList(listItemsArg(args), boolArg(args, "checked"))
}

// listItemsArg tolerates models sending items as a JSON array instead of
// the requested comma-separated string.
func listItemsArg(args map[string]interface{}) string {
	if s := stringArg(args, "items"); s != "" {
		return s
	}
	if arr, ok := args["items"].([]interface{}); ok {
		var items []string
		for _, v := range arr {
			if s, ok := v.(string); ok {
				items = append(items, s)
			}
		}
		return strings.Join(items, ", ")
	}
	return ""
}
