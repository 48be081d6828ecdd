package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"notion-agent/internal/notion"
)

// CreatePageParams are the arguments of the create_page tool.
type CreatePageParams struct {
	Title        string `json:"title" mcp:"the title of the page to create"`
	ParentPageID string `json:"parent_page_id,omitempty" mcp:"parent page ID, defaults to NOTION_PAGE_ID"`
}

// AppendBlockParams are the arguments of the append_block tool. The
// fields required depend on the block type; validation happens before
// any Notion call.
type AppendBlockParams struct {
	PageID    string `json:"page_id,omitempty" mcp:"target page ID, defaults to NOTION_PAGE_ID"`
	BlockType string `json:"block_type" mcp:"one of heading_1, heading_2, heading_3, paragraph, code, embed, video, image, bookmark, numbered_list_item, bulleted_list_item, to_do"`
	Content   string `json:"content,omitempty" mcp:"text content (headings, paragraphs, code)"`
	URL       string `json:"url,omitempty" mcp:"URL for embed, video, image and bookmark blocks"`
	Items     string `json:"items,omitempty" mcp:"comma-separated items for list and to-do blocks"`
	Checked   bool   `json:"checked,omitempty" mcp:"whether to-do items start checked"`
	Language  string `json:"language,omitempty" mcp:"programming language for code blocks"`
	Caption   string `json:"caption,omitempty" mcp:"caption for code and bookmark blocks"`
}

// SearchPagesParams are the arguments of the search_pages tool.
type SearchPagesParams struct {
	Query string `json:"query" mcp:"search query to find pages by title"`
	Limit int    `json:"limit,omitempty" mcp:"maximum number of results (default: 10, max: 20)"`
}

// NotionMCPServer exposes the page and block operations as MCP tools.
type NotionMCPServer struct {
	notionClient  *notion.Client
	defaultPageID string
}

func NewNotionMCPServer(notionClient *notion.Client, defaultPageID string) *NotionMCPServer {
	return &NotionMCPServer{
		notionClient:  notionClient,
		defaultPageID: defaultPageID,
	}
}

// CreatePage creates a new Notion page through MCP.
func (s *NotionMCPServer) CreatePage(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[CreatePageParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments

	parentID := args.ParentPageID
	if parentID == "" {
		parentID = s.defaultPageID
	}

	log.Printf("📝 MCP Server: Creating Notion page %q in parent %s", args.Title, parentID)

	page, err := s.notionClient.CreatePage(ctx, args.Title, parentID)
	if err != nil {
		return toolError(fmt.Sprintf("Failed to create page: %v", err)), nil
	}

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("✅ Successfully created page %q in Notion", page.Title)},
		},
		Meta: map[string]interface{}{
			"page_id": page.ID,
			"url":     page.URL,
			"title":   page.Title,
			"success": true,
		},
	}, nil
}

// AppendBlock builds one block (or several, for list types) and appends
// it to the target page.
func (s *NotionMCPServer) AppendBlock(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[AppendBlockParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments

	pageID := args.PageID
	if pageID == "" {
		pageID = s.defaultPageID
	}

	blocks, err := buildBlocks(args)
	if err != nil {
		return toolError(fmt.Sprintf("Invalid block parameters: %v", err)), nil
	}

	log.Printf("🧱 MCP Server: Appending %d %s block(s) to page %s", len(blocks), args.BlockType, pageID)

	if err := s.notionClient.AppendBlocks(ctx, pageID, blocks); err != nil {
		return toolError(fmt.Sprintf("Failed to append blocks: %v", err)), nil
	}

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("✅ Added %d %s block(s) to page %s", len(blocks), args.BlockType, pageID)},
		},
		Meta: map[string]interface{}{
			"page_id":     pageID,
			"block_type":  args.BlockType,
			"block_count": len(blocks),
			"success":     true,
		},
	}, nil
}

// SearchPages finds pages and returns their ID, title and URL.
func (s *NotionMCPServer) SearchPages(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[SearchPagesParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments

	limit := args.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 20 {
		limit = 20
	}

	log.Printf("🔍 MCP Server: Searching Notion for %q", args.Query)

	pages, err := s.notionClient.Search(ctx, args.Query, limit)
	if err != nil {
		return toolError(fmt.Sprintf("Search failed: %v", err)), nil
	}

	var resultMessage string
	if len(pages) == 0 {
		resultMessage = fmt.Sprintf("🔍 No pages found for query %q", args.Query)
	} else {
		resultMessage = fmt.Sprintf("🔍 Found %d pages for query %q:", len(pages), args.Query)
		for i, page := range pages {
			resultMessage += fmt.Sprintf("\n%d. %s (ID: %s)", i+1, page.Title, page.ID)
		}
	}

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: resultMessage},
		},
		Meta: map[string]interface{}{
			"query":       args.Query,
			"results":     pages,
			"total_found": len(pages),
			"success":     true,
		},
	}, nil
}

func buildBlocks(args AppendBlockParams) ([]notion.Block, error) {
	typ := notion.BlockType(args.BlockType)
	switch typ {
	case notion.BlockHeading1, notion.BlockHeading2, notion.BlockHeading3:
		b, err := notion.NewHeading(typ, args.Content, nil)
		if err != nil {
			return nil, err
		}
		return []notion.Block{b}, nil
	case notion.BlockParagraph:
		b, err := notion.NewParagraph(args.Content, nil)
		if err != nil {
			return nil, err
		}
		return []notion.Block{b}, nil
	case notion.BlockCode:
		var caption []string
		if args.Caption != "" {
			caption = []string{args.Caption}
		}
		b, err := notion.NewCode(args.Content, args.Language, caption)
		if err != nil {
			return nil, err
		}
		return []notion.Block{b}, nil
	case notion.BlockEmbed:
		b, err := notion.NewEmbed(args.URL)
		if err != nil {
			return nil, err
		}
		return []notion.Block{b}, nil
	case notion.BlockVideo:
		b, err := notion.NewVideo(args.URL)
		if err != nil {
			return nil, err
		}
		return []notion.Block{b}, nil
	case notion.BlockImage:
		b, err := notion.NewImage(args.URL)
		if err != nil {
			return nil, err
		}
		return []notion.Block{b}, nil
	case notion.BlockBookmark:
		b, err := notion.NewBookmark(args.URL, args.Caption)
		if err != nil {
			return nil, err
		}
		return []notion.Block{b}, nil
	case notion.BlockNumberedListItem:
		return notion.NumberedList(args.Items)
	case notion.BlockBulletedListItem:
		return notion.BulletedList(args.Items)
	case notion.BlockToDo:
		return notion.ToDoList(args.Items, args.Checked)
	default:
		return nil, fmt.Errorf("unsupported block type: %q", args.BlockType)
	}
}

func toolError(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: "❌ " + text},
		},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	notionToken := os.Getenv("NOTION_TOKEN")
	if notionToken == "" {
		log.Fatal("❌ NOTION_TOKEN environment variable is required")
	}

	notionClient, err := notion.NewClient(notionToken, os.Getenv("NOTION_ENDPOINT"), 30*time.Second)
	if err != nil {
		log.Fatalf("❌ Failed to create Notion client: %v", err)
	}

	log.Printf("🚀 Starting Notion MCP Server")

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "notion-agent-mcp",
		Version: "1.0.0",
	}, nil)

	notionServer := NewNotionMCPServer(notionClient, os.Getenv("NOTION_PAGE_ID"))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_page",
		Description: "Creates a new page in Notion with the specified title",
	}, notionServer.CreatePage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "append_block",
		Description: "Appends a block (heading, paragraph, code, embed, video, image, bookmark, list, to-do) to a Notion page",
	}, notionServer.AppendBlock)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_pages",
		Description: "Searches for pages in the Notion workspace and returns their ID, title and URL",
	}, notionServer.SearchPages)

	log.Printf("📋 Registered %d tools: create_page, append_block, search_pages", 3)
	log.Printf("🔗 Starting server on stdin/stdout...")

	transport := mcp.NewStdioTransport()
	if err := server.Run(context.Background(), transport); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
