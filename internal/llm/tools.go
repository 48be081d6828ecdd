package llm

// RouterTools returns the transfer functions the delegate step chooses
// between. Picking one is the routing decision; anything else is an
// unrecognized intent.
func RouterTools() []Tool {
	return []Tool{
		{
			Type: "function",
			Function: Function{
				Name:        "transfer_to_notion_page_agent",
				Description: "Hand the instruction to the page agent. Use only when the user explicitly asks to create a Notion page.",
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
					"required":   []string{},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "transfer_to_notion_block_agent",
				Description: "Hand the instruction to the block agent. Use when the user wants to add content (headings, paragraphs, code, media, lists, to-dos) to an existing Notion page, e.g. when the phrase 'in my notion page' appears.",
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
					"required":   []string{},
				},
			},
		},
	}
}

// PageTools returns the tools available to the page agent.
func PageTools() []Tool {
	return []Tool{
		{
			Type: "function",
			Function: Function{
				Name:        "create_notion_page",
				Description: "Creates a new page in Notion with the specified title under the configured parent page.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"page_title": map[string]interface{}{
							"type":        "string",
							"description": "The title of the new page, kept clear and concise",
						},
					},
					"required": []string{"page_title"},
				},
			},
		},
	}
}

// BlockTools returns the tools available to the block agent, one per
// supported Notion block kind.
func BlockTools() []Tool {
	return []Tool{
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_heading_block",
				Description: "Adds a heading block (heading_1, heading_2 or heading_3) to the Notion page, optionally as a hyperlink.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"heading_type": map[string]interface{}{
							"type":        "string",
							"description": "One of heading_1, heading_2, heading_3",
						},
						"content": map[string]interface{}{
							"type":        "string",
							"description": "The heading text",
						},
						"hyperlink_url": map[string]interface{}{
							"type":        "string",
							"description": "Optional URL to attach to the heading text",
						},
						"color": map[string]interface{}{
							"type":        "string",
							"description": "Notion color name, defaults to 'default'",
						},
					},
					"required": []string{"heading_type", "content"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_paragraph_block",
				Description: "Adds a paragraph block to the Notion page, optionally as a hyperlink.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"content": map[string]interface{}{
							"type":        "string",
							"description": "The paragraph text",
						},
						"hyperlink_url": map[string]interface{}{
							"type":        "string",
							"description": "Optional URL to attach to the paragraph text",
						},
						"color": map[string]interface{}{
							"type":        "string",
							"description": "Notion color name, defaults to 'default'",
						},
					},
					"required": []string{"content"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_code_block",
				Description: "Adds a code block with syntax highlighting to the Notion page.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"code": map[string]interface{}{
							"type":        "string",
							"description": "The code content",
						},
						"language": map[string]interface{}{
							"type":        "string",
							"description": "Programming language of the code, e.g. 'python', 'go'",
						},
						"caption": map[string]interface{}{
							"type":        "string",
							"description": "Optional caption shown under the code block",
						},
					},
					"required": []string{"code"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_embed_block",
				Description: "Adds an embed block with the given URL to the Notion page.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"url": map[string]interface{}{
							"type":        "string",
							"description": "The URL of the content to embed",
						},
					},
					"required": []string{"url"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_youtube_url_block",
				Description: "Adds a YouTube video block to the Notion page. Only youtube.com watch URLs are accepted.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"video_url": map[string]interface{}{
							"type":        "string",
							"description": "The YouTube video URL (must contain watch?v=)",
						},
					},
					"required": []string{"video_url"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_image_block",
				Description: "Adds an external image block to the Notion page.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"image_url": map[string]interface{}{
							"type":        "string",
							"description": "The URL of the image",
						},
					},
					"required": []string{"image_url"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_bookmark_block",
				Description: "Adds a bookmark block with a link and caption to the Notion page.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"link": map[string]interface{}{
							"type":        "string",
							"description": "The URL to bookmark",
						},
						"caption": map[string]interface{}{
							"type":        "string",
							"description": "Caption for the bookmark",
						},
					},
					"required": []string{"link"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_number_list_block",
				Description: "Adds a numbered list to the Notion page. Items must be a single comma-separated string, e.g. 'item 1, item 2, item 3'.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"items": map[string]interface{}{
							"type":        "string",
							"description": "Comma-separated list items",
						},
					},
					"required": []string{"items"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_bulleted_list_block",
				Description: "Adds a bulleted list to the Notion page. Items must be a single comma-separated string.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"items": map[string]interface{}{
							"type":        "string",
							"description": "Comma-separated list items",
						},
					},
					"required": []string{"items"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        "add_notion_to_do_block",
				Description: "Adds to-do items to the Notion page. Items must be a single comma-separated string.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"items": map[string]interface{}{
							"type":        "string",
							"description": "Comma-separated to-do items",
						},
						"checked": map[string]interface{}{
							"type":        "boolean",
							"description": "Whether the items start checked (default false)",
						},
					},
					"required": []string{"items"},
				},
			},
		},
	}
}
