package agents

import (
	"strings"
	"testing"

	"notion-agent/internal/llm"
)

func TestParseToolCallAnswer(t *testing.T) {
	tools := llm.RouterTools()

	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"bare json", `{"tool": "transfer_to_notion_page_agent", "arguments": {}}`, toolTransferToPageAgent},
		{"fenced json", "```json\n{\"tool\": \"transfer_to_notion_block_agent\", \"arguments\": {}}\n```", toolTransferToBlockAgent},
		{"fenced without language", "```\n{\"tool\": \"transfer_to_notion_page_agent\"}\n```", toolTransferToPageAgent},
		{"none sentinel", `{"tool": "none", "arguments": {}}`, ""},
		{"unknown tool", `{"tool": "delete_everything", "arguments": {}}`, ""},
		{"prose answer", "I would route this to the page agent.", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := parseToolCallAnswer(tc.content, tools)
			if tc.want == "" {
				if len(calls) != 0 {
					t.Fatalf("want no calls, got %+v", calls)
				}
				return
			}
			if len(calls) != 1 || calls[0].Function.Name != tc.want {
				t.Fatalf("want %s, got %+v", tc.want, calls)
			}
		})
	}
}

func TestParseToolCallAnswerNilArguments(t *testing.T) {
	calls := parseToolCallAnswer(`{"tool": "transfer_to_notion_page_agent"}`, llm.RouterTools())
	if len(calls) != 1 {
		t.Fatalf("calls: %+v", calls)
	}
	if calls[0].Function.Arguments == nil {
		t.Fatalf("arguments must never be nil")
	}
}

func TestToolFallbackPromptListsSchemas(t *testing.T) {
	prompt := toolFallbackPrompt(llm.PageTools())
	for _, want := range []string{"create_notion_page", "page_title"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
