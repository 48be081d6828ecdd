package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"notion-agent/internal/llm"
)

// generateToolCalls runs one completion with the given tools. Providers
// with native function calling are used directly; for the rest the tool
// schemas are embedded into the prompt and a strict JSON answer is
// parsed back into tool calls.
func generateToolCalls(ctx context.Context, client llm.Client, messages []llm.Message, tools []llm.Tool) (llm.Response, error) {
	if tc, ok := client.(llm.ClientWithTools); ok {
		return tc.GenerateWithTools(ctx, messages, tools)
	}

	msgs := append([]llm.Message{}, messages...)
	msgs = append(msgs, llm.Message{Role: "system", Content: toolFallbackPrompt(tools)})

	resp, err := client.Generate(ctx, msgs)
	if err != nil {
		return llm.Response{}, err
	}
	resp.ToolCalls = parseToolCallAnswer(resp.Content, tools)
	return resp, nil
}

func toolFallbackPrompt(tools []llm.Tool) string {
	var sb strings.Builder
	sb.WriteString("You must answer with a single JSON object and nothing else. ")
	sb.WriteString(`Format: {"tool": "<name>", "arguments": {...}}. `)
	sb.WriteString(`If no listed tool fits, answer {"tool": "none", "arguments": {}}. Available tools:`)
	for _, t := range tools {
		params, _ := json.Marshal(t.Function.Parameters)
		sb.WriteString(fmt.Sprintf("\n- %s: %s Parameters schema: %s", t.Function.Name, t.Function.Description, params))
	}
	return sb.String()
}

// parseToolCallAnswer extracts a tool call from a JSON-formatted text
// answer. Unknown tool names and malformed answers yield no calls, which
// callers treat as "no function chosen".
func parseToolCallAnswer(content string, tools []llm.Tool) []llm.ToolCall {
	raw := stripCodeFences(content)

	var answer struct {
		Tool      string                 `json:"tool"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return nil
	}

	for _, t := range tools {
		if t.Function.Name == answer.Tool {
			args := answer.Arguments
			if args == nil {
				args = map[string]interface{}{}
			}
			return []llm.ToolCall{{
				Type:     "function",
				Function: llm.FunctionCall{Name: answer.Tool, Arguments: args},
			}}
		}
	}
	return nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// Argument extraction helpers shared by the agents. Tool arguments come
// back as loosely-typed JSON maps; missing keys read as zero values.

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func boolArg(args map[string]interface{}, key string) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return false
}
