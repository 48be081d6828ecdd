package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	ToolCalls        []ToolCall
}

// Tool describes a function the model may call, with a JSON-schema
// parameter description.
type Tool struct {
	Type     string
	Function Function
}

type Function struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// ToolCall is a function invocation requested by the model.
type ToolCall struct {
	ID       string
	Type     string
	Function FunctionCall
}

type FunctionCall struct {
	Name      string
	Arguments map[string]interface{}
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}

// ClientWithTools is implemented by providers with native function
// calling. Providers without it are driven through a JSON-answer prompt
// by the agents instead.
type ClientWithTools interface {
	Client
	GenerateWithTools(ctx context.Context, messages []Message, tools []Tool) (Response, error)
}
