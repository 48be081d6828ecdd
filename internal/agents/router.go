package agents

import (
	"context"
	"log"

	apperr "notion-agent/internal/errors"
	"notion-agent/internal/llm"
)

// Intent is the classified purpose of a user instruction.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentPage
	IntentBlock
)

func (i Intent) String() string {
	switch i {
	case IntentPage:
		return "page"
	case IntentBlock:
		return "block"
	default:
		return "unknown"
	}
}

const (
	toolTransferToPageAgent  = "transfer_to_notion_page_agent"
	toolTransferToBlockAgent = "transfer_to_notion_block_agent"
)

// Router classifies instructions into a page or block intent. The
// classification itself is delegated to the LLM via the transfer tools;
// the router never guesses on an unrecognized answer.
type Router struct {
	llmClient llm.Client
}

func NewRouter(llmClient llm.Client) *Router {
	return &Router{llmClient: llmClient}
}

// Classify is pure and idempotent: same instruction, same messages, no
// state carried between calls.
func (r *Router) Classify(ctx context.Context, instruction string) (Intent, error) {
	if instruction == "" {
		return IntentUnknown, apperr.NewInput("instruction must not be empty")
	}

	messages := []llm.Message{
		{Role: "system", Content: routerPrompt},
		{Role: "user", Content: instruction},
	}

	resp, err := generateToolCalls(ctx, r.llmClient, messages, llm.RouterTools())
	if err != nil {
		return IntentUnknown, apperr.WrapUpstream(err, "intent classification failed")
	}

	for _, tc := range resp.ToolCalls {
		switch tc.Function.Name {
		case toolTransferToPageAgent:
			log.Printf("🔀 Routed to page agent: %q", instruction)
			return IntentPage, nil
		case toolTransferToBlockAgent:
			log.Printf("🔀 Routed to block agent: %q", instruction)
			return IntentBlock, nil
		}
	}

	return IntentUnknown, apperr.NewRouting("unrecognized intent: %q", instruction)
}
