package chat

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// Params carries the per-call completion parameters, including the tool
// schema the model is offered and the tool-choice mode.
type Params struct {
	Temperature float64
	MaxTokens   int

	// Tool / function calling schema (LangChainGo).
	Tools      []llms.Tool // llms.WithTools(...)
	ToolChoice any         // "auto" | llms.ToolChoice{...} to force a named tool
}

// Adapter abstracts chat completion providers. Reply returns the assistant
// text plus any tool calls the model emitted; exactly one of the two is
// expected to be meaningful per response.
type Adapter interface {
	Reply(ctx context.Context, history []Message, params *Params) (text string, toolCalls []ToolCall, err error)
}
