package llm

import (
	"context"
	"fmt"

	"github.com/phuquy-28/onboarding-chatbot/internal/chat"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaAdapter exists for credential-free local development; the tool
// protocol is identical to the hosted providers.
type OllamaAdapter struct {
	client *ollama.LLM
	model  string
}

func NewOllamaAdapter(model, baseURL string) (chat.Adapter, error) {
	var opts []ollama.Option
	if baseURL != "" {
		opts = append(opts, ollama.WithServerURL(baseURL))
	}
	client, err := ollama.New(opts...)
	if err != nil {
		return nil, err
	}
	return &OllamaAdapter{client: client, model: model}, nil
}

func (a *OllamaAdapter) Reply(ctx context.Context, history []chat.Message, params *chat.Params) (string, []chat.ToolCall, error) {
	messages := toMessageContent(history)

	opts := make([]llms.CallOption, 0, 6)
	opts = append(opts, llms.WithModel(a.model))
	if params != nil {
		if params.Temperature != 0 {
			opts = append(opts, llms.WithTemperature(params.Temperature))
		}
		if params.MaxTokens != 0 {
			opts = append(opts, llms.WithMaxTokens(params.MaxTokens))
		}
		if len(params.Tools) > 0 {
			opts = append(opts, llms.WithTools(params.Tools))
		}
		if params.ToolChoice != nil {
			opts = append(opts, llms.WithToolChoice(params.ToolChoice))
		}
	}

	resp, err := a.client.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", nil, err
	}
	if len(resp.Choices) == 0 {
		return "", nil, fmt.Errorf("empty response from model")
	}

	var toolCalls []chat.ToolCall
	for _, tc := range resp.Choices[0].ToolCalls {
		toolCalls = append(toolCalls, chat.ToolCall{
			ID:        tc.ID,
			Name:      tc.FunctionCall.Name,
			Arguments: tc.FunctionCall.Arguments,
		})
	}

	return resp.Choices[0].Content, toolCalls, nil
}
