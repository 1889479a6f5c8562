package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/phuquy-28/onboarding-chatbot/internal/chat"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIAdapter talks to OpenAI or an Azure OpenAI deployment through the
// same langchaingo client.
type OpenAIAdapter struct {
	client *openai.LLM
	model  string
}

func NewOpenAIAdapter(o Options) (chat.Adapter, error) {
	opts := []openai.Option{
		openai.WithModel(o.Model),
	}
	if o.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(o.BaseURL))
	}
	token := o.APIKey
	if token == "" {
		token = os.Getenv("OPENAI_API_KEY")
	}
	if token != "" {
		opts = append(opts, openai.WithToken(token))
	}
	if o.Provider == ProviderAzure {
		opts = append(opts, openai.WithAPIType(openai.APITypeAzure))
		if o.APIVersion != "" {
			opts = append(opts, openai.WithAPIVersion(o.APIVersion))
		}
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &OpenAIAdapter{client: client, model: o.Model}, nil
}

func (a *OpenAIAdapter) Reply(ctx context.Context, history []chat.Message, params *chat.Params) (string, []chat.ToolCall, error) {
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

// toMessageContent maps the wire-level conversation onto langchaingo parts,
// preserving assistant tool calls and tool results so the model sees what
// it invoked and what came back.
func toMessageContent(history []chat.Message) []llms.MessageContent {
	messages := make([]llms.MessageContent, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case chat.RoleUser:
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, m.Content))
		case chat.RoleSystem:
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, m.Content))
		case chat.RoleAssistant:
			var parts []llms.ContentPart
			if m.Content != "" {
				parts = append(parts, llms.TextPart(m.Content))
			}
			for _, tc := range m.ToolCalls {
				parts = append(parts, llms.ToolCall{
					ID:   tc.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				})
			}
			if len(parts) == 0 {
				parts = append(parts, llms.TextPart(" "))
			}
			messages = append(messages, llms.MessageContent{
				Role:  llms.ChatMessageTypeAI,
				Parts: parts,
			})
		case chat.RoleTool:
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: m.ToolCallID,
						Name:       m.ToolName,
						Content:    m.Content,
					},
				},
			})
		}
	}
	return messages
}
