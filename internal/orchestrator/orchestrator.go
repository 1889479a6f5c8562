package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/phuquy-28/onboarding-chatbot/internal/chat"
	"github.com/phuquy-28/onboarding-chatbot/internal/tools"

	"github.com/tmc/langchaingo/llms"
)

// ErrNoMessages is returned when a request arrives with an empty
// conversation; the boundary maps it to a 400.
var ErrNoMessages = errors.New("no messages provided")

// FormattedAnswer is the terminal output shape: the answer plus three
// short suggested follow-ups. Produced by parsing the format tool's
// argument payload.
type FormattedAnswer struct {
	MainAnswer       string   `json:"main_answer"`
	SuggestedPrompts []string `json:"suggested_prompts"`
}

// Reply is what an orchestration run hands back to the transport: the
// final answer, the suggestions, and the full conversation so the client
// can carry context into its next request.
type Reply struct {
	Answer           string
	SuggestedPrompts []string
	Messages         []chat.Message
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 800
	fallbackGreeting   = "Hello! I'm your onboarding assistant. How can I help you today?"
)

// Orchestrator drives the two-phase tool-calling loop: one model call
// with the full tool set, an optional tool execution, then a second call
// forced onto the format tool so every path ends in one schema.
type Orchestrator struct {
	adapter     chat.Adapter
	registry    *tools.Registry
	temperature float64
	maxTokens   int
}

func New(adapter chat.Adapter, registry *tools.Registry) *Orchestrator {
	return &Orchestrator{
		adapter:     adapter,
		registry:    registry,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
	}
}

// Respond runs one conversational turn to completion. The returned error
// is only ever an upstream model failure (or an empty conversation);
// every tool-level problem is folded back into the conversation instead.
func (o *Orchestrator) Respond(ctx context.Context, messages []chat.Message) (*Reply, error) {
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}
	messages = prime(messages)

	text, calls, err := o.adapter.Reply(ctx, messages, &chat.Params{
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
		Tools:       o.registry.Definitions(),
		ToolChoice:  "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	if len(calls) == 0 {
		if strings.TrimSpace(text) == "" {
			// Model produced neither content nor a tool call.
			return o.finish(messages, FormattedAnswer{
				MainAnswer:       fallbackGreeting,
				SuggestedPrompts: []string{},
			}), nil
		}
		// Direct textual answer, no tool involved.
		return o.finish(messages, FormattedAnswer{
			MainAnswer:       text,
			SuggestedPrompts: []string{},
		}), nil
	}

	// Exactly one tool call is resolved per model response.
	call := calls[0]

	if call.Name == tools.FormatToolName {
		return o.finish(messages, parseFormatted(call.Arguments, text)), nil
	}

	// Data tool: execute, fold the call and its result into the
	// conversation, then re-call the model with tool choice forced to the
	// format tool. A lookup miss stays inside the tool result so the
	// model can phrase a graceful apology.
	result := o.registry.Execute(ctx, call.Name, call.Arguments)
	if !result.Success {
		log.Printf("[orchestrator] tool %s failed: %s", call.Name, result.Error)
	}
	messages = append(messages,
		chat.Message{Role: chat.RoleAssistant, ToolCalls: []chat.ToolCall{call}},
		chat.Message{Role: chat.RoleTool, ToolCallID: call.ID, ToolName: call.Name, Content: result.Encode()},
	)

	formatDef, ok := o.registry.Definition(tools.FormatToolName)
	if !ok {
		return nil, fmt.Errorf("format tool missing from registry")
	}
	text, calls, err = o.adapter.Reply(ctx, messages, &chat.Params{
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
		Tools:       []llms.Tool{formatDef},
		ToolChoice: llms.ToolChoice{
			Type:     "function",
			Function: &llms.FunctionReference{Name: tools.FormatToolName},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	if len(calls) > 0 && calls[0].Name == tools.FormatToolName {
		return o.finish(messages, parseFormatted(calls[0].Arguments, text)), nil
	}
	// Forced call came back without the tool; fall back to raw content.
	return o.finish(messages, FormattedAnswer{
		MainAnswer:       text,
		SuggestedPrompts: []string{},
	}), nil
}

// finish appends the terminal assistant message and shapes the reply.
// The format tool's output is never re-entered into another model call.
func (o *Orchestrator) finish(messages []chat.Message, answer FormattedAnswer) *Reply {
	messages = append(messages, chat.Message{
		Role:    chat.RoleAssistant,
		Content: answer.MainAnswer,
	})
	return &Reply{
		Answer:           answer.MainAnswer,
		SuggestedPrompts: answer.SuggestedPrompts,
		Messages:         messages,
	}
}

// parseFormatted decodes the format tool's argument payload. On any parse
// failure the raw message content is returned with an empty suggestion
// list rather than failing the request.
func parseFormatted(rawArgs, rawContent string) FormattedAnswer {
	var answer FormattedAnswer
	if err := json.Unmarshal([]byte(rawArgs), &answer); err != nil || strings.TrimSpace(answer.MainAnswer) == "" {
		return FormattedAnswer{MainAnswer: rawContent, SuggestedPrompts: []string{}}
	}
	if answer.SuggestedPrompts == nil {
		answer.SuggestedPrompts = []string{}
	}
	if len(answer.SuggestedPrompts) > 3 {
		answer.SuggestedPrompts = answer.SuggestedPrompts[:3]
	}
	return answer
}

// prime ensures the conversation opens with the system instruction,
// inserting it exactly once.
func prime(messages []chat.Message) []chat.Message {
	if messages[0].Role == chat.RoleSystem {
		return messages
	}
	out := make([]chat.Message, 0, len(messages)+1)
	out = append(out, chat.Message{Role: chat.RoleSystem, Content: SystemPrompt()})
	return append(out, messages...)
}
