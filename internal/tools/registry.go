package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Handler executes one tool against parsed arguments.
type Handler func(ctx context.Context, args Args) Result

// Args is the parsed argument payload of a tool invocation.
type Args map[string]any

// String returns the trimmed string value for key, or "" when absent or
// of another type.
func (a Args) String(key string) string {
	v, _ := a[key].(string)
	return strings.TrimSpace(v)
}

// Tool declares a callable tool: name, model-facing description, JSON
// schema for its parameters, and the handler. Run is nil for
// declaration-only tools such as the format tool.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Run         Handler
}

func (t Tool) definition() llms.Tool {
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		},
	}
}

// Registry maps tool names to handlers. It is populated once at startup
// and read-only afterwards, so lookups need no locking.
type Registry struct {
	order []string
	tools map[string]Tool
}

func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(ts))}
	for _, t := range ts {
		r.Register(t)
	}
	return r
}

func (r *Registry) Register(t Tool) {
	if _, ok := r.tools[t.Name]; !ok {
		r.order = append(r.order, t.Name)
	}
	r.tools[t.Name] = t
}

// Definitions returns every registered tool's schema in registration
// order, for the model call that may pick any tool.
func (r *Registry) Definitions() []llms.Tool {
	out := make([]llms.Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].definition())
	}
	return out
}

// Definition returns a single tool's schema, for the forced second call.
func (r *Registry) Definition(name string) (llms.Tool, bool) {
	t, ok := r.tools[name]
	if !ok {
		return llms.Tool{}, false
	}
	return t.definition(), true
}

// Execute parses the raw argument blob and dispatches by exact name.
// Every failure mode comes back as a Result, never as an error: the model
// hallucinating a tool name or emitting broken JSON must not fault the
// request.
func (r *Registry) Execute(ctx context.Context, name, rawArgs string) Result {
	tool, ok := r.tools[name]
	if !ok || tool.Run == nil {
		return Failuref("unknown function: %s", name)
	}

	args := Args{}
	if strings.TrimSpace(rawArgs) != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return Failuref("invalid arguments format")
		}
	}
	return tool.Run(ctx, args)
}

// FormatToolName is the terminal tool the model is forced to call after a
// data tool has run; its arguments are the final structured answer.
const FormatToolName = "format_user_response"

// FormatTool declares the structured-output tool. It has no handler: its
// argument payload is parsed by the orchestrator and ends the loop.
func FormatTool() Tool {
	return Tool{
		Name:        FormatToolName,
		Description: "ALWAYS use this tool to format the final answer for the user. This is the mandatory last step of every conversation.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"main_answer": map[string]any{
					"type":        "string",
					"description": "The main, friendly and helpful answer to the user's question. Use Markdown and emoji for formatting.",
				},
				"suggested_prompts": map[string]any{
					"type":        "array",
					"description": "Exactly 3 short follow-up questions or actions relevant to the current context. Each under 50 characters.",
					"items":       map[string]any{"type": "string"},
					"minItems":    3,
					"maxItems":    3,
				},
			},
			"required": []string{"main_answer", "suggested_prompts"},
		},
	}
}
