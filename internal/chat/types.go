package chat

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// Message is one entry in a conversation. The same struct round-trips
// through the HTTP body, so the JSON tags are part of the wire contract.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// For assistant messages: the tool calls they made
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// For tool messages: the ID and name of the call being answered
	ToolCallID string `json:"tool_call_id,omitempty"`
	ToolName   string `json:"name,omitempty"`
}

// ToolCall mirrors llms.ToolCall but keeps callers decoupled from the
// provider library. Arguments is the raw JSON blob emitted by the model.
type ToolCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}
