package tools

import (
	"encoding/json"
	"fmt"
)

// Result is the uniform envelope every tool returns: a payload map on
// success, a human-readable message on failure. The orchestration loop
// treats every handler result identically.
type Result struct {
	Success bool
	Error   string
	Data    map[string]any
}

func Success(data map[string]any) Result {
	return Result{Success: true, Data: data}
}

func Failuref(format string, args ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// MarshalJSON flattens the payload keys next to the success flag, so a
// tool message reads {"success":true,"employee_id":...,"data":[...]}.
func (r Result) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Data)+2)
	for k, v := range r.Data {
		out[k] = v
	}
	out["success"] = r.Success
	if r.Error != "" {
		out["error"] = r.Error
	}
	return json.Marshal(out)
}

// Encode renders the envelope as the JSON string fed back to the model.
func (r Result) Encode() string {
	b, err := json.Marshal(r)
	if err != nil {
		// Only reachable if a handler stuffs an unmarshalable value into
		// the payload; keep the conversation alive with a plain failure.
		return fmt.Sprintf(`{"success":false,"error":%q}`, err.Error())
	}
	return string(b)
}
