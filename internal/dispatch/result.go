package dispatch

import "github.com/cockroachdb/errors"

// Errors returned by Dispatch; match them with errors.Is.
var (
	ErrClientUnavailable = errors.New("DoorDash client not initialized. Please set environment variables.")
	ErrUnknownTool       = errors.New("unknown tool")
	ErrBackend           = errors.New("DoorDash API error")
	ErrInvalidArguments  = errors.New("invalid arguments")
)

// Content is a single item of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the success envelope of a tool call.
type Result struct {
	Content []Content `json:"content"`
}

// NewTextResult returns a Result holding one text item.
func NewTextResult(text string) *Result {
	return &Result{Content: []Content{{Type: "text", Text: text}}}
}
