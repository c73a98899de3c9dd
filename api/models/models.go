// Package models holds the HTTP wire types of the agent server.
package models

import "encoding/json"

// ChatRequest asks the agent a question, typically about an oc command.
type ChatRequest struct {
	Message string      `json:"message"`
	Options ChatOptions `json:"options"`
}

type ChatOptions struct {
	Model       string  `json:"model,omitempty"`
	MaxTokens   int64   `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// ChatResponse carries the agent's final answer plus the tool calls it made
// to get there.
type ChatResponse struct {
	Result    string       `json:"result"`
	ToolCalls []ToolCall   `json:"tool_calls,omitempty"`
	Metadata  ChatMetadata `json:"metadata"`
}

type ToolCall struct {
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments"`
}

type ChatMetadata struct {
	Duration   string `json:"duration"`
	Model      string `json:"model,omitempty"`
	TokensUsed int64  `json:"tokens_used"`
	Steps      int    `json:"steps"`
}

// AnalyzeRequest feeds a raw oc command straight to the analysis engine,
// bypassing the LLM.
type AnalyzeRequest struct {
	Command string `json:"command"`
}
