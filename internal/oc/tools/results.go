// Package tools is the contract boundary of the oc analysis engine. It
// exposes the three externally callable operations behind uniform
// status-carrying envelopes and publishes their definitions for LLM function
// calling and MCP registration.
package tools

import "github.com/octools/oc-analyzer/internal/oc/analyzer"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AnalysisResult is the envelope returned by analyze_oc_command.
type AnalysisResult struct {
	Status          string                        `json:"status"`
	Command         string                        `json:"command"`
	Operation       string                        `json:"operation,omitempty"`
	ResourceType    string                        `json:"resource_type,omitempty"`
	Flags           map[string]analyzer.FlagValue `json:"flags,omitempty"`
	Namespace       string                        `json:"namespace,omitempty"`
	AllNamespaces   bool                          `json:"all_namespaces,omitempty"`
	Arguments       []string                      `json:"arguments,omitempty"`
	Analysis        string                        `json:"analysis,omitempty"`
	Recommendations []string                      `json:"recommendations,omitempty"`
	Error           string                        `json:"error,omitempty"`
	Message         string                        `json:"message,omitempty"`
}

// HelpResult is the envelope returned by get_oc_help.
type HelpResult struct {
	Status     string `json:"status"`
	Subcommand string `json:"subcommand,omitempty"`
	HelpText   string `json:"help_text,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ExplainResult is the envelope returned by explain_oc_resource.
type ExplainResult struct {
	Status       string `json:"status"`
	ResourceType string `json:"resource_type,omitempty"`
	Explanation  string `json:"explanation,omitempty"`
	Message      string `json:"message,omitempty"`
	Error        string `json:"error,omitempty"`
}
