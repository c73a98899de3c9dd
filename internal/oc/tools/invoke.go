package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Invoke dispatches a tool call by name. args is the raw JSON arguments
// object produced by the caller (an LLM or an MCP client). The result is the
// JSON-encoded envelope of the invoked operation; an error is returned only
// for unknown tools or undecodable arguments, never for failures the
// envelopes already report.
func (t *Toolset) Invoke(ctx context.Context, name string, args json.RawMessage) (string, error) {
	slog.Info("Invoking tool", "tool", name)

	var result interface{}
	switch name {
	case "analyze_oc_command":
		var in struct {
			Command string `json:"command"`
		}
		if err := unmarshalArgs(name, args, &in); err != nil {
			return "", err
		}
		result = t.AnalyzeCommand(in.Command)

	case "get_oc_help":
		var in struct {
			Subcommand string `json:"subcommand"`
		}
		if err := unmarshalArgs(name, args, &in); err != nil {
			return "", err
		}
		result = t.GetHelp(ctx, in.Subcommand)

	case "explain_oc_resource":
		var in struct {
			ResourceType string `json:"resource_type"`
		}
		if err := unmarshalArgs(name, args, &in); err != nil {
			return "", err
		}
		result = t.ExplainResource(ctx, in.ResourceType)

	default:
		return "", fmt.Errorf("tool %q not found", name)
	}

	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encoding %s result: %w", name, err)
	}
	return string(out), nil
}

func unmarshalArgs(name string, args json.RawMessage, into interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, into); err != nil {
		return fmt.Errorf("decoding %s arguments: %w", name, err)
	}
	return nil
}
