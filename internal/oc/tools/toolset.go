package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/octools/oc-analyzer/internal/oc/analyzer"
	"github.com/octools/oc-analyzer/internal/oc/help"
)

// Toolset binds the pure analysis engine to a help provider and exposes the
// three tool operations. Each call is independent and stateless; a single
// Toolset is safe for concurrent use.
type Toolset struct {
	provider help.Provider
}

func New(provider help.Provider) *Toolset {
	return &Toolset{provider: provider}
}

// AnalyzeCommand parses an oc command and derives recommendations without
// executing it. Parsing failures come back as status:error envelopes, never
// as Go errors.
func (t *Toolset) AnalyzeCommand(command string) AnalysisResult {
	tokens, err := analyzer.Tokenize(command)
	if err != nil {
		slog.Warn("Rejecting oc command", "error", err)
		return AnalysisResult{
			Status:  StatusError,
			Command: command,
			Error:   err.Error(),
			Message: "Invalid oc command format",
		}
	}

	parsed := analyzer.Classify(tokens)
	analysis, recommendations := analyzer.Recommend(parsed)

	slog.Info("Analyzed oc command", "operation", parsed.Operation, "resource", parsed.ResourceType)
	return AnalysisResult{
		Status:          StatusSuccess,
		Command:         command,
		Operation:       parsed.Operation,
		ResourceType:    parsed.ResourceType,
		Flags:           parsed.Flags,
		Namespace:       parsed.Namespace,
		AllNamespaces:   parsed.AllNamespaces,
		Arguments:       parsed.Arguments,
		Analysis:        analysis,
		Recommendations: recommendations,
	}
}

// GetHelp retrieves oc help text, top-level when subcommand is empty. A
// subcommand the provider does not know still succeeds with an explanatory
// message; only provider unavailability is an error.
func (t *Toolset) GetHelp(ctx context.Context, subcommand string) HelpResult {
	text, err := t.provider.Help(ctx, subcommand)
	switch {
	case err == nil:
		return HelpResult{
			Status:     StatusSuccess,
			Subcommand: subcommand,
			HelpText:   text,
			Message:    fmt.Sprintf("Help for %s retrieved successfully", describeSubcommand(subcommand)),
		}
	case errors.Is(err, help.ErrUnknownSubcommand):
		return HelpResult{
			Status:     StatusSuccess,
			Subcommand: subcommand,
			Message:    fmt.Sprintf("No help available for %s: %v", describeSubcommand(subcommand), err),
		}
	default:
		slog.Error("oc help lookup failed", "subcommand", subcommand, "error", err)
		return HelpResult{
			Status:     StatusError,
			Subcommand: subcommand,
			Error:      err.Error(),
			Message:    "The oc command-line tool is not installed or not reachable",
		}
	}
}

// ExplainResource retrieves field documentation for a resource type or dotted
// field path. An unresolved path still succeeds with an explanatory message;
// only provider unavailability is an error.
func (t *Toolset) ExplainResource(ctx context.Context, resourceType string) ExplainResult {
	if resourceType == "" {
		return ExplainResult{
			Status:  StatusError,
			Error:   "resource_type is required",
			Message: "Provide a resource type such as pod or deployment.spec.replicas",
		}
	}

	text, err := t.provider.Explain(ctx, resourceType)
	switch {
	case err == nil:
		return ExplainResult{
			Status:       StatusSuccess,
			ResourceType: resourceType,
			Explanation:  text,
			Message:      fmt.Sprintf("Successfully retrieved documentation for %s", resourceType),
		}
	case errors.Is(err, help.ErrUnknownResource):
		return ExplainResult{
			Status:       StatusSuccess,
			ResourceType: resourceType,
			Message:      fmt.Sprintf("No documentation found for %s: %v", resourceType, err),
		}
	default:
		slog.Error("oc explain lookup failed", "resource", resourceType, "error", err)
		return ExplainResult{
			Status:       StatusError,
			ResourceType: resourceType,
			Error:        err.Error(),
			Message:      "The oc command-line tool is not installed or not reachable",
		}
	}
}

func describeSubcommand(subcommand string) string {
	if subcommand == "" {
		return "oc"
	}
	return "oc " + subcommand
}
