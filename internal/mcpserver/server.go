// Package mcpserver exposes the oc analysis tools over the Model Context
// Protocol so MCP clients (agents, editors) can call them directly.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/octools/oc-analyzer/internal/config"
	"github.com/octools/oc-analyzer/internal/oc/tools"
)

// New builds an MCP server with all engine tools registered.
func New(cfg config.MCPConfig, toolset *tools.Toolset, logger *slog.Logger) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &mcpsdk.ServerOptions{
		Instructions: "Analyzes OpenShift CLI (oc) commands and looks up oc documentation. Commands are never executed.",
		Logger:       logger,
	})

	RegisterTools(server, toolset)

	return server
}

// RegisterTools adds every tool in the engine's registry to the MCP server,
// reusing the registry's JSON schemas for client-side validation.
func RegisterTools(server *mcpsdk.Server, toolset *tools.Toolset) {
	for _, def := range tools.Definitions {
		addTool(server, toolset, def)
	}
}

func addTool(server *mcpsdk.Server, toolset *tools.Toolset, def tools.Definition) {
	tool := &mcpsdk.Tool{
		Name:        def.Name,
		Description: def.Description,
		InputSchema: def.Parameters,
	}

	handler := func(
		ctx context.Context,
		_ *mcpsdk.CallToolRequest,
		input map[string]any,
	) (*mcpsdk.CallToolResult, map[string]any, error) {
		args, err := json.Marshal(input)
		if err != nil {
			return errorResult(fmt.Sprintf("encoding arguments for %s: %v", def.Name, err)), nil, nil
		}

		output, err := toolset.Invoke(ctx, def.Name, args)
		if err != nil {
			return errorResult(fmt.Sprintf("tool %s failed: %v", def.Name, err)), nil, nil
		}

		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: output},
			},
		}, nil, nil
	}

	mcpsdk.AddTool(server, tool, handler)
}

func errorResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}
}

// Run serves MCP over stdio until the client disconnects or the context is
// cancelled.
func Run(ctx context.Context, cfg config.MCPConfig, toolset *tools.Toolset, logger *slog.Logger) error {
	server := New(cfg, toolset, logger)

	transport := &mcpsdk.StdioTransport{}
	if err := server.Run(ctx, transport); err != nil {
		return fmt.Errorf("running MCP server: %w", err)
	}
	return nil
}
