// cmd/mcp/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/octools/oc-analyzer/internal/config"
	"github.com/octools/oc-analyzer/internal/mcpserver"
	"github.com/octools/oc-analyzer/internal/oc/help"
	"github.com/octools/oc-analyzer/internal/oc/tools"
)

func main() {
	// stdout is the MCP transport; everything else goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider := help.NewCLIProvider(cfg.OC.Binary, cfg.OC.HelpTimeout, cfg.OC.ExplainTimeout)
	toolset := tools.New(provider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting MCP server", "name", cfg.MCP.Name, "version", cfg.MCP.Version)
	if err := mcpserver.Run(ctx, cfg.MCP, toolset, logger); err != nil {
		log.Fatalf("MCP server failed: %v", err)
	}
}
