// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/octools/oc-analyzer/internal/agent"
	"github.com/octools/oc-analyzer/internal/config"
	"github.com/octools/oc-analyzer/internal/llm"
	"github.com/octools/oc-analyzer/internal/oc/help"
	"github.com/octools/oc-analyzer/internal/oc/tools"
	"github.com/octools/oc-analyzer/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.OpenAI.APIKey == "" {
		log.Fatal("OPENAI_API_KEY must be set for the agent server")
	}

	provider := help.NewCLIProvider(cfg.OC.Binary, cfg.OC.HelpTimeout, cfg.OC.ExplainTimeout)
	toolset := tools.New(provider)

	llmProvider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	ocAgent := agent.New(toolset, llmProvider)

	srv := server.New(*cfg, ocAgent, toolset)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
