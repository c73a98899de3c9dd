package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	OC     OCConfig
	MCP    MCPConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

// OpenAIConfig configures the LLM provider for the agent entrypoint. The key
// is optional here because the MCP entrypoint shares this config and never
// talks to an LLM; cmd/server validates it at startup.
type OpenAIConfig struct {
	Provider       string `envconfig:"OPENAI_PROVIDER" default:"openai"`
	APIKey         string `envconfig:"OPENAI_API_KEY"`
	APIEndpoint    string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model          string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	DeploymentName string `envconfig:"OPENAI_DEPLOYMENT" default:"gpt-4o"`
	APIVersion     string `envconfig:"OPENAI_API_VERSION" default:"2023-05-15"`
}

// OCConfig controls the external help provider: which binary to run and how
// long lookups may take before they count as unavailable.
type OCConfig struct {
	Binary         string        `envconfig:"OC_BINARY" default:"oc"`
	HelpTimeout    time.Duration `envconfig:"OC_HELP_TIMEOUT" default:"10s"`
	ExplainTimeout time.Duration `envconfig:"OC_EXPLAIN_TIMEOUT" default:"15s"`
}

type MCPConfig struct {
	Name    string `envconfig:"MCP_SERVER_NAME" default:"oc-commands-analyzer"`
	Version string `envconfig:"MCP_SERVER_VERSION" default:"0.1.0"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
