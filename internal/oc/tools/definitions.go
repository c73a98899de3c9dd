package tools

import (
	"github.com/openai/openai-go"
)

// Definition describes one callable tool in a transport-neutral form. The
// same definitions feed both the LLM function-calling layer and the MCP
// server, so the two surfaces can never drift apart.
type Definition struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// Definitions is the fixed registry of tools this engine exposes. Order is
// the order tools are advertised in.
var Definitions = []Definition{
	{
		Name: "analyze_oc_command",
		Description: "Parse an OpenShift CLI (oc) command and report its operation, resource type, " +
			"namespace, flags, positional arguments, and best-practice recommendations. " +
			"The command is analyzed only, never executed.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"command": map[string]interface{}{
					"type":        "string",
					"description": `The oc command to analyze, e.g. "oc get pods -n production"`,
				},
			},
			"required": []string{"command"},
		},
	},
	{
		Name: "get_oc_help",
		Description: "Retrieve official help documentation from the oc CLI. " +
			"Pass a subcommand such as get or apply, or omit it for the top-level help.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"subcommand": map[string]interface{}{
					"type":        "string",
					"description": `Optional oc subcommand, e.g. "get"`,
				},
			},
		},
	},
	{
		Name: "explain_oc_resource",
		Description: "Get field-level documentation for an OpenShift resource type via oc explain. " +
			"Dotted field paths such as deployment.spec.replicas are supported.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"resource_type": map[string]interface{}{
					"type":        "string",
					"description": `Resource type or field path, e.g. "pod" or "deployment.spec.replicas"`,
				},
			},
			"required": []string{"resource_type"},
		},
	},
}

// OpenAIDefinitions renders the registry as chat-completions tool parameters.
func OpenAIDefinitions() []openai.ChatCompletionToolParam {
	params := make([]openai.ChatCompletionToolParam, 0, len(Definitions))
	for _, def := range Definitions {
		params = append(params, openai.ChatCompletionToolParam{
			Type: openai.F(openai.ChatCompletionToolTypeFunction),
			Function: openai.F(openai.FunctionDefinitionParam{
				Name:        openai.String(def.Name),
				Description: openai.String(def.Description),
				Parameters:  openai.F(openai.FunctionParameters(def.Parameters)),
			}),
		})
	}
	return params
}
