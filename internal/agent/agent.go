// Package agent runs the stepwise LLM loop that answers oc questions by
// calling the analysis tools.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/octools/oc-analyzer/api/models"
	"github.com/octools/oc-analyzer/internal/llm"
	"github.com/octools/oc-analyzer/internal/oc/tools"
)

const (
	// MaxSteps bounds the number of LLM round trips per request.
	MaxSteps = 5

	// maxResponseLen truncates runaway model output.
	maxResponseLen = 5000
)

// SystemPrompt instructs the model to ground every answer in tool output.
var SystemPrompt = `You are OC Commands Analyzer Agent, an OpenShift CLI expert with access to specialized tools.

A few things to remember:
- Always use the same language as the user.
- You have three tools:
    1. analyze_oc_command: parses an oc command, identifies its operation, resource type, namespace and flags, and returns best-practice recommendations.
    2. get_oc_help: retrieves official help documentation for oc and its subcommands.
    3. explain_oc_resource: returns field-level documentation for OpenShift resource types.
- Only answer from tool output, never from internal knowledge alone.
- When the user mentions an oc command (like 'oc get pods' or 'oc delete deployment'), call analyze_oc_command immediately. Do not describe what the tool would return - call it.
- Use the tool output to determine whether commands are safe or destructive, then explain the results clearly.
- Do not repeat a tool call with the same arguments; the results will not change.
- Make sure your final answer is formatted well.`

type State struct {
	Steps         int
	GatheredData  []StepData
	OriginalQuery string
}

type StepData struct {
	StepNumber int
	ToolName   string
	Arguments  json.RawMessage
	Output     string
}

type Action struct {
	Action    string          `json:"action"` // "tool_call" or "final_response"
	Tool      string          `json:"tool,omitempty"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
	Message   string          `json:"message,omitempty"`
}

type Agent struct {
	toolset     *tools.Toolset
	llmProvider llm.Provider
}

func New(toolset *tools.Toolset, llmProvider llm.Provider) *Agent {
	return &Agent{
		toolset:     toolset,
		llmProvider: llmProvider,
	}
}

// Chat answers a user message, calling tools as the model requests until it
// produces a final response or the step budget runs out.
func (a *Agent) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	slog.Info("Starting chat", "message", req.Message)
	startTime := time.Now()

	state := &State{
		OriginalQuery: req.Message,
		GatheredData:  make([]StepData, 0),
	}

	for state.Steps < MaxSteps {
		action, usage, err := a.nextAction(ctx, req, state)
		if err != nil {
			return nil, err
		}

		switch action.Action {
		case "tool_call":
			a.handleToolCall(ctx, state, action)
		case "final_response":
			return a.buildResponse(startTime, req, state, usage, action.Message), nil
		default:
			slog.Error("Unknown agent action", "action", action.Action)
			return nil, fmt.Errorf("unknown agent action: %s", action.Action)
		}
	}

	// Step budget exhausted; ask the model for a final summary.
	return a.finalSummary(ctx, req, startTime, state)
}

// nextAction calls the LLM to get the agent's next action.
func (a *Agent) nextAction(ctx context.Context, req models.ChatRequest, state *State) (Action, llm.Usage, error) {
	systemContent := fmt.Sprintf(
		"%s\n\nToday's date is %s.\n\nCurrent step: %d/%d\nPrevious tool results:\n%s\n\n%s",
		SystemPrompt,
		time.Now().Format("January 2, 2006"),
		state.Steps+1, MaxSteps,
		summarizeSteps(state.GatheredData),
		historyReminder(state),
	)

	llmResp, err := a.llmProvider.Analyze(
		ctx,
		[]string{systemContent},
		[]string{state.OriginalQuery},
		llm.Option(func(o *llm.Options) {
			o.Tools = tools.OpenAIDefinitions()
			if req.Options.Model != "" {
				o.Model = req.Options.Model
			}
			if req.Options.MaxTokens != 0 {
				o.MaxTokens = req.Options.MaxTokens
			}
			if req.Options.Temperature != 0 {
				o.Temperature = req.Options.Temperature
			}
		}),
	)
	if err != nil {
		slog.Error("LLM call failed", "error", err)
		return Action{}, llm.Usage{}, fmt.Errorf("LLM call failed: %w", err)
	}

	var action Action
	if llmResp.FunctionCall != nil {
		action = Action{
			Action:    "tool_call",
			Tool:      llmResp.FunctionCall.Name,
			Arguments: []byte(llmResp.FunctionCall.Arguments),
		}
		slog.Debug("LLM requested tool call", "tool", action.Tool, "arguments", string(action.Arguments))
	} else {
		action.Action = "final_response"
		action.Message = llmResp.Content
		slog.Debug("LLM provided final response", "message", action.Message)
	}

	return action, llmResp.Usage, nil
}

func historyReminder(state *State) string {
	if len(state.GatheredData) == 0 {
		return "No tool calls have been made yet."
	}

	reminder := "Previously called tools (do not repeat these exact calls):\n"
	seen := make(map[string]bool)
	for _, sd := range state.GatheredData {
		key := sd.ToolName + string(sd.Arguments)
		if !seen[key] {
			reminder += fmt.Sprintf("- Tool: %s Arguments: %s\n", sd.ToolName, string(sd.Arguments))
			seen[key] = true
		}
	}
	return reminder
}

// handleToolCall runs one tool invocation. Tool-level failures are fed back
// to the model as observations rather than aborting the chat: the envelopes
// already carry their own status, and an unknown tool name is something the
// model can correct on the next step.
func (a *Agent) handleToolCall(ctx context.Context, state *State, action Action) {
	slog.Info("Executing tool call", "tool", action.Tool)

	// Reuse results of an identical earlier call.
	for _, sd := range state.GatheredData {
		if sd.ToolName == action.Tool && jsonEqual(sd.Arguments, action.Arguments) {
			slog.Debug("Duplicate tool call, reusing earlier result", "tool", action.Tool)
			state.GatheredData = append(state.GatheredData, StepData{
				StepNumber: state.Steps + 1,
				ToolName:   action.Tool,
				Arguments:  action.Arguments,
				Output:     sd.Output,
			})
			state.Steps++
			return
		}
	}

	output, err := a.toolset.Invoke(ctx, action.Tool, action.Arguments)
	if err != nil {
		slog.Warn("Tool invocation failed", "tool", action.Tool, "error", err)
		output = fmt.Sprintf("error: %v", err)
	}

	state.GatheredData = append(state.GatheredData, StepData{
		StepNumber: state.Steps + 1,
		ToolName:   action.Tool,
		Arguments:  action.Arguments,
		Output:     truncateString(output, maxResponseLen),
	})
	state.Steps++
}

func (a *Agent) buildResponse(startTime time.Time, req models.ChatRequest, state *State, usage llm.Usage, message string) *models.ChatResponse {
	slog.Info("Returning final response", "steps", state.Steps)
	return &models.ChatResponse{
		Result:    truncateString(message, maxResponseLen),
		ToolCalls: toolCalls(state.GatheredData),
		Metadata: models.ChatMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      req.Options.Model,
			TokensUsed: usage.TotalTokens,
			Steps:      state.Steps,
		},
	}
}

func (a *Agent) finalSummary(ctx context.Context, req models.ChatRequest, startTime time.Time, state *State) (*models.ChatResponse, error) {
	systemContent := fmt.Sprintf(`You have reached the maximum steps (%d). Provide a final summary.
Original question: %s

Tool results so far:
%s

Give a truthful, concise final answer that reflects all the gathered data.`,
		MaxSteps, state.OriginalQuery, summarizeSteps(state.GatheredData))

	finalResp, err := a.llmProvider.Analyze(
		ctx,
		[]string{systemContent},
		[]string{""},
		llm.Option(func(o *llm.Options) {
			if req.Options.Model != "" {
				o.Model = req.Options.Model
			}
		}),
	)
	if err != nil {
		slog.Error("Failed to generate final summary", "error", err)
		return nil, fmt.Errorf("failed to generate final summary: %w", err)
	}

	return a.buildResponse(startTime, req, state, finalResp.Usage, finalResp.Content), nil
}

func summarizeSteps(data []StepData) string {
	if len(data) == 0 {
		return "No tool results yet."
	}
	summary := ""
	for _, step := range data {
		summary += fmt.Sprintf("Step %d:\n  Tool: %s\n  Arguments: %s\n  Output: %s\n\n",
			step.StepNumber, step.ToolName, string(step.Arguments), step.Output)
	}
	return summary
}

func toolCalls(data []StepData) []models.ToolCall {
	calls := make([]models.ToolCall, len(data))
	for i, step := range data {
		calls[i] = models.ToolCall{
			Tool:      step.ToolName,
			Arguments: step.Arguments,
		}
	}
	return calls
}

func truncateString(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "\n[truncated]"
	}
	return s
}

func jsonEqual(a, b json.RawMessage) bool {
	var ja, jb interface{}
	_ = json.Unmarshal(a, &ja)
	_ = json.Unmarshal(b, &jb)
	return fmt.Sprintf("%v", ja) == fmt.Sprintf("%v", jb)
}
