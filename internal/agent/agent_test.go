package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octools/oc-analyzer/api/models"
	"github.com/octools/oc-analyzer/internal/llm"
	"github.com/octools/oc-analyzer/internal/oc/tools"
)

// scriptedLLM plays back a fixed sequence of responses.
type scriptedLLM struct {
	t         *testing.T
	responses []*llm.Response
	calls     int
}

func (s *scriptedLLM) Analyze(ctx context.Context, system, user []string, opts ...llm.Option) (*llm.Response, error) {
	require.Less(s.t, s.calls, len(s.responses), "LLM called more often than scripted")
	resp := s.responses[s.calls]
	s.calls++
	return resp, nil
}

// countingProvider counts real help lookups so the duplicate-call reuse path
// can be observed.
type countingProvider struct {
	helpCalls int
}

func (c *countingProvider) Help(ctx context.Context, subcommand string) (string, error) {
	c.helpCalls++
	return "help text", nil
}

func (c *countingProvider) Explain(ctx context.Context, resourcePath string) (string, error) {
	return "explanation", nil
}

func toolCall(name, args string) *llm.Response {
	return &llm.Response{
		FunctionCall: &llm.FunctionResponse{Name: name, Arguments: args},
	}
}

func finalAnswer(content string, totalTokens int64) *llm.Response {
	return &llm.Response{Content: content, Usage: llm.Usage{TotalTokens: totalTokens}}
}

func TestChatToolCallThenAnswer(t *testing.T) {
	provider := &scriptedLLM{t: t, responses: []*llm.Response{
		toolCall("analyze_oc_command", `{"command":"oc get pods"}`),
		finalAnswer("the command lists pods", 42),
	}}
	a := New(tools.New(&countingProvider{}), provider)

	resp, err := a.Chat(context.Background(), models.ChatRequest{Message: "what does oc get pods do?"})
	require.NoError(t, err)

	assert.Equal(t, "the command lists pods", resp.Result)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "analyze_oc_command", resp.ToolCalls[0].Tool)
	assert.Equal(t, 1, resp.Metadata.Steps)
	assert.Equal(t, int64(42), resp.Metadata.TokensUsed)
	assert.Equal(t, 2, provider.calls)
}

func TestChatDuplicateToolCallReused(t *testing.T) {
	provider := &scriptedLLM{t: t, responses: []*llm.Response{
		toolCall("get_oc_help", `{"subcommand":"get"}`),
		toolCall("get_oc_help", `{"subcommand":"get"}`),
		finalAnswer("done", 1),
	}}
	helpProvider := &countingProvider{}
	a := New(tools.New(helpProvider), provider)

	resp, err := a.Chat(context.Background(), models.ChatRequest{Message: "help for get"})
	require.NoError(t, err)

	assert.Equal(t, "done", resp.Result)
	assert.Len(t, resp.ToolCalls, 2, "both steps are recorded")
	assert.Equal(t, 1, helpProvider.helpCalls, "identical call must reuse the earlier result")
}

func TestChatUnknownToolFedBackToModel(t *testing.T) {
	provider := &scriptedLLM{t: t, responses: []*llm.Response{
		toolCall("execute_oc_command", `{"command":"oc get pods"}`),
		finalAnswer("that tool does not exist", 1),
	}}
	a := New(tools.New(&countingProvider{}), provider)

	resp, err := a.Chat(context.Background(), models.ChatRequest{Message: "run oc get pods"})
	require.NoError(t, err, "an unknown tool name must not abort the chat")
	assert.Equal(t, "that tool does not exist", resp.Result)
}

func TestChatMaxStepsSummary(t *testing.T) {
	responses := make([]*llm.Response, 0, MaxSteps+1)
	for i := 0; i < MaxSteps; i++ {
		responses = append(responses, toolCall("analyze_oc_command", `{"command":"oc get pods"}`))
	}
	responses = append(responses, finalAnswer("summary after budget", 7))

	provider := &scriptedLLM{t: t, responses: responses}
	a := New(tools.New(&countingProvider{}), provider)

	resp, err := a.Chat(context.Background(), models.ChatRequest{Message: "loop forever"})
	require.NoError(t, err)

	assert.Equal(t, "summary after budget", resp.Result)
	assert.Equal(t, MaxSteps, resp.Metadata.Steps)
	assert.Equal(t, MaxSteps+1, provider.calls)
}

func TestChatModelOptionForwarded(t *testing.T) {
	provider := &scriptedLLM{t: t, responses: []*llm.Response{
		finalAnswer("hi", 3),
	}}
	a := New(tools.New(&countingProvider{}), provider)

	resp, err := a.Chat(context.Background(), models.ChatRequest{
		Message: "hello",
		Options: models.ChatOptions{Model: "gpt-4o"},
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", resp.Metadata.Model)
}
