package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeAnalyzeCommand(t *testing.T) {
	ts := New(&fakeProvider{})

	out, err := ts.Invoke(context.Background(), "analyze_oc_command",
		json.RawMessage(`{"command":"oc get pods -o yaml --all"}`))
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "get", result["operation"])
	assert.Equal(t, "pods", result["resource_type"])
	// value flags serialize as strings, presence flags as true
	assert.Equal(t, map[string]interface{}{"o": "yaml", "all": true}, result["flags"])
}

func TestInvokeAnalyzeCommandParseFailure(t *testing.T) {
	ts := New(&fakeProvider{})

	out, err := ts.Invoke(context.Background(), "analyze_oc_command",
		json.RawMessage(`{"command":""}`))
	require.NoError(t, err, "parse failures stay inside the envelope")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "error", result["status"])
}

func TestInvokeGetHelpNoArguments(t *testing.T) {
	ts := New(&fakeProvider{helpText: "Usage: oc [command]"})

	out, err := ts.Invoke(context.Background(), "get_oc_help", nil)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "Usage: oc [command]", result["help_text"])
}

func TestInvokeExplainResource(t *testing.T) {
	ts := New(&fakeProvider{explainText: "KIND: Deployment"})

	out, err := ts.Invoke(context.Background(), "explain_oc_resource",
		json.RawMessage(`{"resource_type":"deployment.spec.replicas"}`))
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "deployment.spec.replicas", result["resource_type"])
}

func TestInvokeUnknownTool(t *testing.T) {
	ts := New(&fakeProvider{})

	_, err := ts.Invoke(context.Background(), "execute_oc_command", nil)
	assert.ErrorContains(t, err, "not found")
}

func TestInvokeBadArguments(t *testing.T) {
	ts := New(&fakeProvider{})

	_, err := ts.Invoke(context.Background(), "analyze_oc_command", json.RawMessage(`{`))
	assert.ErrorContains(t, err, "decoding")
}
