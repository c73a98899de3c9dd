package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendationsFor(t *testing.T, raw string) (string, []string) {
	t.Helper()
	tokens, err := Tokenize(raw)
	require.NoError(t, err)
	analysis, recs := Recommend(Classify(tokens))
	return analysis, recs
}

func containsSubstring(recs []string, substr string) bool {
	for _, r := range recs {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}

func TestRecommendGetWithOutputFlag(t *testing.T) {
	_, recs := recommendationsFor(t, "oc get pods -n production -o yaml")

	assert.False(t, containsSubstring(recs, "-o yaml"), "output already structured, no -o suggestion expected")
	assert.True(t, containsSubstring(recs, "label selectors"))
	assert.False(t, containsSubstring(recs, "default namespace"), "namespace is set")
}

func TestRecommendDestructiveDelete(t *testing.T) {
	_, recs := recommendationsFor(t, "oc delete pod/my-pod")

	assert.True(t, containsSubstring(recs, "--dry-run"), "delete without dry-run needs a safety note")
	assert.True(t, containsSubstring(recs, "default namespace"))
}

func TestRecommendDeleteWithDryRun(t *testing.T) {
	_, recs := recommendationsFor(t, "oc delete pod/my-pod --dry-run=client -n staging")
	assert.False(t, containsSubstring(recs, "--dry-run"))
}

func TestRecommendAllNamespacesCost(t *testing.T) {
	_, recs := recommendationsFor(t, "oc get pods -A")

	assert.True(t, containsSubstring(recs, "all namespaces"))
	assert.False(t, containsSubstring(recs, "default namespace"), "-A already scopes the query")
}

func TestRecommendExecCaution(t *testing.T) {
	_, recs := recommendationsFor(t, "oc exec mypod -- ls")
	assert.True(t, containsSubstring(recs, "exec"))
}

// Running the rules twice on identical input yields identical output.
func TestRecommendDeterministic(t *testing.T) {
	tokens, err := Tokenize("oc delete pods --all -n production")
	require.NoError(t, err)
	parsed := Classify(tokens)

	analysis1, recs1 := Recommend(parsed)
	analysis2, recs2 := Recommend(parsed)

	assert.Equal(t, analysis1, analysis2)
	assert.Equal(t, recs1, recs2)
}

func TestAnalysisSentence(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{
			raw:  "oc get pods -n production",
			want: "This command will retrieve and display pods resource(s) in the 'production' namespace. Additional flags: n.",
		},
		{
			raw:  "oc delete pod/my-pod",
			want: "This command will delete pod resource(s).",
		},
		{
			raw:  "oc get pods -A",
			want: "This command will retrieve and display pods resource(s) across all namespaces. Additional flags: A.",
		},
		{
			raw:  "oc frobnicate",
			want: "This command will perform the frobnicate operation.",
		},
		{
			raw:  "oc scale deployment/myapp --replicas=3",
			want: "This command will scale deployment resource(s). Additional flags: replicas.",
		},
	}

	for _, tt := range tests {
		analysis, _ := recommendationsFor(t, tt.raw)
		assert.Equal(t, tt.want, analysis, "input %q", tt.raw)
	}
}
