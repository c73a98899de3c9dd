package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// operationDescriptions maps recognized operations to the verb phrase used in
// the analysis sentence. Unknown operations fall back to the operation itself.
var operationDescriptions = map[string]string{
	"get":          "retrieve and display",
	"describe":     "show detailed information about",
	"create":       "create new",
	"apply":        "apply configuration to",
	"delete":       "delete",
	"edit":         "edit configuration of",
	"patch":        "patch",
	"logs":         "view logs from",
	"exec":         "execute a command in",
	"port-forward": "forward ports to",
	"scale":        "scale",
	"rollout":      "manage rollout of",
	"expose":       "expose",
	"label":        "manage labels for",
	"annotate":     "manage annotations for",
}

// A rule inspects a parsed command and either contributes one recommendation
// or stays silent. Rules must not depend on each other; they are evaluated in
// the order they appear in the registry, which fixes the output order.
type rule struct {
	name  string
	apply func(ParsedCommand) (string, bool)
}

var rules = []rule{
	{
		name: "namespace-hint",
		apply: func(p ParsedCommand) (string, bool) {
			if p.Namespace != "" || p.AllNamespaces {
				return "", false
			}
			switch p.Operation {
			case "get", "describe", "delete", "logs", "exec":
				return "No namespace given; the command will run against the current context's default namespace. Consider -n or --namespace for clarity.", true
			}
			return "", false
		},
	},
	{
		name: "dry-run-safety",
		apply: func(p ParsedCommand) (string, bool) {
			switch p.Operation {
			case "delete", "create", "apply":
				if !p.HasFlag("dry-run") {
					return "For safety, consider using --dry-run=client to preview changes before applying them.", true
				}
			}
			return "", false
		},
	},
	{
		name: "structured-output",
		apply: func(p ParsedCommand) (string, bool) {
			switch p.Operation {
			case "get", "describe":
				if !p.HasFlag("o", "output") {
					return "Use -o yaml or -o json to get full resource details in a structured format.", true
				}
			}
			return "", false
		},
	},
	{
		name: "label-selector",
		apply: func(p ParsedCommand) (string, bool) {
			switch p.Operation {
			case "get", "delete":
				if !p.HasFlag("l", "selector") {
					return "Consider using label selectors (-l) to filter resources precisely.", true
				}
			}
			return "", false
		},
	},
	{
		name: "all-namespaces-cost",
		apply: func(p ParsedCommand) (string, bool) {
			if p.AllNamespaces {
				return "Querying all namespaces can be slow on large clusters; prefer -n <namespace> when the target is known.", true
			}
			return "", false
		},
	},
	{
		name: "exec-caution",
		apply: func(p ParsedCommand) (string, bool) {
			if p.Operation == "exec" {
				return "Be cautious with exec - it provides direct access to container environments.", true
			}
			return "", false
		},
	},
}

// Recommend evaluates the rule registry against a parsed command and builds
// the deterministic analysis sentence. Identical input always yields the same
// sentence and the same recommendation order.
func Recommend(parsed ParsedCommand) (analysis string, recommendations []string) {
	recommendations = []string{}
	seen := make(map[string]bool)
	for _, r := range rules {
		msg, ok := r.apply(parsed)
		if ok && !seen[msg] {
			recommendations = append(recommendations, msg)
			seen[msg] = true
		}
	}
	return analysisSentence(parsed), recommendations
}

func analysisSentence(p ParsedCommand) string {
	action, ok := operationDescriptions[p.Operation]
	if !ok {
		action = p.Operation
	}

	var b strings.Builder
	if p.ResourceType != "" {
		fmt.Fprintf(&b, "This command will %s %s resource(s)", action, p.ResourceType)
	} else {
		fmt.Fprintf(&b, "This command will perform the %s operation", p.Operation)
	}
	if p.Namespace != "" {
		fmt.Fprintf(&b, " in the '%s' namespace", p.Namespace)
	} else if p.AllNamespaces {
		b.WriteString(" across all namespaces")
	}
	if len(p.Flags) > 0 {
		names := make([]string, 0, len(p.Flags))
		for name := range p.Flags {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, ". Additional flags: %s", strings.Join(names, ", "))
	}
	b.WriteString(".")
	return b.String()
}
