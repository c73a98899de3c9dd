package analyzer

import (
	"encoding/json"
	"strings"
)

// FlagValue is the parsed value of a single flag: either a string value
// (--output=yaml, -n production) or bare presence (--all-namespaces).
type FlagValue struct {
	Value    string
	HasValue bool
}

// MarshalJSON keeps the wire shape of the flags mapping: a string for
// value-carrying flags, the literal true for presence flags.
func (v FlagValue) MarshalJSON() ([]byte, error) {
	if !v.HasValue {
		return []byte("true"), nil
	}
	return json.Marshal(v.Value)
}

// ParsedCommand is the classified structure of an oc command. Every token of
// the input ends up in exactly one of its fields.
type ParsedCommand struct {
	Operation     string               `json:"operation,omitempty"`
	ResourceType  string               `json:"resource_type,omitempty"`
	Namespace     string               `json:"namespace,omitempty"`
	AllNamespaces bool                 `json:"all_namespaces,omitempty"`
	Flags         map[string]FlagValue `json:"flags"`
	Arguments     []string             `json:"arguments"`
}

// HasFlag reports whether any of the given flag names was present.
func (p ParsedCommand) HasFlag(names ...string) bool {
	for _, name := range names {
		if _, ok := p.Flags[name]; ok {
			return true
		}
	}
	return false
}

// booleanFlags never consume the following token as a value; they are
// presence-only in oc regardless of what comes after them.
var booleanFlags = map[string]bool{
	"A":                true,
	"all-namespaces":   true,
	"all":              true,
	"w":                true,
	"watch":            true,
	"follow":           true,
	"show-labels":      true,
	"now":              true,
	"ignore-not-found": true,
	"force":            true,
}

// Classify maps a token stream onto a ParsedCommand. The first non-flag token
// is the operation, the second the resource type (a kind/name pair splits into
// resource type plus argument), and all further non-flag tokens are
// positional arguments. Unrecognized operations are recorded as-is; this
// function never fails.
func Classify(tokens []string) ParsedCommand {
	parsed := ParsedCommand{
		Flags:     make(map[string]FlagValue),
		Arguments: []string{},
	}

	positionals := 0
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if isFlag(tok) {
			name, value, hasValue := splitFlag(tok)
			if !hasValue && !booleanFlags[name] && i+1 < len(tokens) && !isFlag(tokens[i+1]) {
				value = tokens[i+1]
				hasValue = true
				i++
			}
			parsed.Flags[name] = FlagValue{Value: value, HasValue: hasValue}

			switch name {
			case "n", "namespace":
				if hasValue {
					parsed.Namespace = value
				}
			case "A", "all-namespaces":
				parsed.AllNamespaces = true
			}
			continue
		}

		switch positionals {
		case 0:
			parsed.Operation = tok
		case 1:
			if kind, name, ok := strings.Cut(tok, "/"); ok && kind != "" && name != "" {
				parsed.ResourceType = kind
				parsed.Arguments = append(parsed.Arguments, name)
			} else {
				parsed.ResourceType = tok
			}
		default:
			parsed.Arguments = append(parsed.Arguments, tok)
		}
		positionals++
	}

	return parsed
}

func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "-") && tok != "-" && tok != "--"
}

// splitFlag strips the dash prefix and separates an =-joined value.
func splitFlag(tok string) (name, value string, hasValue bool) {
	name = strings.TrimLeft(tok, "-")
	if before, after, ok := strings.Cut(name, "="); ok {
		return before, after, true
	}
	return name, "", false
}
