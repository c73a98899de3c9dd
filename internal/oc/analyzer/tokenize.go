// Package analyzer decomposes OpenShift CLI (oc) command lines into their
// semantic parts and derives best-practice recommendations. It never executes
// anything: the whole package is a pure text-to-structure transform.
package analyzer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrEmptyCommand is returned when the input contains no command text.
	ErrEmptyCommand = errors.New("empty command")

	// ErrMalformedCommand is returned when the input cannot be tokenized,
	// e.g. an unterminated quote.
	ErrMalformedCommand = errors.New("malformed command")
)

// Tokenize splits a raw oc command line into tokens. Whitespace separates
// tokens except inside single- or double-quoted spans, which collapse into a
// single token with the quotes stripped. A leading "oc" token is dropped when
// present; callers may omit it.
func Tokenize(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: command must not be blank", ErrEmptyCommand)
	}

	var (
		tokens  []string
		current strings.Builder
		quote   rune // active quote character, 0 outside quoted spans
		open    bool // true once the current token has started
	)
	for _, r := range trimmed {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			open = true
		case unicode.IsSpace(r):
			if open {
				tokens = append(tokens, current.String())
				current.Reset()
				open = false
			}
		default:
			current.WriteRune(r)
			open = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: unterminated %c quote", ErrMalformedCommand, quote)
	}
	if open {
		tokens = append(tokens, current.String())
	}

	if len(tokens) > 0 && tokens[0] == "oc" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: nothing to analyze after the binary name", ErrEmptyCommand)
	}
	return tokens, nil
}
