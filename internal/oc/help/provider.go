// Package help looks up documentation from the locally installed oc binary.
// It owns only request/response shaping and error translation; the text
// itself comes from the external provider.
package help

import (
	"context"
	"errors"
)

var (
	// ErrProviderUnavailable signals that the help provider itself is down:
	// the binary is missing, or the lookup timed out or was cancelled.
	ErrProviderUnavailable = errors.New("oc CLI unavailable")

	// ErrUnknownSubcommand signals that the provider had no help for the
	// requested subcommand.
	ErrUnknownSubcommand = errors.New("unknown oc subcommand")

	// ErrUnknownResource signals that the provider could not resolve the
	// requested resource type or field path.
	ErrUnknownResource = errors.New("unknown resource type")
)

// Provider supplies oc documentation text by key. Implementations must
// distinguish "no documentation found" (ErrUnknownSubcommand,
// ErrUnknownResource) from "the lookup system is down"
// (ErrProviderUnavailable).
type Provider interface {
	// Help returns the help text for a subcommand, or the top-level help
	// when subcommand is empty.
	Help(ctx context.Context, subcommand string) (string, error)

	// Explain returns the field documentation for a resource type or dotted
	// field path such as deployment.spec.replicas.
	Explain(ctx context.Context, resourcePath string) (string, error)
}
