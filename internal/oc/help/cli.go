package help

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// runner executes the oc binary and returns stdout and stderr separately.
// Tests swap it out to avoid a real oc installation.
type runner func(ctx context.Context, binary string, args ...string) (stdout, stderr []byte, err error)

// CLIProvider shells out to the oc binary for help and explain lookups.
type CLIProvider struct {
	binary         string
	helpTimeout    time.Duration
	explainTimeout time.Duration
	run            runner
}

// NewCLIProvider builds a provider around the given oc binary. Zero timeouts
// fall back to defaults matching oc's usual response times.
func NewCLIProvider(binary string, helpTimeout, explainTimeout time.Duration) *CLIProvider {
	if binary == "" {
		binary = "oc"
	}
	if helpTimeout <= 0 {
		helpTimeout = 10 * time.Second
	}
	if explainTimeout <= 0 {
		explainTimeout = 15 * time.Second
	}
	return &CLIProvider{
		binary:         binary,
		helpTimeout:    helpTimeout,
		explainTimeout: explainTimeout,
		run:            runCommand,
	}
}

func (p *CLIProvider) Help(ctx context.Context, subcommand string) (string, error) {
	args := []string{"--help"}
	if subcommand != "" {
		args = []string{subcommand, "--help"}
	}

	ctx, cancel := context.WithTimeout(ctx, p.helpTimeout)
	defer cancel()

	slog.Debug("Looking up oc help", "subcommand", subcommand)
	stdout, stderr, err := p.run(ctx, p.binary, args...)
	if err != nil {
		if unavailable := unavailableError(ctx, err); unavailable != nil {
			return "", unavailable
		}
		return "", fmt.Errorf("%w %q: %s", ErrUnknownSubcommand, subcommand, firstLine(stderr))
	}
	return string(stdout), nil
}

func (p *CLIProvider) Explain(ctx context.Context, resourcePath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.explainTimeout)
	defer cancel()

	slog.Debug("Explaining oc resource", "resource", resourcePath)
	stdout, stderr, err := p.run(ctx, p.binary, "explain", resourcePath)
	if err != nil {
		if unavailable := unavailableError(ctx, err); unavailable != nil {
			return "", unavailable
		}
		return "", fmt.Errorf("%w %q: %s", ErrUnknownResource, resourcePath, firstLine(stderr))
	}
	return string(stdout), nil
}

func runCommand(ctx context.Context, binary string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// unavailableError translates missing-binary, timeout, and cancellation
// failures into ErrProviderUnavailable. A non-zero exit from a reachable
// binary is not an availability problem and returns nil.
func unavailableError(ctx context.Context, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: binary not installed or not in PATH: %v", ErrProviderUnavailable, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: lookup aborted: %v", ErrProviderUnavailable, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}

func firstLine(stderr []byte) string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(stderr)), "\n")
	if line == "" {
		return "no further detail from oc"
	}
	return line
}
