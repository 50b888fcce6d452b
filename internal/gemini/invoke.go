package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single subprocess run. The upstream behavior had
// no timeout at all; a bounded wait is a robustness addition.
const DefaultTimeout = 120 * time.Second

// Invoker runs the Gemini CLI synchronously, one subprocess at a time,
// falling back across candidate models on retryable failures.
type Invoker struct {
	timeout time.Duration
	logger  *slog.Logger
}

func NewInvoker(timeout time.Duration, logger *slog.Logger) *Invoker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{timeout: timeout, logger: logger}
}

// Run tries each candidate model in order. build produces the argv for a
// given model; stdin is piped to the subprocess (empty means immediate EOF).
//
// First success wins. A non-retryable failure stops the walk immediately,
// as do OS-level exec errors (missing binary, permission) since those are
// not model-related. If every candidate fails retryably, the last failure
// is surfaced wrapped in ErrRetryExhausted.
func (iv *Invoker) Run(ctx context.Context, models []string, build func(model string) []string, stdin string) (string, error) {
	if len(models) == 0 {
		return "", fmt.Errorf("%w: no candidate models", ErrInvalidInput)
	}

	var last *SubprocessError
	for _, model := range models {
		iv.logger.Debug("invoking gemini", "model", model)

		out, err := iv.runOnce(ctx, build(model), stdin)
		if err == nil {
			return out, nil
		}

		var sub *SubprocessError
		if !errors.As(err, &sub) {
			return "", err
		}
		sub.Model = model
		if !IsRetryable(sub.ExitCode, sub.Stderr) {
			return "", sub
		}

		iv.logger.Warn("model failed with retryable error, trying next",
			"model", model, "exit", sub.ExitCode)
		last = sub
	}
	return "", fmt.Errorf("%w (tried %d models): %v", ErrRetryExhausted, len(models), last)
}

func (iv *Invoker) runOnce(ctx context.Context, argv []string, stdin string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, iv.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, argv[0])
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%w: %s", ErrPermissionDenied, argv[0])
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("gemini did not finish within %s: %w", iv.timeout, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &SubprocessError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return "", fmt.Errorf("run %s: %w", argv[0], err)
	}
	return stdout.String(), nil
}
