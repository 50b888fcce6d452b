package gemini

import (
	"errors"
	"fmt"
)

// Failure classes surfaced at the tool boundary. Everything a tool returns
// wraps one of these so callers can branch without string matching.
var (
	ErrExecutableNotFound = errors.New("the 'gemini' executable was not found in PATH")
	ErrPermissionDenied   = errors.New("permission denied executing the 'gemini' command")
	ErrInvalidInput       = errors.New("invalid input")
	ErrFileNotFound       = errors.New("file not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrNotText            = errors.New("not a text file")
	ErrRetryExhausted     = errors.New("all fallback models failed")
)

// SubprocessError is a nonzero exit from the Gemini CLI with its captured
// stderr. The retryability classifier decides whether fallback continues.
type SubprocessError struct {
	Model    string
	ExitCode int
	Stderr   string
}

func (e *SubprocessError) Error() string {
	msg := e.Stderr
	if msg == "" {
		msg = "unknown error"
	}
	if e.Model != "" {
		return fmt.Sprintf("gemini CLI error (model %s, exit %d): %s", e.Model, e.ExitCode, msg)
	}
	return fmt.Sprintf("gemini CLI error (exit %d): %s", e.ExitCode, msg)
}
