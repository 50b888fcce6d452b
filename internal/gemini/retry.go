package gemini

import "strings"

// Stderr fragments that indicate a transient capacity problem. Matched
// case-insensitively as substrings.
var retryableSignals = []string{
	"quota",
	"rate limit",
	"rate-limit",
	"ratelimit",
	"throttl",
	"unavailable",
	"exceeded",
	"resource exhausted",
	"overloaded",
	"capacity",
	"429",
	"503",
	"try again",
}

// IsRetryable reports whether a failed invocation looks like a transient
// capacity problem worth retrying with the next candidate model. Pure
// function over the exit code and captured stderr.
func IsRetryable(exitCode int, stderr string) bool {
	if exitCode == 0 {
		return false
	}
	s := strings.ToLower(stderr)
	for _, sig := range retryableSignals {
		if strings.Contains(s, sig) {
			return true
		}
	}
	return false
}
