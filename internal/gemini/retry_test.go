package gemini

import "testing"

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		stderr   string
		want     bool
	}{
		{"quota exceeded", 1, "Error: quota exceeded for project", true},
		{"rate limit", 1, "you have hit the Rate Limit", true},
		{"rate-limit hyphenated", 1, "rate-limited by upstream", true},
		{"throttled", 2, "request throttled, slow down", true},
		{"model unavailable", 1, "model temporarily UNAVAILABLE", true},
		{"resource exhausted", 1, "RESOURCE EXHAUSTED: try later", true},
		{"overloaded", 1, "the model is overloaded", true},
		{"http 429", 1, "server returned 429", true},
		{"http 503", 1, "got 503 from backend", true},
		{"try again", 1, "please try again later", true},
		{"auth failure", 1, "invalid API key", false},
		{"syntax error", 2, "unknown flag: --bogus", false},
		{"empty stderr", 1, "", false},
		{"zero exit never retryable", 0, "quota exceeded", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsRetryable(tt.exitCode, tt.stderr)
			if got != tt.want {
				t.Errorf("IsRetryable(%d, %q) = %v, want %v", tt.exitCode, tt.stderr, got, tt.want)
			}
		})
	}
}
