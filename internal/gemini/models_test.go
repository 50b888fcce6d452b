package gemini

import (
	"strings"
	"testing"
)

func TestCandidates(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		wantFirst string
		wantLen   int
	}{
		{"no preference", "", DefaultModels[0], len(DefaultModels)},
		{"unknown model forced first", "gemini-9-experimental", "gemini-9-experimental", len(DefaultModels) + 1},
		{"known model deduplicated", "gemini-2.5-flash", "gemini-2.5-flash", len(DefaultModels)},
		{"whitespace ignored", "   ", DefaultModels[0], len(DefaultModels)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(tt.preferred)
			if len(got) != tt.wantLen {
				t.Fatalf("got %d candidates %v, want %d", len(got), got, tt.wantLen)
			}
			if got[0] != tt.wantFirst {
				t.Errorf("first candidate = %q, want %q", got[0], tt.wantFirst)
			}
			seen := map[string]bool{}
			for _, m := range got {
				if seen[m] {
					t.Errorf("duplicate candidate %q in %v", m, got)
				}
				seen[m] = true
			}
		})
	}
}

func TestCandidates_PreservesDefaultOrder(t *testing.T) {
	got := Candidates("gemini-2.5-pro")
	if got[0] != "gemini-2.5-pro" {
		t.Fatalf("preferred not first: %v", got)
	}
	// Remaining defaults keep their relative order.
	want := []string{"gemini-2.5-pro", "gemini-3-pro-preview", "gemini-3-flash-preview", "gemini-2.5-flash", "gemini-2.5-flash-lite"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidates = %v, want %v", got, want)
		}
	}
}

func TestModelInfo(t *testing.T) {
	info := ModelInfo()
	for _, m := range DefaultModels {
		if !strings.Contains(info, m) {
			t.Errorf("ModelInfo() missing model %q", m)
		}
	}
}
