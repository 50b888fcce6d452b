package gemini

import "strings"

// DefaultModels is the fallback order, strongest first. The invoker walks
// this list until one model answers.
var DefaultModels = []string{
	"gemini-3-pro-preview",
	"gemini-3-flash-preview",
	"gemini-2.5-pro",
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
}

// Candidates returns the candidate list for one invocation: preferred (if
// any) forced to the front, then the defaults, deduplicated in order.
func Candidates(preferred string) []string {
	out := make([]string, 0, len(DefaultModels)+1)
	seen := make(map[string]bool, len(DefaultModels)+1)

	add := func(m string) {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			return
		}
		seen[m] = true
		out = append(out, m)
	}

	add(preferred)
	for _, m := range DefaultModels {
		add(m)
	}
	return out
}

// ModelInfo returns a static description of the known models. No external
// invocation happens here.
func ModelInfo() string {
	return `Known Gemini models, in fallback order:

  gemini-3-pro-preview     strongest reasoning, slowest; best for code review
  gemini-3-flash-preview   fast preview model with good quality
  gemini-2.5-pro           stable deep-reasoning model
  gemini-2.5-flash         stable fast model; good default for web search
  gemini-2.5-flash-lite    cheapest and fastest, for simple lookups

Pass a model name to try it first; on quota or capacity errors the next
model in the list is tried automatically.`
}
