package gemini

// Default allowed-tool sets and output format passed to the Gemini CLI.
const (
	DefaultSearchTools = "google_web_search"
	DefaultReviewTools = "codebase_investigator"

	defaultOutputFormat = "text"
)

// SearchCommand assembles argv for a web search. The wrapped prompt rides
// as the trailing positional argument.
func SearchCommand(bin, model, allowedTools, prompt string) []string {
	args := []string{bin}
	if model != "" {
		args = append(args, "-m", model)
	}
	return append(args, "-o", defaultOutputFormat, "--allowed-tools", allowedTools, prompt)
}

// ReviewCommand assembles argv for a file review. The query is passed as a
// flag value; file content is delivered over stdin so large files never hit
// the argument list or the process listing.
func ReviewCommand(bin, model, allowedTools, query string) []string {
	args := []string{bin}
	if model != "" {
		args = append(args, "-m", model)
	}
	return append(args, "--allowed-tools", allowedTools, "-p", query)
}
