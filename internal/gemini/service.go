package gemini

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Service is the core behind every tool and CLI command: validate input,
// locate the executable, build the command, invoke with model fallback.
// Stateless across requests.
type Service struct {
	invoker *Invoker
	root    string
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Service)

// WithTimeout bounds each subprocess run.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithRoot sets the containment root for code review paths. Defaults to
// the process working directory.
func WithRoot(root string) Option {
	return func(s *Service) { s.root = root }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(opts ...Option) *Service {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	s := &Service{
		root:    wd,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.invoker = NewInvoker(s.timeout, s.logger)
	return s
}

// WebSearch validates and sanitizes the query, then runs the Gemini CLI
// with web search enabled, falling back across candidate models.
func (s *Service) WebSearch(ctx context.Context, query, model, allowedTools string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}
	if allowedTools == "" {
		allowedTools = DefaultSearchTools
	}

	bin, err := LocateBin()
	if err != nil {
		return "", err
	}

	prompt := WrapPrompt(query)
	return s.invoker.Run(ctx, Candidates(model), func(m string) []string {
		return SearchCommand(bin, m, allowedTools, prompt)
	}, "")
}

// CodeReview validates the query and path, reads the file, and pipes its
// content to the Gemini CLI with the query as the prompt flag.
func (s *Service) CodeReview(ctx context.Context, filePath, query, model, allowedTools string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}
	if allowedTools == "" {
		allowedTools = DefaultReviewTools
	}

	resolved, err := ValidateFilePath(s.root, filePath)
	if err != nil {
		return "", err
	}
	content, err := ReadTextFile(resolved)
	if err != nil {
		return "", err
	}

	bin, err := LocateBin()
	if err != nil {
		return "", err
	}

	sanitized := Sanitize(query)
	return s.invoker.Run(ctx, Candidates(model), func(m string) []string {
		return ReviewCommand(bin, m, allowedTools, sanitized)
	}, content)
}

// ModelInfo returns the static model description.
func (s *Service) ModelInfo() string {
	return ModelInfo()
}
