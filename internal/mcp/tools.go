package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Every failure becomes a text result prefixed "Error: ", never a protocol
// fault. Clients always get output to show the model.

type WebSearchArgs struct {
	Query        string `json:"query" jsonschema:"The search query to execute"`
	Model        string `json:"model,omitempty" jsonschema:"Gemini model to try first (e.g. gemini-2.5-flash). Falls back across known models on capacity errors."`
	AllowedTools string `json:"allowed_tools,omitempty" jsonschema:"Tool set the Gemini CLI may use (default: google_web_search)"`
}

func (s *Server) webSearch(ctx context.Context, req *mcp.CallToolRequest, args WebSearchArgs) (*mcp.CallToolResult, any, error) {
	out, err := s.svc.WebSearch(ctx, args.Query, args.Model, args.AllowedTools)
	if err != nil {
		s.logger.Warn("web_search failed", "err", err)
		return errorResult(err), nil, nil
	}
	return textResult(out), nil, nil
}

type CodeReviewArgs struct {
	FilePath     string `json:"file_path" jsonschema:"Path to the file to review, inside the server's working directory"`
	Query        string `json:"query" jsonschema:"The instruction or question about the code (e.g. 'Review for security issues')"`
	Model        string `json:"model,omitempty" jsonschema:"Gemini model to try first. Falls back across known models on capacity errors."`
	AllowedTools string `json:"allowed_tools,omitempty" jsonschema:"Tool set the Gemini CLI may use (default: codebase_investigator)"`
}

func (s *Server) codeReview(ctx context.Context, req *mcp.CallToolRequest, args CodeReviewArgs) (*mcp.CallToolResult, any, error) {
	out, err := s.svc.CodeReview(ctx, args.FilePath, args.Query, args.Model, args.AllowedTools)
	if err != nil {
		s.logger.Warn("code_review failed", "file", args.FilePath, "err", err)
		return errorResult(err), nil, nil
	}
	return textResult(out), nil, nil
}

type ModelInfoArgs struct{}

func (s *Server) modelInfo(ctx context.Context, req *mcp.CallToolRequest, args ModelInfoArgs) (*mcp.CallToolResult, any, error) {
	return textResult(s.svc.ModelInfo()), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: errorText(err)}},
		IsError: true,
	}
}

// errorText renders any failure as the flat "Error: ..." string clients
// expect.
func errorText(err error) string {
	return "Error: " + err.Error()
}
