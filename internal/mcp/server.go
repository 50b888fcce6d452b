package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ondrask/gemini-mcp/internal/gemini"
)

const serverName = "gemini-research"

// Server wraps the MCP SDK server with the Gemini service. Constructed once
// at startup; tools are registered in the constructor, never afterwards.
type Server struct {
	svc    *gemini.Service
	mcp    *mcp.Server
	logger *slog.Logger
}

func NewServer(svc *gemini.Service, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{svc: svc, logger: logger}

	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	mcp.AddTool(srv, &mcp.Tool{
		Name: "web_search",
		Description: "Perform a web search using the Gemini CLI. " +
			"Returns the raw answer text. Pass a model to try it first; " +
			"on quota or capacity errors the next known model is tried automatically.",
	}, s.webSearch)
	mcp.AddTool(srv, &mcp.Tool{
		Name: "code_review",
		Description: "Analyze a local source code file using the Gemini CLI. " +
			"The file must live under the server's working directory and " +
			"contain valid UTF-8 text.",
	}, s.codeReview)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "model_info",
		Description: "Describe the known Gemini models and their fallback order. No external call.",
	}, s.modelInfo)

	s.mcp = srv
	return s
}

// Run serves MCP over stdio until the client disconnects or ctx is
// cancelled. Cancellation terminates any in-flight subprocess.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server", "name", serverName)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
