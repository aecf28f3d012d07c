// ABOUTME: MCP server for transcript inspection by AI agents.
// ABOUTME: Provides tools over stdio; never needs Google access.

package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

type Server struct {
	server *mcp.Server
	logger zerolog.Logger
}

func NewServer(logger zerolog.Logger) *Server {
	s := &Server{logger: logger}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "slackdump2markdown",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools: true,
		},
	)

	s.registerTools()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
