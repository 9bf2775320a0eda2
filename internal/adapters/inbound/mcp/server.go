package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDialoglintMCPServer creates a new MCP server with all dialoglint tools
// and resources registered. The dir is the directory whose .dialoglint.yaml
// configures the runs.
func NewDialoglintMCPServer(dir string) *server.MCPServer {
	s := server.NewMCPServer(
		"dialoglint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, dir)
	registerResources(s, dir)

	return s
}
