package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewAgentInitMCPServer creates an MCP server with the agentinit tools and
// resources registered. projectPath is the root of the project to lint.
func NewAgentInitMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"agentinit",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
