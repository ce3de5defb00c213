package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers the agentinit MCP resources on the server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			"contextlint://result",
			"Lint Result",
			mcplib.WithResourceDescription("Current contextlint result for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleResultResource(projectPath),
	)
}

func handleResultResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		result, err := newLintService().Lint(projectPath, "", true)
		if err != nil {
			return nil, fmt.Errorf("lint failed: %w", err)
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling result: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "contextlint://result",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
