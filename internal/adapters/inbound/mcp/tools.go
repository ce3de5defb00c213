package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentinit/agentinit/internal/adapters/outbound/config"
	"github.com/agentinit/agentinit/internal/adapters/outbound/scaffold"
	"github.com/agentinit/agentinit/internal/adapters/outbound/scaffoldcfg"
	"github.com/agentinit/agentinit/internal/adapters/outbound/scanner"
	"github.com/agentinit/agentinit/internal/application"
)

// registerTools registers the agentinit MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. contextlint_check
	s.AddTool(
		mcplib.NewTool("contextlint_check",
			mcplib.WithDescription("Lint the project's agent context files for bloat, broken references, router sanity, and duplicate blocks. Returns the full lint result as JSON."),
			mcplib.WithBoolean("duplicates",
				mcplib.Description("Run duplicate-block detection (default: true)"),
			),
		),
		handleCheck(projectPath),
	)

	// 2. contextlint_discover
	s.AddTool(
		mcplib.NewTool("contextlint_discover",
			mcplib.WithDescription("List the context files that would be linted, plus the always-hot subset"),
		),
		handleDiscover(projectPath),
	)

	// 3. agentinit_status
	s.AddTool(
		mcplib.NewTool("agentinit_status",
			mcplib.WithDescription("Report which managed agent context files exist in the project"),
		),
		handleStatus(projectPath),
	)
}

func newLintService() *application.LintService {
	return application.NewLintService(config.New(), scanner.New())
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		duplicates := request.GetBool("duplicates", true)

		result, err := newLintService().Lint(projectPath, "", duplicates)
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleDiscover(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		files, hot, err := newLintService().Discover(projectPath, "")
		if err != nil {
			return errorResult(fmt.Sprintf("discovery failed: %v", err)), nil
		}

		hotList := make([]string, 0, len(hot))
		for _, f := range files {
			if hot[f] {
				hotList = append(hotList, f)
			}
		}
		return jsonResult(struct {
			Files []string `json:"files"`
			Hot   []string `json:"hot"`
		}{files, hotList})
	}
}

func handleStatus(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewScaffoldService(scaffold.New(), scaffoldcfg.New())
		entries := svc.Status(projectPath, nil)
		return jsonResult(entries)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
