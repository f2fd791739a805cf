// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitreport/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitreport MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"gitreport Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	s.AddTool(mcp.NewTool("get_commit_report",
		mcp.WithDescription("Summarize git history: commits per month, commits per weekday and files touched per commit."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the directory the server was started for).")),
	), h.handleGetCommitReport)

	return s
}

// StartMCPServer starts the gitreport MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
