package mcp

import (
	"context"
	"fmt"

	"github.com/huangsam/gitreport/core"
	"github.com/huangsam/gitreport/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// handleGetCommitReport returns the plain-text report. Failures are reported
// as tool errors so the server keeps running.
func (h *toolHandler) handleGetCommitReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		repoPath, err := contract.ResolveRepoPath(p)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid repo_path: %v", err)), nil
		}
		cfg.RepoPath = repoPath
	}

	text, err := core.RenderReport(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}
