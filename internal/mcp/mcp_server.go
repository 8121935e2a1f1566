// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/codetrail/codetrail/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the codetrail MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.RepoSource, logger contract.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"Codetrail Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
		logger:  logger,
	}

	// --- 1. Tool: filter_commits ---
	s.AddTool(mcp.NewTool("filter_commits",
		mcp.WithDescription("Collect recent git commits across repositories and filter them by author email, author name, or keyword."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured path if not specified).")),
		mcp.WithNumber("days", mcp.Description("Lookback window in days.")),
		mcp.WithString("mode", mcp.Description("Filter mode (union, intersection). Defaults to 'union'."), mcp.Enum("union", "intersection")),
		mcp.WithString("email", mcp.Description("Comma-separated author emails to match.")),
		mcp.WithString("user", mcp.Description("Comma-separated author names to match.")),
		mcp.WithString("keyword", mcp.Description("Comma-separated keywords searched in message and diff text.")),
	), h.handleFilterCommits)

	// --- 2. Tool: hotspot_files ---
	s.AddTool(mcp.NewTool("hotspot_files",
		mcp.WithDescription("Rank files by change frequency over the filtered commit set, grouped by repository and top-level directory with severity tiers."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("days", mcp.Description("Lookback window in days.")),
		mcp.WithString("mode", mcp.Description("Filter mode (union, intersection)."), mcp.Enum("union", "intersection")),
		mcp.WithString("email", mcp.Description("Comma-separated author emails to match.")),
		mcp.WithString("user", mcp.Description("Comma-separated author names to match.")),
		mcp.WithString("keyword", mcp.Description("Comma-separated keywords searched in message and diff text.")),
	), h.handleHotspotFiles)

	return s
}

// StartMCPServer starts the codetrail MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.RepoSource, logger contract.Logger) error {
	s := NewMCPServer(baseCfg, source, logger)
	return server.ServeStdio(s)
}
