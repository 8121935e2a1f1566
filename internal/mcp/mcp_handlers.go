package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/codetrail/codetrail/core"
	"github.com/codetrail/codetrail/internal/contract"
	"github.com/codetrail/codetrail/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.RepoSource
	logger  contract.Logger
}

// commitOut is the JSON shape returned by filter_commits.
type commitOut struct {
	Repository string `json:"repository"`
	Hash       string `json:"hash"`
	Summary    string `json:"summary"`
	Author     string `json:"author"`
	Email      string `json:"email"`
	Date       string `json:"date"`
	URL        string `json:"url,omitempty"`
}

// hotspotOut is the JSON shape returned by hotspot_files.
type hotspotOut struct {
	Directory string `json:"directory,omitempty"`
	File      string `json:"file"`
	Changes   int    `json:"changes"`
	Tier      string `json:"tier"`
}

// configFromRequest overlays request parameters onto a clone of the base config.
func (h *toolHandler) configFromRequest(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPaths = []string{p}
	}
	if d := request.GetInt("days", 0); d > 0 {
		cfg.Days = d
	}
	if m := request.GetString("mode", ""); m != "" {
		cfg.Spec.Mode = schema.FilterMode(m)
	}
	if v := request.GetString("email", ""); v != "" {
		cfg.Spec.Emails = splitCriteria(v)
	}
	if v := request.GetString("user", ""); v != "" {
		cfg.Spec.Usernames = splitCriteria(v)
	}
	if v := request.GetString("keyword", ""); v != "" {
		cfg.Spec.Keywords = splitCriteria(v)
	}
	return cfg
}

// splitCriteria turns a comma-separated parameter into a criteria list.
func splitCriteria(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (h *toolHandler) handleFilterCommits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.configFromRequest(request)

	cooked := core.BuildCookedTable(ctx, cfg, h.source, h.logger)

	out := make([]commitOut, 0, cooked.TotalCommits())
	for _, repo := range cooked.Repos() {
		set, _ := cooked.Get(repo)
		for _, rec := range set.Records() {
			out = append(out, commitOut{
				Repository: repo,
				Hash:       rec.Hash,
				Summary:    rec.Summary,
				Author:     rec.AuthorName,
				Email:      rec.AuthorEmail,
				Date:       rec.Date,
				URL:        rec.URL,
			})
		}
	}

	jsonData, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleHotspotFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.configFromRequest(request)

	cooked := core.BuildCookedTable(ctx, cfg, h.source, h.logger)
	rows := core.Hotspot(cooked)

	out := make([]hotspotOut, 0, len(rows))
	for _, r := range rows {
		if r.Separator {
			continue
		}
		out = append(out, hotspotOut{
			Directory: r.GroupKey,
			File:      r.FilePath,
			Changes:   r.Count,
			Tier:      contract.TierLabel(r.Tier),
		})
	}

	jsonData, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
