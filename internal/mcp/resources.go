// ABOUTME: MCP resource implementations for training data.
// ABOUTME: Provides biome://overview, biome://history/recent, and biome://weight/history.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// biome://overview - Current-week KPI snapshot
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "biome://overview",
		Name:        "Training Overview",
		Description: "Current-week frequency, volume load, and weak point count",
		MIMEType:    "application/json",
	}, s.handleOverviewResource)

	// biome://history/recent - Last 20 raw log entries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "biome://history/recent",
		Name:        "Recent Training History",
		Description: "Last 20 training log entries, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentHistoryResource)

	// biome://weight/history - Full body weight history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "biome://weight/history",
		Name:        "Body Weight History",
		Description: "All body weight measurements, oldest first",
		MIMEType:    "application/json",
	}, s.handleWeightHistoryResource)
}

// Resource handlers

func (s *Server) handleOverviewResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	overview, err := s.engine.Overview()
	if err != nil {
		return nil, fmt.Errorf("failed to compute overview: %w", err)
	}
	return jsonResource("biome://overview", overview)
}

func (s *Server) handleRecentHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.engine.RecentHistory(20)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	result := map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	}
	return jsonResource("biome://history/recent", result)
}

func (s *Server) handleWeightHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history, err := s.store.WeightHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to get weight history: %w", err)
	}

	result := map[string]interface{}{
		"entries": history,
		"count":   len(history),
	}
	return jsonResource("biome://weight/history", result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
