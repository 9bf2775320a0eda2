package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/dialoglint/dialoglint/internal/adapters/outbound/config"
	"github.com/dialoglint/dialoglint/internal/adapters/outbound/history"
)

// registerResources registers all dialoglint MCP resources on the given
// server.
func registerResources(s *server.MCPServer, dir string) {
	// 1. dialoglint://rules - active rule catalog
	s.AddResource(
		mcplib.NewResource(
			"dialoglint://rules",
			"Rule Catalog",
			mcplib.WithResourceDescription("Active rule catalog for the configured convention profile"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(dir),
	)

	// 2. dialoglint://history - past lint runs
	s.AddResource(
		mcplib.NewResource(
			"dialoglint://history",
			"Lint History",
			mcplib.WithResourceDescription("Recorded lint runs with commit hashes and outcome counts"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(dir),
	)
}

func handleRulesResource(dir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configAdapter.New().Load(dir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		rules, err := newService().ActiveRules(cfg)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(rules, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "dialoglint://rules",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(dir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(dir)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "dialoglint://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
