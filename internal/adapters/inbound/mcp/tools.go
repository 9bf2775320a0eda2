package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/dialoglint/dialoglint/internal/adapters/outbound/config"
	"github.com/dialoglint/dialoglint/internal/adapters/outbound/loader"
	"github.com/dialoglint/dialoglint/internal/application"
	"github.com/dialoglint/dialoglint/internal/domain"
)

// registerTools registers all dialoglint MCP tools on the given server.
func registerTools(s *server.MCPServer, dir string) {
	// 1. dialoglint_lint
	s.AddTool(
		mcplib.NewTool("dialoglint_lint",
			mcplib.WithDescription("Lint a dialog definition file and return the full validation result as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the dialog YAML file to lint"),
			),
			mcplib.WithString("profile",
				mcplib.Description("Convention profile: classic or modern (defaults to the configured profile)"),
			),
		),
		handleLint(dir),
	)

	// 2. dialoglint_lint_source
	s.AddTool(
		mcplib.NewTool("dialoglint_lint_source",
			mcplib.WithDescription("Lint dialog YAML passed inline and return the full validation result as JSON"),
			mcplib.WithString("yaml",
				mcplib.Required(),
				mcplib.Description("Dialog YAML source text"),
			),
			mcplib.WithString("profile",
				mcplib.Description("Convention profile: classic or modern (defaults to the configured profile)"),
			),
		),
		handleLintSource(dir),
	)

	// 3. dialoglint_rules
	s.AddTool(
		mcplib.NewTool("dialoglint_rules",
			mcplib.WithDescription("Return the active rule catalog (id, severity, description) as JSON"),
			mcplib.WithString("profile",
				mcplib.Description("Convention profile: classic or modern (defaults to the configured profile)"),
			),
		),
		handleRules(dir),
	)
}

func newService() *application.LintService {
	return application.NewLintService(loader.New(), configAdapter.New())
}

func handleLint(dir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		profile, _ := request.GetArguments()["profile"].(string)

		result, err := newService().LintFile(dir, file, domain.Profile(profile))
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleLintSource(dir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		source, err := request.RequireString("yaml")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		profile, _ := request.GetArguments()["profile"].(string)

		cfg, err := configAdapter.New().Load(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		if profile != "" {
			cfg.Profile = domain.Profile(profile)
			if err := cfg.Validate(); err != nil {
				return errorResult(err.Error()), nil
			}
		}

		result, err := newService().LintSource("inline", []byte(source), cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleRules(dir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		profile, _ := request.GetArguments()["profile"].(string)

		cfg, err := configAdapter.New().Load(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		if profile != "" {
			cfg.Profile = domain.Profile(profile)
			if err := cfg.Validate(); err != nil {
				return errorResult(err.Error()), nil
			}
		}

		rules, err := newService().ActiveRules(cfg)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(rules)
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
