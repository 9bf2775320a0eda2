package cli

import (
	mcpadapter "github.com/dialoglint/dialoglint/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the dialoglint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start dialoglint MCP server (stdio)",
		Long:  "Start the dialoglint MCP server using stdio transport. This lets AI assistants lint dialog files and inspect the rule catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = "."
			}
			s := mcpadapter.NewDialoglintMCPServer(path)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Directory holding .dialoglint.yaml (defaults to current working directory)")

	return cmd
}
