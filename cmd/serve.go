// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bqbridge/cli/internal/logging"
	"bqbridge/cli/internal/mcpserver"
)

// serveCmd runs the MCP stdio server so an AI assistant can call the same
// four operations the CLI exposes.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve BigQuery operations to an MCP client over stdio",
	Long: `The serve command starts an MCP (Model Context Protocol) server on
stdin/stdout exposing list_datasets, list_tables, describe_table and
execute_query as tools. Each tool call is dispatched synchronously, one at a
time, and returns the same response envelope the CLI prints with --json.

Configuration is resolved once at startup; the server exits when the client
closes the transport.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		d, release, err := newDispatcher(ctx)
		if err != nil {
			return fmt.Errorf("%s", logging.PresentError("failed to start MCP server", err))
		}
		defer release()

		// stdout belongs to the protocol; status goes to stderr.
		fmt.Fprintln(os.Stderr, "bqbridge MCP server listening on stdio")

		return mcpserver.New(d, Version).Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
