// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bqbridge/cli/internal/dispatch"
)

// executeQueryCmd runs a SQL statement and prints the materialized rows.
var executeQueryCmd = &cobra.Command{
	Use:   "execute_query <sql>",
	Short: "Execute a SQL query against BigQuery",
	Long: `The execute_query command runs one SQL statement and prints the result
rows. The statement executes exactly once with no retries; a rejected query
surfaces BigQuery's own diagnostic verbatim.

Quote the statement so the shell passes it as a single argument:

  bqbridge execute_query "SELECT 1 AS x"`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		d, release, err := newDispatcher(ctx)
		if err != nil {
			return renderEnvelope(dispatch.CmdExecuteQuery, dispatch.Failure(err))
		}
		defer release()

		var spinner *pterm.SpinnerPrinter
		if !jsonOutput {
			cursor.Hide()
			defer cursor.Show()
			spinner, _ = pterm.DefaultSpinner.Start("Running query...")
		}

		env := d.Dispatch(ctx, dispatch.Command{Name: dispatch.CmdExecuteQuery, Args: args})

		if spinner != nil {
			_ = spinner.Stop()
		}
		return renderEnvelope(dispatch.CmdExecuteQuery, env)
	},
}

func init() {
	rootCmd.AddCommand(executeQueryCmd)
}
