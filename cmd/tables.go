// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"bqbridge/cli/internal/dispatch"
)

// listTablesCmd enumerates the tables of one dataset.
var listTablesCmd = &cobra.Command{
	Use:   "list_tables <dataset_id>",
	Short: "List the tables of a BigQuery dataset",
	Long: `The list_tables command enumerates the tables of one dataset. A dataset
that does not exist, or that falls outside the configured dataset filter, is
reported as not found.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runDispatch(cmd, dispatch.Command{Name: dispatch.CmdListTables, Args: args})
	},
}

func init() {
	rootCmd.AddCommand(listTablesCmd)
}
