// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"bqbridge/cli/internal/dispatch"
)

// describeTableCmd prints the schema of one table as an ordered field list.
var describeTableCmd = &cobra.Command{
	Use:   "describe_table <dataset_id> <table_id>",
	Short: "Describe the schema of a BigQuery table",
	Long: `The describe_table command fetches the schema of one table and prints it
as an ordered list of fields with name, type, mode and description. Repeated
calls against an unchanged table return identical output.`,
	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runDispatch(cmd, dispatch.Command{Name: dispatch.CmdDescribeTable, Args: args})
	},
}

func init() {
	rootCmd.AddCommand(describeTableCmd)
}
