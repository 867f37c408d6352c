// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"bqbridge/cli/internal/dispatch"
)

// listDatasetsCmd enumerates the dataset ids visible to the credential.
var listDatasetsCmd = &cobra.Command{
	Use:   "list_datasets",
	Short: "List BigQuery datasets in the configured project",
	Long: `The list_datasets command enumerates every dataset id visible to the
configured credential. When a dataset filter is set (via --datasets or
BIGQUERY_DATASET_FILTER), only datasets in the allow-list are shown.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runDispatch(cmd, dispatch.Command{Name: dispatch.CmdListDatasets})
	},
}

func init() {
	rootCmd.AddCommand(listDatasetsCmd)
}
