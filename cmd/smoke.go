// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bqbridge/cli/internal/bq"
	"bqbridge/cli/internal/dispatch"
)

// testCmd runs every operation once against the live project: list the
// datasets, list the tables of the first dataset, describe the first table,
// then execute SELECT 1. It stops at the first failure.
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run every BigQuery operation once as a connectivity check",
	Long: `The test command verifies the whole setup end to end. It lists datasets,
lists the tables of the first dataset, describes the first table it finds and
finally executes "SELECT 1 AS test". The first failing step aborts the run
with that step's error.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		d, release, err := newDispatcher(ctx)
		if err != nil {
			return renderEnvelope("test", dispatch.Failure(err))
		}
		defer release()

		cursor.Hide()
		defer cursor.Show()

		pterm.Println(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("bqbridge connectivity test"))
		pterm.Println()

		// Step 1: datasets
		pterm.Println("→ Listing datasets...")
		env := d.Dispatch(ctx, dispatch.Command{Name: dispatch.CmdListDatasets})
		if err := renderEnvelope(dispatch.CmdListDatasets, env); err != nil {
			return err
		}
		datasets, _ := env.Payload.([]string)
		if len(datasets) == 0 {
			pterm.Println("No datasets visible; skipping table checks.")
			return runSmokeQuery(cmd, d)
		}

		// Step 2: tables of the first dataset
		datasetID := datasets[0]
		pterm.Println()
		pterm.Printf("→ Listing tables in %s...\n", datasetID)
		env = d.Dispatch(ctx, dispatch.Command{Name: dispatch.CmdListTables, Args: []string{datasetID}})
		if err := renderEnvelope(dispatch.CmdListTables, env); err != nil {
			return err
		}

		// Step 3: schema of the first table
		if tables, _ := env.Payload.([]bq.TableDescriptor); len(tables) > 0 {
			tableID := tables[0].TableID
			pterm.Println()
			pterm.Printf("→ Describing %s.%s...\n", datasetID, tableID)
			env = d.Dispatch(ctx, dispatch.Command{Name: dispatch.CmdDescribeTable, Args: []string{datasetID, tableID}})
			if err := renderEnvelope(dispatch.CmdDescribeTable, env); err != nil {
				return err
			}
		}

		return runSmokeQuery(cmd, d)
	},
}

// runSmokeQuery executes the final SELECT 1 step of the connectivity test.
func runSmokeQuery(cmd *cobra.Command, d *dispatch.Dispatcher) error {
	pterm.Println()
	pterm.Println("→ Executing SELECT 1 AS test...")
	env := d.Dispatch(cmd.Context(), dispatch.Command{Name: dispatch.CmdExecuteQuery, Args: []string{"SELECT 1 AS test"}})
	if err := renderEnvelope(dispatch.CmdExecuteQuery, env); err != nil {
		return err
	}
	pterm.Println()
	pterm.Println("✅ Test completed successfully!")
	return nil
}

func init() {
	rootCmd.AddCommand(testCmd)
}
