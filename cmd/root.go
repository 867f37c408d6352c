// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the bqbridge application.
// It implements subcommands for BigQuery dataset/table discovery, schema
// inspection and query execution using the Cobra CLI framework, plus an MCP
// stdio server mode. Every data command flows through the same dispatcher and
// returns the same response envelope regardless of transport.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bqbridge/cli/internal/bq"
	"bqbridge/cli/internal/config"
	"bqbridge/cli/internal/dispatch"
	"bqbridge/cli/internal/keychain"
)

var (
	showVersion bool
	jsonOutput  bool

	flagProject     string
	flagLocation    string
	flagCredentials string
	flagDatasets    string
)

// errReported marks failures that were already rendered to the user; Execute
// exits non-zero without printing them again.
var errReported = errors.New("command failed")

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the bqbridge CLI application.
var rootCmd = &cobra.Command{
	Use:           "bqbridge",
	Short:         "bqbridge CLI for BigQuery discovery and queries",
	Long:          `bqbridge is a command-line tool that exposes BigQuery operations (list datasets, list tables, describe a table schema, execute a query) through a synchronous dispatcher, and can serve the same operations to an AI assistant over MCP stdio.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("bqbridge %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "Print the raw response envelope as JSON")
	pf.StringVar(&flagProject, "project", "", "BigQuery project id (overrides "+config.EnvProject+")")
	pf.StringVar(&flagLocation, "location", "", "BigQuery location (overrides "+config.EnvLocation+")")
	pf.StringVar(&flagCredentials, "credentials", "", "Path to a service-account JSON file (overrides "+config.EnvCredentialsFile+")")
	pf.StringVar(&flagDatasets, "datasets", "", "Comma-separated dataset allow-list (overrides "+config.EnvDatasetFilter+")")
}

// resolveConfig builds the immutable configuration for this invocation.
// Precedence: flags, then environment, then persisted defaults; the OS
// keychain is the last fallback for the credentials file only.
func resolveConfig() (config.Config, error) {
	defaults, err := config.LoadDefaults()
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Resolve(os.Getenv, config.Overrides{
		Project:         flagProject,
		Location:        flagLocation,
		CredentialsFile: flagCredentials,
		DatasetFilter:   flagDatasets,
	}, defaults)
	if err != nil {
		return config.Config{}, err
	}

	if cfg.CredentialsFile == "" {
		if km, err := keychain.GetManager(); err == nil {
			if path, err := km.LoadCredentialsFile(); err == nil {
				cfg.CredentialsFile = path
			}
		}
	}

	return cfg, nil
}

// newDispatcher resolves configuration and opens the BigQuery adapter once
// for this invocation. The returned func releases the client.
func newDispatcher(ctx context.Context) (*dispatch.Dispatcher, func(), error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}

	adapter, err := bq.NewAdapter(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return dispatch.New(adapter), func() { _ = adapter.Close() }, nil
}

// runDispatch executes one command against a fresh dispatcher and renders
// the resulting envelope. Returns errReported on any error envelope so the
// process exits non-zero.
func runDispatch(cmd *cobra.Command, c dispatch.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, release, err := newDispatcher(ctx)
	if err != nil {
		return renderEnvelope(c.Name, dispatch.Failure(err))
	}
	defer release()

	return renderEnvelope(c.Name, d.Dispatch(ctx, c))
}
