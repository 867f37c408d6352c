// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bqbridge/cli/internal/config"
	"bqbridge/cli/internal/keychain"
)

// credentialsCmd groups the subcommands managing the stored service-account
// credentials file path.
var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manage the stored service-account credentials file",
	Long: `The credentials commands store the path to a Google service-account JSON
file in the OS keychain (macOS Keychain or Windows Credential Manager). The
stored path is used when neither --credentials nor ` + config.EnvCredentialsFile + `
is set. Only the path is stored, never the key material itself.`,
}

var credentialsSetCmd = &cobra.Command{
	Use:   "set <path>",
	Short: "Store the path to a service-account JSON file",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("credentials file not readable: %w", err)
		}

		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system")
			pterm.Println("   Keychain is only supported on macOS and Windows")
			return err
		}

		if err := km.SaveCredentialsFile(path); err != nil {
			return err
		}
		pterm.Println("✅ Credentials file path stored in OS keychain")
		return nil
	},
}

var credentialsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored credentials file path",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system")
			return err
		}

		path, err := km.LoadCredentialsFile()
		if err != nil {
			pterm.Println("⚠️  No credentials file configured")
			pterm.Println("   Run: bqbridge credentials set <path>")
			return nil
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Credentials file")).
			WithPadding(1).
			Println(path)
		return nil
	},
}

var credentialsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored credentials file path",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system")
			return err
		}

		if err := km.ClearCredentialsFile(); err != nil {
			return err
		}
		pterm.Println("✅ Stored credentials file path removed")
		return nil
	},
}

func init() {
	credentialsCmd.AddCommand(credentialsSetCmd)
	credentialsCmd.AddCommand(credentialsShowCmd)
	credentialsCmd.AddCommand(credentialsClearCmd)
	rootCmd.AddCommand(credentialsCmd)
}
