// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bqbridge/cli/internal/config"
)

// configCmd groups the subcommands managing persisted defaults.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted defaults for project and location",
	Long: `The config commands manage defaults persisted in the XDG config dir.
Persisted values sit below environment variables in precedence: flags beat
` + config.EnvProject + `/` + config.EnvLocation + `, which beat these saved defaults.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <project|location> <value>",
	Short: "Persist a default value",
	Args:  cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		d, err := config.LoadDefaults()
		if err != nil {
			return err
		}

		switch key {
		case "project":
			d.Project = value
		case "location":
			d.Location = value
		default:
			return fmt.Errorf("unknown config key %q (expected project or location)", key)
		}

		if err := config.SaveDefaults(d); err != nil {
			return err
		}
		pterm.Printf("✅ Saved default %s = %s\n", key, value)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show persisted defaults",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := config.LoadDefaults()
		if err != nil {
			return err
		}

		if d.Project == "" && d.Location == "" {
			pterm.Println("No persisted defaults.")
			return nil
		}

		data := pterm.TableData{{"Key", "Value"}}
		if d.Project != "" {
			data = append(data, []string{"project", d.Project})
		}
		if d.Location != "" {
			data = append(data, []string{"location", d.Location})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <project|location>",
	Short: "Remove a persisted default",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := config.LoadDefaults()
		if err != nil {
			return err
		}

		switch args[0] {
		case "project":
			d.Project = ""
		case "location":
			d.Location = ""
		default:
			return fmt.Errorf("unknown config key %q (expected project or location)", args[0])
		}

		if err := config.SaveDefaults(d); err != nil {
			return err
		}
		pterm.Printf("✅ Removed default %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}
