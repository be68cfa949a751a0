package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stain-win/passaudit/config"
)

var forceInit bool

// initCmd is the Cobra command for `passaudit init`.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the passaudit configuration file",
	Long: `Creates the passaudit configuration file, populated with the current
settings, at the OS-specific default location (or at --config if given).

Edit it afterwards to tune the log file, report width, generated password
length and the entropy threshold for suggestions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			var err error
			path, err = config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("failed to resolve config path: %w", err)
			}
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			fmt.Printf("passaudit is already configured. Config file found at '%s'.\n", path)
			fmt.Println("Use --force to overwrite it with the current settings.")
			return nil
		}

		if err := config.WriteConfigToFile(cfg, path); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}

		fmt.Printf("Configuration written to '%s'.\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
}
