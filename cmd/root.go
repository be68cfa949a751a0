package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stain-win/passaudit/auditlog"
	"github.com/stain-win/passaudit/config"
	"github.com/stain-win/passaudit/tui"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "passaudit",
	Short: "Passaudit evaluates how guessable a password is.",
	Long: `Passaudit checks a password against the owner's personal data (name,
surname, date of birth) and generic complexity heuristics, then reports a
1-10 score with the detected risks and recommendations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		auditlog.Init(auditlog.ParseLevel(cfg.LogLevel), cfg.LogFile, cfg.Production)

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch the interactive TUI.
		if err := tui.Run(cfg); err != nil {
			if strings.Contains(err.Error(), "open /dev/tty") {
				fmt.Println("Error: Could not open a new TTY. Please run passaudit in a real terminal (not in an IDE or redirected environment).\nDetails:", err)
			} else {
				fmt.Println("TUI exited with error:", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the passaudit config file")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
