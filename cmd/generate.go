package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stain-win/passaudit/audit"
	"github.com/stain-win/passaudit/suggest"
)

var generateLength int

// generateCmd represents the `generate` command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Suggest a strong random password",
	Long: `Generates a random password from a mixed alphabet of letters, digits and
special characters, and checks it against a minimum entropy threshold before
suggesting it. The threshold and the default length come from the
configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		length := cfg.GenerateLength
		if cmd.Flags().Changed("length") {
			length = generateLength
		}

		password, err := suggest.Password(length, cfg.MinEntropyBits)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		classes := audit.Classify(password)
		fmt.Println(password)
		fmt.Printf("length: %d, classes: %s\n", length, strings.Join(classes.Active(), ", "))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateLength, "length", 0, "length of the generated password (default from config)")
}
