package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stain-win/passaudit/audit"
	"github.com/stain-win/passaudit/auditlog"
	"github.com/stain-win/passaudit/tui"
)

var (
	firstName string
	lastName  string
	dob       string
	asJSON    bool
)

// auditCmd represents the `audit` command.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a single password",
	Long: `Audits one password against the owner's personal data and complexity
heuristics and prints a scored report.

Name, surname and date of birth can be passed as flags; anything missing is
prompted on standard input. The password itself is always read with terminal
echo disabled and is never logged or stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		var err error
		if !cmd.Flags().Changed("first-name") {
			if firstName, err = promptLine(reader, "First name (as it might appear in the password): "); err != nil {
				return err
			}
		}
		if !cmd.Flags().Changed("last-name") {
			if lastName, err = promptLine(reader, "Last name (as it might appear in the password): "); err != nil {
				return err
			}
		}
		if !cmd.Flags().Changed("dob") {
			if dob, err = promptLine(reader, "Date of birth (DD.MM.YYYY): "); err != nil {
				return err
			}
		}

		fmt.Print("Password to check: ")
		pw, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println() // Newline after password input

		result := audit.Analyze(strings.TrimSpace(string(pw)), firstName, lastName, dob)
		auditlog.Get().Info("password audited",
			"score", result.Score,
			"issues", len(result.Issues),
		)

		if asJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(tui.Report(result, cfg.ReportWidth))
		return nil
	},
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	auditCmd.Flags().StringVar(&firstName, "first-name", "", "first name to check against the password")
	auditCmd.Flags().StringVar(&lastName, "last-name", "", "last name to check against the password")
	auditCmd.Flags().StringVar(&dob, "dob", "", "date of birth in DD.MM.YYYY format")
	auditCmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
}
