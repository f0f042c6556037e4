package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/signup/internal/i18n"
	"github.com/zjrosen/signup/internal/registration"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a registration record",
	Long: `Validate a registration record read from a YAML or JSON file ("-" reads
stdin) and print each field error in the configured language.

Exits non-zero when the record is invalid.

Examples:
  signup check alice.yaml
  signup check --locale my alice.json
  echo '{"name": "Al"}' | signup check -`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	catalog, err := i18n.Load(cfg.Locale, cfg.MessagesFile)
	if err != nil {
		return fmt.Errorf("loading messages: %w", err)
	}

	in, err := readRecord(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result := catalog.Validator().Validate(in)
	if !result.Valid() {
		printResult(out, result)
		return errInvalidRecord
	}

	_, _ = fmt.Fprintln(out, "ok")
	if s := registration.PasswordStrength(in.Password); s != registration.StrengthNone {
		_, _ = fmt.Fprintf(out, "%s %s\n", catalog.Get("strength.label"), catalog.Strength(s))
	}
	return nil
}
