package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
)

var registerCmd = &cobra.Command{
	Use:   "register FILE",
	Short: "Submit a registration record without the UI",
	Long: `Submit a registration record read from a YAML or JSON file ("-" reads
stdin) through the configured account backend and print the new account ID.

Examples:
  signup register alice.yaml
  signup register --backend sqlite alice.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) (err error) {
	in, err := readRecord(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, f := range registration.Fields {
		switch f {
		case registration.FieldGender:
			rt.controller.SetGender(in.Gender)
		case registration.FieldTerms:
			rt.controller.SetTerms(in.Terms)
		default:
			if err := rt.controller.Set(f, in.Value(f)); err != nil {
				return err
			}
		}
	}

	receipt, err := rt.controller.Submit(cmd.Context(), rt.creator)
	if err != nil {
		var invalid *form.InvalidError
		if errors.As(err, &invalid) {
			printResult(cmd.OutOrStdout(), invalid.Result)
			return errInvalidRecord
		}
		log.ErrorErr(log.CatAccount, "register failed", err)
		return fmt.Errorf("registering %s: %w", in.Email, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), receipt.ID)
	return err
}
