package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stateext/pkg/tokenext"
)

func init() {
	rootCmd.AddCommand(newZeroCmd())
}

func newZeroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zero <account> <kind>",
		Short: "Clear an extension's payload",
		Long: `The zero command clears the payload of the first extension of the given
kind and marks it zeroed. The entry keeps its slot and the account keeps
its size. Zeroing an already zeroed extension is an error.

Example:
  extctl zero mint.acct close-authority`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZero(args)
		},
	}
	return cmd
}

func runZero(args []string) error {
	path := args[0]
	kind, err := tokenext.ParseKind(args[1])
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	acct, err := openAccount(path)
	if err != nil {
		return err
	}
	defer acct.Close()

	if _, ok := getExt(e.region, acct, kind); !ok {
		printInfo("No %s extension on %s\n", kind, path)
		return nil
	}

	if err := zeroExt(e.region, acct, kind); err != nil {
		return fmt.Errorf("failed to zero %s: %w", kind, err)
	}
	if err := acct.Flush(); err != nil {
		return err
	}

	printInfo("Zeroed %s on %s\n", kind, path)
	return nil
}
