package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stateext/pkg/tokenext"
)

var updateFlags extFlags

func init() {
	cmd := newUpdateCmd()
	updateFlags.register(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <account> <kind>",
		Short: "Rewrite an existing extension in place",
		Long: `The update command overwrites the payload of the first extension of the
given kind. The account does not grow. An account without that extension
is left untouched; a zeroed extension cannot be updated.

Example:
  extctl update mint.acct transfer-fee --bps 75 --max-fee 9000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(args)
		},
	}
	return cmd
}

func runUpdate(args []string) error {
	path := args[0]
	kind, err := tokenext.ParseKind(args[1])
	if err != nil {
		return err
	}
	ext, err := updateFlags.build(kind)
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

	if err := updateExt(e.region, acct, kind, ext); err != nil {
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}
	if err := acct.Flush(); err != nil {
		return err
	}

	printInfo("Updated %s on %s\n", kind, path)
	return nil
}
