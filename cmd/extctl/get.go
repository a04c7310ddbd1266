package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stateext/pkg/tokenext"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <account> <kind>",
		Short: "Show one extension",
		Long: `The get command decodes the first extension of the given kind.

Example:
  extctl get mint.acct transfer-fee
  extctl get mint.acct label --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
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

	f, ok := getExt(e.region, acct, kind)
	if !ok {
		return fmt.Errorf("no %s extension on %s", kind, path)
	}

	if jsonOut {
		return printJSON(f)
	}

	printInfo("%s @ 0x%x (%s, %d bytes)\n", f.Kind, f.Offset, f.State, f.Len)
	for _, kv := range describe(f.Value) {
		printInfo("  %-15s %s\n", kv[0]+":", kv[1])
	}
	return nil
}
