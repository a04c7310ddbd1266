package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/tokenext"
)

var (
	addPayer string
	addFlags extFlags
)

func init() {
	cmd := newAddCmd()
	cmd.Flags().StringVar(&addPayer, "payer", "", "Account file that pays the rent top-up (required)")
	_ = cmd.MarkFlagRequired("payer")
	addFlags.register(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <account> <kind>",
		Short: "Append an extension to an account",
		Long: `The add command appends a new extension entry to the account's region,
writing the region marker first if the account has none. The payer covers
the additional rent and the account grows by the entry size.

Kinds: transfer-fee, label, close-authority, interest-rate

Example:
  extctl add mint.acct transfer-fee --payer payer.acct --bps 50 --max-fee 5000
  extctl add mint.acct label --payer payer.acct --name "Example" --symbol EXM`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
	return cmd
}

func runAdd(args []string) error {
	path := args[0]
	kind, err := tokenext.ParseKind(args[1])
	if err != nil {
		return err
	}
	ext, err := addFlags.build(kind)
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

	payer, err := openAccount(addPayer)
	if err != nil {
		return err
	}
	defer payer.Close()

	before := len(acct.Data())
	paidFrom := payer.Lamports()

	if err := addExt(e.region, acct, payer, ext); err != nil {
		return fmt.Errorf("failed to add %s: %w", kind, err)
	}
	if err := acct.Flush(); err != nil {
		return err
	}
	if err := payer.Flush(); err != nil {
		return err
	}

	paid := paidFrom - payer.Lamports()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     path,
			"kind":     kind.String(),
			"old_len":  before,
			"new_len":  len(acct.Data()),
			"size":     stateext.WithMetaLen(ext),
			"paid":     paid,
			"lamports": acct.Lamports(),
		})
	}

	printInfo("Added %s to %s\n", kind, path)
	printInfo("  Data: %d -> %d bytes\n", before, len(acct.Data()))
	printInfo("  Paid: %d lamports\n", paid)
	return nil
}
