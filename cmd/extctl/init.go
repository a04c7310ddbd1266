package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stateext/account"
	"github.com/joshuapare/stateext/pkg/types"
)

var (
	initLamports uint64
	initOwner    string
	initKey      string
	initDataLen  int
)

func init() {
	cmd := newInitCmd()
	cmd.Flags().Uint64Var(&initLamports, "lamports", 0, "Starting balance (default: rent-exempt minimum for the data length)")
	cmd.Flags().StringVar(&initOwner, "owner", "", "Owning program key (default: layout.owner)")
	cmd.Flags().StringVar(&initKey, "key", "", "Account key (default: derived from the file path)")
	cmd.Flags().IntVar(&initDataLen, "data-len", -1, "Data length in bytes (default: layout.base_len)")
	rootCmd.AddCommand(cmd)
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <account>",
		Short: "Create an account file",
		Long: `The init command creates a new account file with a zeroed base record.
Payer accounts are created the same way; give them enough lamports to fund
the extensions they will pay for.

Example:
  extctl init mint.acct
  extctl init payer.acct --lamports 10000000 --data-len 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args)
		},
	}
	return cmd
}

func runInit(args []string) error {
	path := args[0]

	e, err := loadEnv()
	if err != nil {
		return err
	}

	dataLen := initDataLen
	if dataLen < 0 {
		dataLen = e.layout.BaseLen
	}

	owner := e.layout.Owner
	if initOwner != "" {
		if owner, err = types.ParsePubkey(initOwner); err != nil {
			return fmt.Errorf("--owner: %w", err)
		}
	}

	var key types.Pubkey
	if initKey != "" {
		if key, err = types.ParsePubkey(initKey); err != nil {
			return fmt.Errorf("--key: %w", err)
		}
	} else {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		key = types.DerivePubkey(abs)
	}

	lamports := initLamports
	if lamports == 0 {
		lamports = e.rent.MinimumBalance(dataLen)
	}

	printVerbose("Creating account: %s\n", path)
	acct, err := account.Create(path, account.Header{Key: key, Owner: owner, Lamports: lamports}, dataLen)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	defer acct.Close()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     path,
			"key":      acct.Key(),
			"owner":    acct.Owner(),
			"lamports": acct.Lamports(),
			"data_len": len(acct.Data()),
		})
	}

	printInfo("Created %s\n", path)
	printInfo("  Key:      %s\n", acct.Key())
	printInfo("  Owner:    %s\n", acct.Owner())
	printInfo("  Lamports: %d\n", acct.Lamports())
	printInfo("  Data:     %d bytes\n", len(acct.Data()))
	return nil
}
