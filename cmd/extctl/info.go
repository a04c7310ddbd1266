package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/stateext/pkg/stateext"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <account>",
		Short: "Show account header and rent status",
		Long: `The info command prints the account's key, owner, balance and data
length, together with the rent-exempt minimum for that length and the
number of extension entries.

Example:
  extctl info mint.acct
  extctl info mint.acct --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type accountInfo struct {
	File       string `json:"file"`
	Key        string `json:"key"`
	Owner      string `json:"owner"`
	Owned      bool   `json:"owned"`
	Lamports   uint64 `json:"lamports"`
	DataLen    int    `json:"data_len"`
	MinBalance uint64 `json:"min_balance"`
	Exempt     bool   `json:"rent_exempt"`
	HasRegion  bool   `json:"has_region"`
	Extensions int    `json:"extensions"`
}

func runInfo(args []string) error {
	path := args[0]

	e, err := loadEnv()
	if err != nil {
		return err
	}

	acct, err := openAccount(path)
	if err != nil {
		return err
	}
	defer acct.Close()

	dataLen := len(acct.Data())
	scan := stateext.ScanData(e.layout, acct.Data())
	info := accountInfo{
		File:       path,
		Key:        acct.Key().String(),
		Owner:      acct.Owner().String(),
		Owned:      acct.Owner().Equal(e.layout.Owner),
		Lamports:   acct.Lamports(),
		DataLen:    dataLen,
		MinBalance: e.rent.MinimumBalance(dataLen),
		Exempt:     e.rent.IsExempt(acct.Lamports(), dataLen),
		HasRegion:  scan.HasMarker,
		Extensions: len(scan.Entries),
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nAccount Information:\n")
	printInfo("  File:        %s\n", info.File)
	printInfo("  Key:         %s\n", info.Key)
	printInfo("  Owner:       %s\n", info.Owner)
	if !info.Owned {
		printInfo("               (not owned by %s)\n", e.layout.Owner)
	}
	printInfo("  Lamports:    %d\n", info.Lamports)
	printInfo("  Data:        %d bytes\n", info.DataLen)
	printInfo("  Rent-exempt: %d lamports (exempt: %t)\n", info.MinBalance, info.Exempt)
	printInfo("  Extensions:  %d\n", info.Extensions)
	return nil
}
