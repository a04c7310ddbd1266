package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/tokenext"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <account>",
		Short: "List the extension kinds present on an account",
		Long: `The list command prints each recognised extension kind in the order it
was added. Unknown tags are skipped.

Example:
  extctl list mint.acct
  extctl list mint.acct --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
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

	kinds, ok := stateext.Variants[tokenext.Kind](e.region, acct)

	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":       path,
			"has_region": ok,
			"kinds":      names,
		})
	}

	if !ok {
		printInfo("%s has no extension region\n", path)
		return nil
	}
	if len(names) == 0 {
		printInfo("%s has no extensions\n", path)
		return nil
	}
	for _, n := range names {
		printInfo("%s\n", n)
	}
	return nil
}
