package main

import (
	"encoding/hex"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/tokenext"
)

var dumpPayload bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpPayload, "payload", false, "Hex-dump each entry's payload")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <account>",
		Short: "Show the raw layout of an account's extension region",
		Long: `The dump command walks every complete entry in the region without
validating tags or states, so it also shows unknown kinds, unknown state
bytes and trailing bytes that do not form a full entry.

Example:
  extctl dump mint.acct
  extctl dump mint.acct --payload
  extctl dump mint.acct --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

type dumpEntry struct {
	Offset  int    `json:"offset"`
	Tag     uint8  `json:"tag"`
	Kind    string `json:"kind"`
	State   string `json:"state"`
	Len     uint16 `json:"len"`
	Payload string `json:"payload,omitempty"`
}

func runDump(args []string) error {
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

	data := acct.Data()
	scan := stateext.ScanData(e.layout, data)

	entries := make([]dumpEntry, 0, len(scan.Entries))
	for _, en := range scan.Entries {
		d := dumpEntry{Offset: en.Offset, Tag: en.Tag, Len: en.Len, Kind: "unknown", State: "invalid"}
		if k, ok := tokenext.Kind(0).FromByte(en.Tag); ok {
			d.Kind = k.String()
		}
		if s, ok := en.State(); ok {
			d.State = s.String()
		}
		if dumpPayload {
			d.Payload = hex.EncodeToString(en.Payload)
		}
		entries = append(entries, d)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":       path,
			"data_len":   len(data),
			"base_len":   e.layout.BaseLen,
			"has_marker": scan.HasMarker,
			"entries":    entries,
			"end":        scan.End,
			"truncated":  scan.Truncated,
		})
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	good := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	printInfo("\n%s\n", bold.Sprintf("Extension Region: %s", path))
	printInfo("%s\n", strings.Repeat("═", 40))
	printInfo("  %s  0x%04x..0x%04x\n", dim.Sprint("base  "), 0, min(e.layout.BaseLen, len(data)))

	if !scan.HasMarker {
		printInfo("  %s\n", warn.Sprint("no extension region"))
		return nil
	}
	start := e.layout.BaseLen
	printInfo("  %s  0x%04x..0x%04x  %s\n", dim.Sprint("marker"), start, start+stateext.MarkerLen,
		hex.EncodeToString(e.layout.Marker[:]))

	for _, d := range entries {
		kind := good.Sprint(d.Kind)
		if d.Kind == "unknown" {
			kind = warn.Sprintf("tag %d", d.Tag)
		}
		state := d.State
		switch d.State {
		case stateext.Zeroed.String():
			state = dim.Sprint(state)
		case "invalid":
			state = bad.Sprint(state)
		}
		printInfo("  %s  0x%04x..0x%04x  %-16s %s\n", dim.Sprint("entry "),
			d.Offset, d.Offset+stateext.MetaLen+int(d.Len), kind, state)
		if d.Payload != "" {
			printInfo("          %s\n", d.Payload)
		}
	}

	if scan.Truncated {
		printInfo("  %s\n", bad.Sprintf("%d trailing bytes at 0x%04x do not form an entry", len(data)-scan.End, scan.End))
	}
	return nil
}
