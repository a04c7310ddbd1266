package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stateext/pkg/tokenext"
	"github.com/joshuapare/stateext/pkg/types"
)

// setupAccounts creates a 64-byte mint and a well funded, data-less payer.
func setupAccounts(t *testing.T) (mint, payer string) {
	t.Helper()
	dir := t.TempDir()
	mint = filepath.Join(dir, "mint.acct")
	payer = filepath.Join(dir, "payer.acct")

	_, err := captureOutput(t, func() error { return runInit([]string{mint}) })
	require.NoError(t, err)

	initLamports, initDataLen = 10_000_000, 0
	_, err = captureOutput(t, func() error { return runInit([]string{payer}) })
	require.NoError(t, err)
	initLamports, initDataLen = 0, -1

	addPayer = payer
	return mint, payer
}

func addFee(t *testing.T, mint string, bps uint16, maxFee uint64) string {
	t.Helper()
	addFlags = extFlags{bps: bps, maxFee: maxFee, epoch: 3}
	out, err := captureOutput(t, func() error { return runAdd([]string{mint, "transfer-fee"}) })
	require.NoError(t, err)
	return out
}

func TestInitAndInfo(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "a.acct")

	out, err := captureOutput(t, func() error { return runInit([]string{path}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"Created", "Data:     64 bytes"})

	out, err = captureOutput(t, func() error { return runInfo([]string{path}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"Account Information", "Extensions:  0", "exempt: true"})

	jsonOut = true
	out, err = captureOutput(t, func() error { return runInfo([]string{path}) })
	require.NoError(t, err)
	info := decodeJSON(t, out)
	assert.Equal(t, float64(64), info["data_len"])
	assert.Equal(t, true, info["owned"])
	assert.Equal(t, false, info["has_region"])
}

func TestRootLoadsConfigOnce(t *testing.T) {
	resetFlags(t)
	quiet = true
	t.Cleanup(func() { cfg = nil })

	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))
	require.NotNil(t, cfg)

	// The file is gone; commands still see what the root loaded.
	require.NoError(t, os.Remove(cfgPath))
	e, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, 64, e.layout.BaseLen)
	assert.Same(t, cfg, e.cfg)

	cfg = nil
	_, err = loadEnv()
	require.Error(t, err)
}

func TestInitExplicitKey(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "a.acct")
	key := types.DerivePubkey("mint")
	initKey = key.String()

	out, err := captureOutput(t, func() error { return runInit([]string{path}) })
	require.NoError(t, err)
	assertContains(t, out, []string{key.String()})

	initKey = "not-base58-0OIl"
	_, err = captureOutput(t, func() error { return runInit([]string{path + "2"}) })
	require.Error(t, err)
}

func TestAddGetList(t *testing.T) {
	resetFlags(t)
	mint, payer := setupAccounts(t)

	out := addFee(t, mint, 50, 5000)
	assertContains(t, out, []string{"Added transfer-fee", "Data: 64 -> 94 bytes"})

	addFlags = extFlags{name: "Example", symbol: "EXM"}
	out, err := captureOutput(t, func() error { return runAdd([]string{mint, "label"}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"Data: 94 -> 146 bytes"})

	out, err = captureOutput(t, func() error { return runList([]string{mint}) })
	require.NoError(t, err)
	assert.Equal(t, "transfer-fee\nlabel\n", out)

	out, err = captureOutput(t, func() error { return runGet([]string{mint, "transfer-fee"}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"transfer-fee @ 0x48", "initialized", "basis_points:", "50", "5000"})

	jsonOut = true
	out, err = captureOutput(t, func() error { return runGet([]string{mint, "label"}) })
	require.NoError(t, err)
	got := decodeJSON(t, out)
	assert.Equal(t, "label", got["kind"])
	assert.Equal(t, float64(94), got["offset"])
	assert.Equal(t, map[string]interface{}{"Name": "Example", "Symbol": "EXM"}, got["value"])

	// The payer funded both top-ups.
	out, err = captureOutput(t, func() error { return runInfo([]string{payer}) })
	require.NoError(t, err)
	info := decodeJSON(t, out)
	assert.Less(t, info["lamports"].(float64), float64(10_000_000))
}

func TestGetMissing(t *testing.T) {
	resetFlags(t)
	mint, _ := setupAccounts(t)

	_, err := captureOutput(t, func() error { return runGet([]string{mint, "label"}) })
	assert.ErrorContains(t, err, "no label extension")

	_, err = captureOutput(t, func() error { return runGet([]string{mint, "bogus"}) })
	assert.ErrorContains(t, err, "unknown extension kind")
}

func TestUpdateAndZero(t *testing.T) {
	resetFlags(t)
	mint, _ := setupAccounts(t)
	addFee(t, mint, 50, 5000)

	updateFlags = extFlags{bps: 75, maxFee: 9000}
	out, err := captureOutput(t, func() error { return runUpdate([]string{mint, "transfer-fee"}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"Updated transfer-fee"})

	out, err = captureOutput(t, func() error { return runGet([]string{mint, "1"}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"75", "9000"})

	out, err = captureOutput(t, func() error { return runZero([]string{mint, "transfer-fee"}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"Zeroed transfer-fee"})

	jsonOut = true
	out, err = captureOutput(t, func() error { return runGet([]string{mint, "transfer-fee"}) })
	require.NoError(t, err)
	got := decodeJSON(t, out)
	assert.Equal(t, "zeroed", got["state"])
	assert.Equal(t, map[string]interface{}{"Epoch": float64(0), "MaximumFee": float64(0), "BasisPoints": float64(0)}, got["value"])
	jsonOut = false

	_, err = captureOutput(t, func() error { return runZero([]string{mint, "transfer-fee"}) })
	assert.ErrorIs(t, err, types.ErrAlreadyZeroed)

	_, err = captureOutput(t, func() error { return runUpdate([]string{mint, "transfer-fee"}) })
	assert.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestUpdateZeroAbsentKind(t *testing.T) {
	resetFlags(t)
	mint, _ := setupAccounts(t)
	addFee(t, mint, 50, 5000)

	updateFlags = extFlags{name: "x"}
	out, err := captureOutput(t, func() error { return runUpdate([]string{mint, "label"}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"No label extension"})

	out, err = captureOutput(t, func() error { return runZero([]string{mint, "interest-rate"}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"No interest-rate extension"})
}

func TestAddInsufficientFunds(t *testing.T) {
	resetFlags(t)
	mint, _ := setupAccounts(t)

	poor := filepath.Join(t.TempDir(), "poor.acct")
	initLamports, initDataLen = 1, 0
	_, err := captureOutput(t, func() error { return runInit([]string{poor}) })
	require.NoError(t, err)

	addPayer = poor
	addFlags = extFlags{bps: 10}
	_, err = captureOutput(t, func() error { return runAdd([]string{mint, "transfer-fee"}) })
	assert.ErrorIs(t, err, types.ErrTransferFailed)

	jsonOut = true
	out, err := captureOutput(t, func() error { return runInfo([]string{mint}) })
	require.NoError(t, err)
	assert.Equal(t, float64(64), decodeJSON(t, out)["data_len"])
}

func TestAddForeignOwner(t *testing.T) {
	resetFlags(t)
	_, payer := setupAccounts(t)

	foreign := filepath.Join(t.TempDir(), "foreign.acct")
	initOwner = types.DerivePubkey("someone-else").String()
	_, err := captureOutput(t, func() error { return runInit([]string{foreign}) })
	require.NoError(t, err)

	addPayer = payer
	addFlags = extFlags{bps: 10}
	_, err = captureOutput(t, func() error { return runAdd([]string{foreign, "transfer-fee"}) })
	assert.ErrorIs(t, err, types.ErrIllegalOwner)

	out, err := captureOutput(t, func() error { return runList([]string{foreign}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"no extension region"})
}

func TestDump(t *testing.T) {
	resetFlags(t)
	mint, _ := setupAccounts(t)
	addFee(t, mint, 50, 5000)

	dumpPayload = true
	out, err := captureOutput(t, func() error { return runDump([]string{mint}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"marker", "4558545354415445", "transfer-fee", "initialized", "0x0048..0x005e"})

	// Three stray bytes after the last entry.
	f, err := os.OpenFile(mint, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.Write([]byte{0x09, 0x00, 0xff})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	out, err = captureOutput(t, func() error { return runDump([]string{mint}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"3 trailing bytes at 0x005e"})

	jsonOut = true
	out, err = captureOutput(t, func() error { return runDump([]string{mint}) })
	require.NoError(t, err)
	got := decodeJSON(t, out)
	assert.Equal(t, true, got["has_marker"])
	assert.Equal(t, true, got["truncated"])
	assert.Len(t, got["entries"], 1)
}

func TestDumpNoRegion(t *testing.T) {
	resetFlags(t)
	mint, _ := setupAccounts(t)

	out, err := captureOutput(t, func() error { return runDump([]string{mint}) })
	require.NoError(t, err)
	assertContains(t, out, []string{"no extension region"})
}

func TestExtFlagsBuild(t *testing.T) {
	tests := []struct {
		name    string
		flags   extFlags
		kind    tokenext.Kind
		wantErr string
	}{
		{name: "fee", flags: extFlags{bps: 100}, kind: tokenext.KindTransferFee},
		{name: "fee over 100%", flags: extFlags{bps: 10_001}, kind: tokenext.KindTransferFee, wantErr: "exceeds"},
		{name: "label", flags: extFlags{name: "Coin", symbol: "C"}, kind: tokenext.KindLabel},
		{name: "label too long", flags: extFlags{symbol: "ABCDEFGHIJKLMNOPQ"}, kind: tokenext.KindLabel, wantErr: "too long"},
		{name: "authority missing", kind: tokenext.KindCloseAuthority, wantErr: "requires --authority"},
		{
			name:  "authority",
			flags: extFlags{authority: types.DerivePubkey("auth").String()},
			kind:  tokenext.KindCloseAuthority,
		},
		{name: "interest", flags: extFlags{rate: -25, initializedAt: 1700000000}, kind: tokenext.KindInterestRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := tt.flags.build(tt.kind)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind.Byte(), ext.ExtType())
		})
	}
}
