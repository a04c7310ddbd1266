package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stateext/ledger"
	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/types"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, c.File)

	l, err := c.StateLayout()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseLen, l.BaseLen)
	assert.Equal(t, [8]byte{'E', 'X', 'T', 'S', 'T', 'A', 'T', 'E'}, l.Marker)
	assert.Equal(t, types.DerivePubkey(DefaultOwner), l.Owner)
	assert.Equal(t, stateext.RentOnTotal, l.RentBasis)
	assert.Equal(t, ledger.DefaultRent(), c.RentSchedule())
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
layout:
  base_len: 64
  marker: "0x0102030405060708"
  max_extensions: 4
  rent_basis: delta
rent:
  lamports_per_byte_year: 10
log:
  json: true
`), 0o644))
	t.Setenv("EXTCTL_RENT_EXEMPTION_THRESHOLD", "1.5")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.File)

	l, err := c.StateLayout()
	require.NoError(t, err)
	assert.Equal(t, 64, l.BaseLen)
	assert.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, l.Marker)
	assert.Equal(t, 4, l.MaxExtensions)
	assert.Equal(t, stateext.RentOnDelta, l.RentBasis)
	assert.Equal(t, uint64(10), c.Rent.LamportsPerByteYear)
	assert.Equal(t, ledger.Rent{LamportsPerByteYear: 10, ExemptionThreshold: 1.5}, c.RentSchedule())
	assert.True(t, c.Log.JSON)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestStateLayoutRejectsBadValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)

	bad := *c
	bad.Layout.Marker = "0102"
	_, err = bad.StateLayout()
	require.Error(t, err)

	bad = *c
	bad.Layout.Marker = "0000000000000000"
	_, err = bad.StateLayout()
	require.Error(t, err)

	bad = *c
	bad.Layout.Owner = "not-a-key"
	_, err = bad.StateLayout()
	require.Error(t, err)

	bad = *c
	bad.Layout.Owner = "11111111111111111111111111111111"
	_, err = bad.StateLayout()
	require.Error(t, err)

	bad = *c
	bad.Layout.RentBasis = "sometimes"
	_, err = bad.StateLayout()
	require.Error(t, err)
}
