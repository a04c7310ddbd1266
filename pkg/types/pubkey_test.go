package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyTextRoundTrip(t *testing.T) {
	k := DerivePubkey("owner")
	parsed, err := ParsePubkey(k.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(k))

	var viaText Pubkey
	b, err := k.MarshalText()
	require.NoError(t, err)
	require.NoError(t, viaText.UnmarshalText(b))
	assert.Equal(t, k, viaText)
}

func TestParsePubkeyRejectsWrongLength(t *testing.T) {
	_, err := ParsePubkey("3yZe7d")
	require.ErrorIs(t, err, ErrBadPubkey)

	_, err = ParsePubkey("0OIl")
	require.ErrorIs(t, err, ErrBadPubkey)
}

func TestSystemProgramKey(t *testing.T) {
	k, err := ParsePubkey("11111111111111111111111111111111")
	require.NoError(t, err)
	assert.True(t, k.IsZero())
	assert.False(t, DerivePubkey("x").IsZero())
}
