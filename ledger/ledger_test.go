package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stateext/account"
	"github.com/joshuapare/stateext/pkg/types"
)

func TestMinimumBalance(t *testing.T) {
	r := DefaultRent()
	assert.Equal(t, uint64(890_880), r.MinimumBalance(0))
	assert.Equal(t, uint64((128+92)*3480*2), r.MinimumBalance(92))
	assert.Equal(t, r.MinimumBalance(0), r.MinimumBalance(-5))
	assert.True(t, r.IsExempt(r.MinimumBalance(10), 10))
	assert.False(t, r.IsExempt(r.MinimumBalance(10)-1, 10))
}

func TestMinimumBalanceSaturates(t *testing.T) {
	r := Rent{LamportsPerByteYear: math.MaxUint64 / 100, ExemptionThreshold: 1}
	assert.Equal(t, uint64(math.MaxUint64), r.MinimumBalance(0))

	r = Rent{LamportsPerByteYear: math.MaxUint64 / 256, ExemptionThreshold: 2}
	assert.Equal(t, uint64(math.MaxUint64), r.MinimumBalance(0))
}

func TestBankTransfer(t *testing.T) {
	owner := types.DerivePubkey("program")
	payer := account.NewMem(types.DerivePubkey("payer"), types.Pubkey{}, 100, 0)
	acct := account.NewMem(types.DerivePubkey("acct"), owner, 5, 0)
	bank := NewBank(nil)

	require.NoError(t, bank.Transfer(payer, acct, 40))
	assert.Equal(t, uint64(60), payer.Lamports())
	assert.Equal(t, uint64(45), acct.Lamports())

	err := bank.Transfer(payer, acct, 61)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, uint64(60), payer.Lamports())
	assert.Equal(t, uint64(45), acct.Lamports())
}

func TestBankTransferOverflow(t *testing.T) {
	payer := account.NewMem(types.DerivePubkey("payer"), types.Pubkey{}, 10, 0)
	rich := account.NewMem(types.DerivePubkey("rich"), types.Pubkey{}, ^uint64(0)-5, 0)
	require.ErrorIs(t, NewBank(nil).Transfer(payer, rich, 10), ErrOverflow)
	assert.Equal(t, uint64(10), payer.Lamports())
}

// dataOnly is an account without a balance.
type dataOnly struct{ key types.Pubkey }

func (d dataOnly) Key() types.Pubkey     { return d.key }
func (dataOnly) Owner() types.Pubkey     { return types.Pubkey{} }
func (dataOnly) Data() []byte            { return nil }
func (dataOnly) Realloc(int, bool) error { return nil }

func TestBankTransferUnfunded(t *testing.T) {
	payer := account.NewMem(types.DerivePubkey("payer"), types.Pubkey{}, 10, 0)
	err := NewBank(nil).Transfer(payer, dataOnly{key: types.DerivePubkey("x")}, 1)
	require.ErrorIs(t, err, ErrUnfunded)
	assert.Equal(t, uint64(10), payer.Lamports())
}

func TestBankSelfTransfer(t *testing.T) {
	payer := account.NewMem(types.DerivePubkey("payer"), types.Pubkey{}, 10, 0)
	require.NoError(t, NewBank(nil).Transfer(payer, payer, 10))
	assert.Equal(t, uint64(10), payer.Lamports())
}
