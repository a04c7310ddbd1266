package ledger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/joshuapare/stateext/pkg/stateext"
)

var (
	// ErrInsufficientFunds indicates the payer's balance is below the amount.
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
	// ErrUnfunded indicates an account that does not carry a balance.
	ErrUnfunded = errors.New("ledger: account has no balance")
	// ErrOverflow indicates the recipient's balance would overflow.
	ErrOverflow = errors.New("ledger: balance overflow")
)

// Funded is an account that carries a lamport balance.
type Funded interface {
	stateext.Account
	Lamports() uint64
	SetLamports(v uint64)
}

// Bank moves lamports between Funded accounts.
type Bank struct {
	log *slog.Logger
}

// NewBank returns a Bank that logs transfers to log. A nil log discards.
func NewBank(log *slog.Logger) *Bank {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Bank{log: log}
}

// Transfer debits from and credits to. Neither balance changes on failure.
func (b *Bank) Transfer(from, to stateext.Account, lamports uint64) error {
	src, ok := from.(Funded)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnfunded, from.Key())
	}
	dst, ok := to.(Funded)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnfunded, to.Key())
	}
	if lamports == 0 {
		return nil
	}
	if src.Lamports() < lamports {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientFunds, from.Key(), src.Lamports(), lamports)
	}
	if src.Key() == dst.Key() {
		return nil
	}
	if dst.Lamports() > math.MaxUint64-lamports {
		return fmt.Errorf("%w: %s", ErrOverflow, to.Key())
	}
	src.SetLamports(src.Lamports() - lamports)
	dst.SetLamports(dst.Lamports() + lamports)
	b.log.Debug("transfer", "from", from.Key(), "to", to.Key(), "lamports", lamports)
	return nil
}
