package stateext

import "github.com/joshuapare/stateext/pkg/types"

// Account is the host's handle on an account buffer.
type Account interface {
	// Key is the account's own address.
	Key() types.Pubkey
	// Owner is the program allowed to mutate the account's data.
	Owner() types.Pubkey
	// Data is a mutable view of the account data. The view is invalidated
	// by Realloc.
	Data() []byte
	// Realloc resizes the data in place. Bytes beyond the old length must
	// read as zero when zeroInit is true or when the host guarantees it.
	Realloc(newLen int, zeroInit bool) error
}

// Rent computes the minimum balance an account of a given data size must hold.
type Rent interface {
	MinimumBalance(dataLen int) uint64
}

// Transferer moves lamports between accounts.
type Transferer interface {
	Transfer(from, to Account, lamports uint64) error
}
