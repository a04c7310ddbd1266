package ledger

import (
	"math"
	"math/bits"
)

const (
	// DefaultLamportsPerByteYear is the default rental rate.
	DefaultLamportsPerByteYear = 3480
	// DefaultExemptionThreshold is the number of years of rent an account
	// must hold to be exempt.
	DefaultExemptionThreshold = 2.0
	// AccountStorageOverhead is charged on top of every account's data length.
	AccountStorageOverhead = 128
)

// Rent prices account storage.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
}

// DefaultRent returns the default schedule.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
	}
}

// MinimumBalance returns the lamports an account with dataLen bytes of data
// must hold to be rent exempt.
func (r Rent) MinimumBalance(dataLen int) uint64 {
	if dataLen < 0 {
		dataLen = 0
	}
	hi, lo := bits.Mul64(uint64(dataLen)+AccountStorageOverhead, r.LamportsPerByteYear)
	if hi != 0 {
		return math.MaxUint64
	}
	v := float64(lo) * r.ExemptionThreshold
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}

// IsExempt reports whether balance covers an account of dataLen bytes.
func (r Rent) IsExempt(balance uint64, dataLen int) bool {
	return balance >= r.MinimumBalance(dataLen)
}
