package stateext

import (
	"errors"
	"fmt"

	"github.com/joshuapare/stateext/internal/format"
	"github.com/joshuapare/stateext/pkg/types"
)

// MarkerLen is the size of the region marker.
const MarkerLen = format.MarkerLen

// RentBasis selects the size passed to Rent.MinimumBalance when an
// extension is added.
type RentBasis int

const (
	// RentOnTotal charges for the account's new total data length.
	RentOnTotal RentBasis = iota
	// RentOnDelta charges only for the bytes being reserved.
	RentOnDelta
)

func (b RentBasis) String() string {
	switch b {
	case RentOnTotal:
		return "total"
	case RentOnDelta:
		return "delta"
	default:
		return fmt.Sprintf("basis(%d)", int(b))
	}
}

// ParseRentBasis accepts "total" or "delta".
func ParseRentBasis(s string) (RentBasis, error) {
	switch s {
	case "", "total":
		return RentOnTotal, nil
	case "delta":
		return RentOnDelta, nil
	default:
		return 0, fmt.Errorf("stateext: unknown rent basis %q", s)
	}
}

// Layout describes the base record an extension region is attached to.
type Layout struct {
	// BaseLen is the length of the base record in bytes.
	BaseLen int
	// Owner is the program that must own accounts using this layout.
	Owner types.Pubkey
	// Marker is written once, right after the base record.
	Marker [MarkerLen]byte
	// MaxExtensions caps the number of entries. Zero means no cap.
	MaxExtensions int
	// RentBasis selects how the add path sizes its rent payment.
	RentBasis RentBasis
}

var (
	errNegativeBase = errors.New("stateext: negative base length")
	errZeroMarker   = errors.New("stateext: region marker must not be all zero")
	errZeroOwner    = errors.New("stateext: owner program must be set")
)

// Validate checks the layout for values that would make the region
// ambiguous. An all-zero marker is rejected because freshly grown account
// bytes are zero. A zero owner would match every unowned account.
func (l Layout) Validate() error {
	if l.BaseLen < 0 {
		return errNegativeBase
	}
	if l.Marker == ([MarkerLen]byte{}) {
		return errZeroMarker
	}
	if l.Owner.IsZero() {
		return errZeroOwner
	}
	if l.MaxExtensions < 0 {
		return fmt.Errorf("stateext: negative extension limit %d", l.MaxExtensions)
	}
	if l.RentBasis != RentOnTotal && l.RentBasis != RentOnDelta {
		return fmt.Errorf("stateext: %v", l.RentBasis)
	}
	return nil
}

// HasMarker reports whether data carries this layout's region marker.
func (l Layout) HasMarker(data []byte) bool {
	return format.CheckMarker(data, l.BaseLen, l.Marker) == nil
}

// reserve returns the bytes one add must grow data by.
func (l Layout) reserve(dataLen int, e Extension) int {
	n := WithMetaLen(e)
	if dataLen == l.BaseLen {
		n += MarkerLen
	}
	return n
}
