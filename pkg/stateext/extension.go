package stateext

import (
	"fmt"

	"github.com/joshuapare/stateext/internal/format"
	"github.com/joshuapare/stateext/pkg/types"
)

// MetaLen is the size of the header preceding every payload:
// tag (1) + state (1) + length (2).
const MetaLen = format.EntryHeaderSize

// Extension describes a concrete fixed-size payload type.
//
// ExtType and ExtLen must be constant for the type. Pack must return
// exactly ExtLen bytes, built field by field.
type Extension interface {
	ExtType() uint8
	ExtLen() uint16
	Pack() []byte
}

// Codec is the constraint satisfied by a pointer to a concrete extension
// type. Unpack fails with types.ErrInvalidAccountData when len(b) is not
// ExtLen.
type Codec[E any] interface {
	*E
	Extension
	Unpack(b []byte) error
}

// WithMetaLen returns the number of bytes one entry of e's type occupies.
func WithMetaLen(e Extension) int { return int(e.ExtLen()) + MetaLen }

// CheckLen is the length guard every Unpack starts with.
func CheckLen(b []byte, n uint16) error {
	if len(b) != int(n) {
		return types.ErrInvalidAccountData.With(fmt.Errorf("payload is %d bytes, want %d", len(b), n))
	}
	return nil
}

// pack encodes e and checks the result against its declared length.
func pack(e Extension) ([]byte, error) {
	payload := e.Pack()
	if len(payload) != int(e.ExtLen()) {
		return nil, types.ErrInvalidAccountData.With(
			fmt.Errorf("extension %d packed %d bytes, declared %d", e.ExtType(), len(payload), e.ExtLen()))
	}
	return payload, nil
}
