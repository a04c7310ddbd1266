package account

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/stateext/internal/buf"
	"github.com/joshuapare/stateext/pkg/types"
)

const (
	// HeaderSize is the size of the account file header in bytes.
	HeaderSize = 0x50

	// header field offsets.
	MagicOffset    = 0x00 // 4
	VersionOffset  = 0x04 // u32
	KeyOffset      = 0x08 // [32]
	OwnerOffset    = 0x28 // [32]
	LamportsOffset = 0x48 // u64

	// Version is the only supported format version.
	Version = 1

	// MaxPermittedDataIncrease bounds how much one Realloc may grow data.
	MaxPermittedDataIncrease = 10 * 1024

	// MaxDataLen bounds the total data length of an account.
	MaxDataLen = 10 * 1024 * 1024
)

// Magic is the four-byte signature at the start of every account file.
var Magic = []byte{'A', 'C', 'C', 'T'}

// Header is the decoded fixed prefix of an account file.
type Header struct {
	Key      types.Pubkey
	Owner    types.Pubkey
	Lamports uint64
}

// ParseHeader decodes and validates the header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrTruncated, len(b))
	}
	if !bytes.Equal(b[MagicOffset:MagicOffset+len(Magic)], Magic) {
		return Header{}, ErrBadMagic
	}
	if v := buf.U32LE(b[VersionOffset:]); v != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrBadVersion, v)
	}
	var h Header
	copy(h.Key[:], b[KeyOffset:KeyOffset+types.PubkeySize])
	copy(h.Owner[:], b[OwnerOffset:OwnerOffset+types.PubkeySize])
	h.Lamports = buf.U64LE(b[LamportsOffset:])
	return h, nil
}

// PutHeader encodes h into the first HeaderSize bytes of b.
func PutHeader(b []byte, h Header) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrTruncated, len(b))
	}
	copy(b[MagicOffset:], Magic)
	buf.PutU32LE(b[VersionOffset:], Version)
	copy(b[KeyOffset:], h.Key[:])
	copy(b[OwnerOffset:], h.Owner[:])
	buf.PutU64LE(b[LamportsOffset:], h.Lamports)
	return nil
}

func checkGrowth(oldLen, newLen int) error {
	if newLen < 0 {
		return fmt.Errorf("account: negative data length %d", newLen)
	}
	if newLen > MaxDataLen {
		return fmt.Errorf("%w: %d > %d", ErrTooLarge, newLen, MaxDataLen)
	}
	if newLen-oldLen > MaxPermittedDataIncrease {
		return fmt.Errorf("%w: +%d > %d", ErrDataIncrease, newLen-oldLen, MaxPermittedDataIncrease)
	}
	return nil
}
