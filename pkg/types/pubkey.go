package types

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// PubkeySize is the length of a Pubkey in bytes.
const PubkeySize = 32

// Pubkey identifies an account or a program.
type Pubkey [PubkeySize]byte

// ErrBadPubkey indicates a textual key that does not decode to 32 bytes.
var ErrBadPubkey = errors.New("types: invalid pubkey")

// ParsePubkey decodes the base58 form of a key.
func ParsePubkey(s string) (Pubkey, error) {
	var k Pubkey
	raw, err := base58.Decode(s)
	if err != nil {
		return k, fmt.Errorf("%w: %v", ErrBadPubkey, err)
	}
	if len(raw) != PubkeySize {
		return k, fmt.Errorf("%w: decoded %d bytes", ErrBadPubkey, len(raw))
	}
	copy(k[:], raw)
	return k, nil
}

// DerivePubkey returns a deterministic key for seed. It is used for test
// fixtures and for `extctl init` when no key is given.
func DerivePubkey(seed string) Pubkey {
	return Pubkey(sha256.Sum256([]byte(seed)))
}

func (k Pubkey) String() string { return base58.Encode(k[:]) }

// Equal reports whether k and o are the same key.
func (k Pubkey) Equal(o Pubkey) bool { return bytes.Equal(k[:], o[:]) }

// IsZero reports whether k is the all-zero key.
func (k Pubkey) IsZero() bool { return k == Pubkey{} }

// MarshalText implements encoding.TextMarshaler.
func (k Pubkey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Pubkey) UnmarshalText(b []byte) error {
	p, err := ParsePubkey(string(b))
	if err != nil {
		return err
	}
	*k = p
	return nil
}
