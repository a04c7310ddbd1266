package tokenext

import (
	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/types"
)

// CloseAuthority names the key allowed to close the account.
type CloseAuthority struct {
	Authority types.Pubkey
}

func (CloseAuthority) ExtType() uint8 { return KindCloseAuthority.Byte() }
func (CloseAuthority) ExtLen() uint16 { return types.PubkeySize }

func (c CloseAuthority) Pack() []byte {
	out := make([]byte, types.PubkeySize)
	copy(out, c.Authority[:])
	return out
}

func (c *CloseAuthority) Unpack(b []byte) error {
	if err := stateext.CheckLen(b, types.PubkeySize); err != nil {
		return err
	}
	copy(c.Authority[:], b)
	return nil
}
