package account

import "github.com/joshuapare/stateext/pkg/types"

// Mem is an account held entirely in memory.
type Mem struct {
	key      types.Pubkey
	owner    types.Pubkey
	lamports uint64
	data     []byte
}

// NewMem returns an account with dataLen zero bytes of data.
func NewMem(key, owner types.Pubkey, lamports uint64, dataLen int) *Mem {
	return &Mem{key: key, owner: owner, lamports: lamports, data: make([]byte, dataLen)}
}

// NewMemWithData returns an account whose data is a copy of data.
func NewMemWithData(key, owner types.Pubkey, lamports uint64, data []byte) *Mem {
	return &Mem{key: key, owner: owner, lamports: lamports, data: append([]byte(nil), data...)}
}

func (m *Mem) Key() types.Pubkey   { return m.key }
func (m *Mem) Owner() types.Pubkey { return m.owner }
func (m *Mem) Data() []byte        { return m.data }
func (m *Mem) Lamports() uint64    { return m.lamports }

// SetLamports overwrites the balance.
func (m *Mem) SetLamports(v uint64) { m.lamports = v }

// Realloc resizes the data. New bytes are always zero, even when the slice
// had spare capacity left over from an earlier shrink.
func (m *Mem) Realloc(newLen int, _ bool) error {
	old := len(m.data)
	if err := checkGrowth(old, newLen); err != nil {
		return err
	}
	if newLen <= old {
		m.data = m.data[:newLen]
		return nil
	}
	if newLen <= cap(m.data) {
		m.data = m.data[:newLen]
		clear(m.data[old:])
		return nil
	}
	grown := make([]byte, newLen)
	copy(grown, m.data)
	m.data = grown
	return nil
}
