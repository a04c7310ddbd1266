package stateext_test

import (
	"encoding/binary"
	"errors"

	"github.com/joshuapare/stateext/account"
	"github.com/joshuapare/stateext/ledger"
	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/types"
)

const testBaseLen = 64

var (
	testOwner  = types.DerivePubkey("test-program")
	testMarker = [stateext.MarkerLen]byte{'S', 'T', 'A', 'T', 'E', 'X', 'T', 0x01}
)

// kind is a caller-defined tag set: 5 and 7 are known, everything else is not.
type kind uint8

const (
	kindSmall kind = 5
	kindLarge kind = 7
	kindOther kind = 9 // not recognised by FromByte
)

func (k kind) Byte() uint8 { return uint8(k) }

func (kind) FromByte(b uint8) (kind, bool) {
	switch kind(b) {
	case kindSmall, kindLarge:
		return kind(b), true
	}
	return 0, false
}

// small is a 16-byte extension: two u64 fields.
type small struct{ A, B uint64 }

func (small) ExtType() uint8 { return uint8(kindSmall) }
func (small) ExtLen() uint16 { return 16 }

func (s small) Pack() []byte {
	b := binary.LittleEndian.AppendUint64(nil, s.A)
	return binary.LittleEndian.AppendUint64(b, s.B)
}

func (s *small) Unpack(b []byte) error {
	if err := stateext.CheckLen(b, 16); err != nil {
		return err
	}
	s.A = binary.LittleEndian.Uint64(b)
	s.B = binary.LittleEndian.Uint64(b[8:])
	return nil
}

// large is a 32-byte extension holding a key.
type large struct{ Key types.Pubkey }

func (large) ExtType() uint8 { return uint8(kindLarge) }
func (large) ExtLen() uint16 { return 32 }
func (l large) Pack() []byte { return append([]byte(nil), l.Key[:]...) }

func (l *large) Unpack(b []byte) error {
	if err := stateext.CheckLen(b, 32); err != nil {
		return err
	}
	copy(l.Key[:], b)
	return nil
}

// other uses a tag the caller's enum does not know.
type other struct{ V uint8 }

func (other) ExtType() uint8 { return uint8(kindOther) }
func (other) ExtLen() uint16 { return 1 }
func (o other) Pack() []byte { return []byte{o.V} }
func (o *other) Unpack(b []byte) error {
	if err := stateext.CheckLen(b, 1); err != nil {
		return err
	}
	o.V = b[0]
	return nil
}

// short lies about its length.
type short struct{}

func (short) ExtType() uint8 { return 11 }
func (short) ExtLen() uint16 { return 4 }
func (short) Pack() []byte   { return []byte{1, 2} }
func (*short) Unpack(b []byte) error {
	return stateext.CheckLen(b, 4)
}

// flatRent charges one lamport per byte.
type flatRent struct{ sizes []int }

func (r *flatRent) MinimumBalance(n int) uint64 {
	r.sizes = append(r.sizes, n)
	return uint64(n)
}

type failingBank struct{}

func (failingBank) Transfer(_, _ stateext.Account, _ uint64) error {
	return errors.New("payer is broke")
}

// failingRealloc refuses to grow.
type failingRealloc struct{ *account.Mem }

func (failingRealloc) Realloc(int, bool) error { return errors.New("no room") }

func testLayout() stateext.Layout {
	return stateext.Layout{BaseLen: testBaseLen, Owner: testOwner, Marker: testMarker}
}

type fixture struct {
	region *stateext.Region
	rent   *flatRent
	acct   *account.Mem
	payer  *account.Mem
}

func newFixture(layout stateext.Layout) (*fixture, error) {
	rent := &flatRent{}
	region, err := stateext.NewRegion(layout, rent, ledger.NewBank(nil))
	if err != nil {
		return nil, err
	}
	base := make([]byte, layout.BaseLen)
	for i := range base {
		base[i] = byte(i)
	}
	return &fixture{
		region: region,
		rent:   rent,
		acct:   account.NewMemWithData(types.DerivePubkey("acct"), layout.Owner, 0, base),
		payer:  account.NewMem(types.DerivePubkey("payer"), types.Pubkey{}, 1_000_000, 0),
	}, nil
}
