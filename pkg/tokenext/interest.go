package tokenext

import (
	"encoding/binary"

	"github.com/joshuapare/stateext/pkg/stateext"
)

const interestRateLen = 10

// InterestRate accrues interest at Rate basis points per year from
// InitializedAt (unix seconds).
type InterestRate struct {
	InitializedAt int64
	Rate          int16
}

func (InterestRate) ExtType() uint8 { return KindInterestRate.Byte() }
func (InterestRate) ExtLen() uint16 { return interestRateLen }

func (r InterestRate) Pack() []byte {
	b := binary.LittleEndian.AppendUint64(make([]byte, 0, interestRateLen), uint64(r.InitializedAt))
	return binary.LittleEndian.AppendUint16(b, uint16(r.Rate))
}

func (r *InterestRate) Unpack(b []byte) error {
	if err := stateext.CheckLen(b, interestRateLen); err != nil {
		return err
	}
	r.InitializedAt = int64(binary.LittleEndian.Uint64(b))
	r.Rate = int16(binary.LittleEndian.Uint16(b[8:]))
	return nil
}
