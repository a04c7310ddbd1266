package tokenext

import (
	"encoding/binary"

	"github.com/joshuapare/stateext/pkg/stateext"
)

// TransferFee layout (little-endian):
//
//	0x00  8  epoch the fee takes effect
//	0x08  8  maximum fee in base units
//	0x10  2  fee in basis points
const transferFeeLen = 18

// TransferFee charges a percentage of every transfer, capped at MaximumFee.
type TransferFee struct {
	Epoch       uint64
	MaximumFee  uint64
	BasisPoints uint16
}

func (TransferFee) ExtType() uint8 { return KindTransferFee.Byte() }
func (TransferFee) ExtLen() uint16 { return transferFeeLen }

func (f TransferFee) Pack() []byte {
	b := make([]byte, 0, transferFeeLen)
	b = binary.LittleEndian.AppendUint64(b, f.Epoch)
	b = binary.LittleEndian.AppendUint64(b, f.MaximumFee)
	return binary.LittleEndian.AppendUint16(b, f.BasisPoints)
}

func (f *TransferFee) Unpack(b []byte) error {
	if err := stateext.CheckLen(b, transferFeeLen); err != nil {
		return err
	}
	f.Epoch = binary.LittleEndian.Uint64(b[0x00:])
	f.MaximumFee = binary.LittleEndian.Uint64(b[0x08:])
	f.BasisPoints = binary.LittleEndian.Uint16(b[0x10:])
	return nil
}

// Fee returns the fee charged on amount.
func (f TransferFee) Fee(amount uint64) uint64 {
	if f.BasisPoints == 0 || amount == 0 {
		return 0
	}
	hi, lo := mul64(amount, uint64(f.BasisPoints))
	fee := div64(hi, lo, 10_000)
	if fee > f.MaximumFee {
		return f.MaximumFee
	}
	return fee
}
