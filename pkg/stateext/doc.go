// Package stateext lets a fixed-layout base record in account data be
// extended at runtime with an appendable set of typed, fixed-size extension
// blocks, without redefining the base record's format.
//
// # Layout
//
// Account data is a base record followed, once the first extension is
// added, by an 8-byte region marker and a sequence of TLV entries:
//
//	[ base record : BaseLen ][ marker : 8 ]( [tag:u8][state:u8][len:u16 LE][payload] )*
//
// Entries are appended in order, never moved and never removed. An update
// rewrites an entry in place at the same size; a zero-out clears the payload
// and flips the state byte to Zeroed.
//
// # Extension types
//
// A concrete extension declares its tag and fixed payload length and
// encodes itself field by field:
//
//	type Royalty struct{ BasisPoints uint16 }
//
//	func (Royalty) ExtType() uint8  { return 1 }
//	func (Royalty) ExtLen() uint16  { return 2 }
//	func (r Royalty) Pack() []byte  { return binary.LittleEndian.AppendUint16(nil, r.BasisPoints) }
//	func (r *Royalty) Unpack(b []byte) error {
//	    if err := stateext.CheckLen(b, 2); err != nil {
//	        return err
//	    }
//	    r.BasisPoints = binary.LittleEndian.Uint16(b)
//	    return nil
//	}
//
// # Operations
//
//	region, _ := stateext.NewRegion(layout, rent, bank)
//	err := stateext.Add(region, acct, payer, &Royalty{BasisPoints: 500})
//	info, ok := stateext.Get[Royalty](region, acct, KindRoyalty)
//	err = stateext.Update(region, acct, KindRoyalty, &Royalty{BasisPoints: 250})
//	err = stateext.ZeroOut[Royalty](region, acct, KindRoyalty)
//	kinds, ok := stateext.Variants[Kind](region, acct)
//
// Operations are synchronous and expect exclusive access to the account for
// their duration; the package does no locking.
package stateext
