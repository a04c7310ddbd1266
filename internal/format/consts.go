// Package format houses the low-level codec for the extension region that
// follows a fixed-length base record in account data. It knows the byte
// layout of the region marker and of each entry header; it knows nothing
// about owners, rent or lifecycle rules, so higher-level packages can
// orchestrate those on top.
package format

// Region layout (little-endian):
//
//	[ base record : BaseLen bytes ]
//	[ marker      : 8 bytes       ]   present once len(data) > BaseLen
//	( [ tag:u8 ][ state:u8 ][ len:u16 ][ payload:len bytes ] )*
const (
	// MarkerLen is the size of the region marker written after the base record.
	MarkerLen = 8

	// Entry field offsets relative to the start of an entry header.
	EntryTagOffset     = 0x00 // u8, extension type tag
	EntryStateOffset   = 0x01 // u8, lifecycle state
	EntryLenOffset     = 0x02 // u16, payload length
	EntryPayloadOffset = 0x04 // start of payload

	// derived lengths.
	EntryTagLen   = EntryStateOffset - EntryTagOffset   // 1
	EntryStateLen = EntryLenOffset - EntryStateOffset   // 1
	EntryLenLen   = EntryPayloadOffset - EntryLenOffset // 2

	// EntryHeaderSize is the number of bytes preceding every payload.
	EntryHeaderSize = EntryPayloadOffset

	// MaxPayloadLen is the largest payload a u16 length field can describe.
	MaxPayloadLen = 0xFFFF
)

// Raw lifecycle state bytes. The region stores Initialized as 0x00 and
// Zeroed as 0x01.
const (
	StateInitialized byte = 0x00
	StateZeroed      byte = 0x01
)
