package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/stateext/internal/buf"
)

// EntryHeader is the fixed four-byte prefix of every extension entry.
//
// Entry layout (little-endian):
//
//	Offset  Size  Description
//	0x00    1     Extension type tag.
//	0x01    1     Lifecycle state (0x00 initialized, 0x01 zeroed).
//	0x02    2     Payload length in bytes.
//	0x04    ...   Payload.
type EntryHeader struct {
	Tag   uint8
	State uint8
	Len   uint16
}

// Size returns the number of bytes the entry occupies including its header.
func (h EntryHeader) Size() int { return EntryHeaderSize + int(h.Len) }

// Entry is a decoded header together with its location and payload view.
type Entry struct {
	EntryHeader
	Offset int    // Offset of the header within the account data
	Data   []byte // Payload bytes (alias of underlying buffer)
}

// ReadEntryHeader decodes the header at off.
func ReadEntryHeader(b []byte, off int) (EntryHeader, error) {
	end, err := buf.CheckSpan(len(b), off, EntryHeaderSize)
	if err != nil {
		return EntryHeader{}, fmt.Errorf("entry header at %d: %w: %v", off, ErrTruncated, err)
	}
	raw := b[off:end]
	return EntryHeader{
		Tag:   raw[EntryTagOffset],
		State: raw[EntryStateOffset],
		Len:   buf.U16LE(raw[EntryLenOffset:]),
	}, nil
}

// PutEntryHeader encodes h at off.
func PutEntryHeader(b []byte, off int, h EntryHeader) error {
	raw, ok := buf.Slice(b, off, EntryHeaderSize)
	if !ok {
		return fmt.Errorf("entry header at %d: %w", off, ErrTruncated)
	}
	raw[EntryTagOffset] = h.Tag
	raw[EntryStateOffset] = h.State
	buf.PutU16LE(raw[EntryLenOffset:], h.Len)
	return nil
}

// AppendEntry appends the encoded header and payload to dst. The header
// length is taken from len(payload).
func AppendEntry(dst []byte, tag, state uint8, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadLen {
		return dst, fmt.Errorf("entry tag %d: %w (%d bytes)", tag, ErrPayloadTooLarge, len(payload))
	}
	var hdr [EntryHeaderSize]byte
	hdr[EntryTagOffset] = tag
	hdr[EntryStateOffset] = state
	buf.PutU16LE(hdr[EntryLenOffset:], uint16(len(payload)))
	dst = append(dst, hdr[:]...)
	return append(dst, payload...), nil
}

// NextEntry decodes the entry at off and returns it plus the offset of the
// following entry. An entry whose header or payload extends past len(b)
// yields ErrTruncated.
func NextEntry(b []byte, off int) (Entry, int, error) {
	h, err := ReadEntryHeader(b, off)
	if err != nil {
		return Entry{}, 0, err
	}
	start := off + EntryHeaderSize
	end, err := buf.CheckSpan(len(b), start, int(h.Len))
	if err != nil {
		return Entry{}, 0, fmt.Errorf("entry payload at %d: %w: %v", start, ErrTruncated, err)
	}
	return Entry{EntryHeader: h, Offset: off, Data: b[start:end:end]}, end, nil
}

// RegionStart returns the offset of the first entry for a base record of
// baseLen bytes.
func RegionStart(baseLen int) int { return baseLen + MarkerLen }

// CheckMarker reports whether b carries marker immediately after the base
// record. A buffer too short to hold the marker has no region.
func CheckMarker(b []byte, baseLen int, marker [MarkerLen]byte) error {
	raw, ok := buf.Slice(b, baseLen, MarkerLen)
	if !ok {
		return fmt.Errorf("marker at %d: %w", baseLen, ErrTruncated)
	}
	if !bytes.Equal(raw, marker[:]) {
		return ErrNoMarker
	}
	return nil
}
