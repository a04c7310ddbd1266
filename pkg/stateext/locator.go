package stateext

import (
	"github.com/joshuapare/stateext/internal/buf"
	"github.com/joshuapare/stateext/internal/format"
)

// Info is the result of a targeted lookup.
type Info[E any] struct {
	// Ext is the decoded payload.
	Ext *E
	// Position is the offset of the entry header within the account data.
	Position int
	// State is the entry's lifecycle state.
	State State
	// Raw aliases the payload bytes in the account data. It is only valid
	// until the account is next reallocated.
	Raw []byte
}

// PayloadOffset returns the offset of the first payload byte.
func (i Info[E]) PayloadOffset() int { return i.Position + MetaLen }

// FindInData scans data for the first entry whose tag is tag and whose
// payload decodes as E. It does not check ownership.
//
// A state byte that is neither Initialized nor Zeroed aborts the scan: no
// entry after it is trusted. A truncated header or payload ends the scan.
func FindInData[E any, P Codec[E]](l Layout, data []byte, tag uint8) (Info[E], bool) {
	if !l.HasMarker(data) {
		return Info[E]{}, false
	}

	cur := format.RegionStart(l.BaseLen)
	for cur < len(data) {
		pos := cur
		if !buf.Has(data, cur, format.EntryTagLen+format.EntryStateLen) {
			break
		}
		readTag := data[cur+format.EntryTagOffset]
		state, ok := State(0).FromByte(data[cur+format.EntryStateOffset])
		if !ok {
			return Info[E]{}, false
		}

		rawLen, ok := buf.Slice(data, cur+format.EntryLenOffset, format.EntryLenLen)
		if !ok {
			break
		}
		n := int(buf.U16LE(rawLen))
		payload, ok := buf.Slice(data, cur+format.EntryPayloadOffset, n)
		if !ok {
			break
		}
		cur += format.EntryHeaderSize + n

		if readTag != tag {
			continue
		}
		ext := new(E)
		if err := P(ext).Unpack(payload); err != nil {
			continue
		}
		return Info[E]{Ext: ext, Position: pos, State: state, Raw: payload}, true
	}
	return Info[E]{}, false
}

// VariantsFromData lists the recognised tags present in data in append
// order. Unknown tags are skipped and state bytes are not validated. The
// boolean is false when the region marker is absent.
func VariantsFromData[V Enum[V]](l Layout, data []byte) ([]V, bool) {
	if !l.HasMarker(data) {
		return nil, false
	}
	var zero V
	out := []V{}
	for _, e := range scanEntries(l, data).Entries {
		if v, ok := zero.FromByte(e.Tag); ok {
			out = append(out, v)
		}
	}
	return out, true
}

// Entry is one decoded entry header with its location.
type Entry struct {
	Offset   int
	Tag      uint8
	RawState uint8
	Len      uint16
	Payload  []byte
}

// State decodes the raw state byte.
func (e Entry) State() (State, bool) { return State(0).FromByte(e.RawState) }

// Size is the number of bytes the entry occupies.
func (e Entry) Size() int { return MetaLen + int(e.Len) }

// Scan is a lenient walk of the whole region.
type Scan struct {
	// HasMarker is false when data carries no region; Entries is then empty.
	HasMarker bool
	// Entries holds every complete entry in append order.
	Entries []Entry
	// End is the offset where the walk stopped.
	End int
	// Truncated is true when bytes remained after End that did not form a
	// complete entry.
	Truncated bool
}

// ScanData walks every complete entry in data without validating tags or
// states.
func ScanData(l Layout, data []byte) Scan {
	return scanEntries(l, data)
}

func scanEntries(l Layout, data []byte) Scan {
	if !l.HasMarker(data) {
		return Scan{End: min(l.BaseLen, len(data))}
	}
	s := Scan{HasMarker: true}
	cur := format.RegionStart(l.BaseLen)
	for cur < len(data) {
		e, next, err := format.NextEntry(data, cur)
		if err != nil {
			s.Truncated = true
			break
		}
		s.Entries = append(s.Entries, Entry{
			Offset:   e.Offset,
			Tag:      e.Tag,
			RawState: e.State,
			Len:      e.Len,
			Payload:  e.Data,
		})
		cur = next
	}
	s.End = cur
	return s
}
